package app

import (
	"fmt"
	"log"
	"os"
	"strings"

	"arapipe/nlp/clean"
	"arapipe/nlp/format/raw"
	"arapipe/nlp/format/tsv"
	"arapipe/nlp/format/xmlcorpus"
	"arapipe/util"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func PrepConfigOut() {
	log.Println("Configuration")
	log.Printf("Corpus Input:\t\t%s", input)
	log.Printf("Corpus Format:\t\t%s", corpusFormat)
	log.Printf("Output:\t\t%s", outFile)
	if dialect != "" {
		log.Printf("Dialect Filter:\t%s (column %d)", dialect, dialectCol)
	}
	log.Println()
}

func readCorpus() ([]string, error) {
	switch corpusFormat {
	case "raw":
		info, err := os.Stat(input)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return raw.ReadFile(input, limit)
		}
		files, err := util.WalkCorpus(input, ".txt")
		if err != nil {
			return nil, err
		}
		log.Println("Walking", len(files), "corpus files under", input)
		var sentences []string
		for _, file := range files {
			fileSents, err := raw.ReadFile(file, 0)
			if err != nil {
				return nil, err
			}
			sentences = append(sentences, fileSents...)
			if limit > 0 && len(sentences) >= limit {
				return sentences[:limit], nil
			}
		}
		return sentences, nil
	case "tsv":
		spec := tsv.Spec{
			SentenceCol: sentCol,
			DialectCol:  -1,
			SkipHeader:  true,
		}
		if dialect != "" {
			spec.DialectCol = dialectCol
			spec.Dialect = dialect
		}
		return tsv.ReadFile(input, spec, limit)
	case "xml":
		return xmlcorpus.ReadFile(input, sentElement, limit)
	default:
		return nil, fmt.Errorf("unknown corpus format %q, use raw|tsv|xml", corpusFormat)
	}
}

func Prep(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"input", "out"}
	VerifyFlags(cmd, REQUIRED_FLAGS)

	PrepConfigOut()

	sentences, err := readCorpus()
	if err != nil {
		return fmt.Errorf("failed reading corpus - %v", err)
	}
	log.Println("Read", len(sentences), "raw sentences")

	results := make([]string, len(sentences))
	for i, sentence := range sentences {
		tokens := clean.Tokenize(clean.Normalize(sentence))
		results[i] = strings.Join(tokens, " ")
	}
	if err := raw.WriteFile(outFile, results); err != nil {
		return fmt.Errorf("failed writing analyzer input - %v", err)
	}
	log.Println("Wrote", len(results), "cleaned sentences to", outFile)
	return nil
}

func PrepCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Prep,
		UsageLine: "prep <file options> [arguments]",
		Short:     "clean and tokenize a corpus into analyzer input",
		Long: `
clean and tokenize a raw/TSV/XML corpus into one sentence per line,
ready to feed the external morphological analyzer

	$ ./arapipe prep -input <file|dir> -format raw|tsv|xml -out <file> [options]

`,
		Flag: *flag.NewFlagSet("prep", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "input", "", "Corpus file or directory")
	cmd.Flag.StringVar(&corpusFormat, "format", "raw", "Corpus format [raw|tsv|xml]")
	cmd.Flag.StringVar(&outFile, "out", "", "Output file (cleaned, one sentence per line)")
	cmd.Flag.StringVar(&dialect, "dialect", "", "Keep only TSV rows with this dialect label")
	cmd.Flag.IntVar(&sentCol, "sentcol", 0, "TSV sentence column index")
	cmd.Flag.IntVar(&dialectCol, "dialectcol", 1, "TSV dialect column index")
	cmd.Flag.StringVar(&sentElement, "element", "sentence", "XML sentence element name")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit # of sentences read")
	return cmd
}
