package app

import (
	"fmt"
	"log"
	"strings"

	"arapipe/nlp/clean"
	"arapipe/nlp/format/raw"
	"arapipe/nlp/xliter8"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var direction string

func Xliter8ConfigOut() {
	log.Println("Configuration")
	log.Printf("Direction:\t%s", direction)
	log.Printf("Limit:\t%v", limit)
	log.Println("Data")
	log.Printf("Input File:\t%s", input)
	log.Printf("Output File:\t%s", outFile)
}

func Xliter8(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"i", "o"}

	VerifyFlags(cmd, REQUIRED_FLAGS)

	Xliter8ConfigOut()

	if !VerifyExists(input) {
		return fmt.Errorf("input file not found: %s", input)
	}

	xliter8r := &xliter8.Arabic{}
	var xf func(string) string
	switch direction {
	case "to":
		xf = xliter8r.To
	case "from":
		xf = xliter8r.From
	default:
		panic("Unknown direction use 'from' or 'to'")
	}

	data, err := raw.ReadFile(input, limit)
	if err != nil {
		panic(fmt.Sprintf("Failed reading raw file - %v", err))
	}
	log.Println("Read", len(data), "raw sentences from", input)
	results := make([]string, len(data))
	log.Println("Processing", direction, "transliterated representation")
	for i, sent := range data {
		tokens := clean.Tokenize(sent)
		for j, token := range tokens {
			tokens[j] = xf(token)
		}
		results[i] = strings.Join(tokens, " ")
	}
	if err := raw.WriteFile(outFile, results); err != nil {
		return fmt.Errorf("failed writing output - %v", err)
	}
	log.Println("Wrote", len(results), "sentences to", outFile)
	return nil
}

func Xliter8Cmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Xliter8,
		UsageLine: "xliter8 <file options> [arguments]",
		Short:     "transliterates to<->from an arabic file",
		Long: `
transliterates an arabic file using the Buckwalter scheme

	$ ./arapipe xliter8 -i <input file> -o <output file> [-d to|from]

`,
		Flag: *flag.NewFlagSet("xliter8", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "i", "", "Input File")
	cmd.Flag.StringVar(&outFile, "o", "", "Output File")
	cmd.Flag.StringVar(&direction, "d", "to", "Direction of transliteration [to:arabic->buckwalter, from:buckwalter->arabic]")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit # of rows read")
	return cmd
}
