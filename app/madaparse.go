package app

import (
	"fmt"
	"log"

	"arapipe/nlp/format/mada"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func MadaParseConfigOut() {
	log.Println("Configuration")
	log.Printf("MADA Report:\t\t%s", input)
	log.Printf("Output Base:\t\t%s", outBase)
	log.Printf("Strict:\t\t%v", strict)
	log.Printf("Limit:\t\t%v", limit)
	log.Println()
}

func MadaParse(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"mada"}
	VerifyFlags(cmd, REQUIRED_FLAGS)

	if outBase == "" {
		outBase = input
	}

	MadaParseConfigOut()

	if !VerifyExists(input) {
		return fmt.Errorf("report file not found: %s", input)
	}

	log.Println("Reading morphological analysis report", input)
	output, err := mada.ParseFile(input, strict, limit)
	if err != nil {
		if output != nil {
			log.Println("Flushed", output.Len(), "sentences before failure")
		}
		return err
	}
	log.Println("Reconstructed", output.Len(), "sentences")
	log.Println("Writing artifacts with base", outBase)
	if err := output.WriteFiles(outBase); err != nil {
		return fmt.Errorf("failed writing artifacts - %v", err)
	}
	return nil
}

func MadaParseCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       MadaParse,
		UsageLine: "madaparse <file options> [arguments]",
		Short:     "reconstruct sentence representations from a MADA report",
		Long: `
reconstruct diacritized, de-diacritized, lemmatized and lemma+POS sentence
files from the report of the MADA morphological analyzer

	$ ./arapipe madaparse -mada <report file> [-out <base>] [options]

`,
		Flag: *flag.NewFlagSet("madaparse", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "mada", "", "Input MADA report file")
	cmd.Flag.StringVar(&outBase, "out", "", "Base path for the four output artifacts (default: the report path)")
	cmd.Flag.BoolVar(&strict, "strict", false, "Reject unrecognized report lines")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit # of sentences read")
	return cmd
}
