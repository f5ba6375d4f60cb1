package app

import (
	"fmt"
	"log"
	"os"
	"os/exec"

	"arapipe/nlp/format/mada"
	"arapipe/util/conf"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func AnalyzeConfigOut(cfg *conf.Analyzer) {
	log.Println("Configuration")
	log.Printf("Analyzer Command:\t%s %v", cfg.Command, cfg.Args)
	log.Printf("Report Suffix:\t%s", cfg.ReportSuffix)
	log.Printf("Input:\t\t%s", input)
	log.Println()
}

func Analyze(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"input", "conf"}
	VerifyFlags(cmd, REQUIRED_FLAGS)

	cfg, err := conf.ReadFile(confFile)
	if err != nil {
		return fmt.Errorf("failed reading analyzer config - %v", err)
	}

	AnalyzeConfigOut(cfg)

	if !VerifyExists(input) {
		return fmt.Errorf("input file not found: %s", input)
	}

	log.Println("Running external analyzer on", input)
	run := exec.Command(cfg.Command, append(cfg.Args, input)...)
	run.Dir = cfg.WorkDir
	run.Stdout = os.Stdout
	run.Stderr = os.Stderr
	if err := run.Run(); err != nil {
		return fmt.Errorf("analyzer failed - %v", err)
	}

	report := input + cfg.ReportSuffix
	log.Println("Parsing analyzer report", report)
	output, err := mada.ParseFile(report, cfg.Strict, 0)
	if err != nil {
		return err
	}
	log.Println("Reconstructed", output.Len(), "sentences")
	if err := output.WriteFiles(report); err != nil {
		return fmt.Errorf("failed writing artifacts - %v", err)
	}
	return nil
}

func AnalyzeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Analyze,
		UsageLine: "analyze <file options> [arguments]",
		Short:     "run the external analyzer and post-process its report",
		Long: `
run the configured external morphological analyzer on a prepared corpus
file, then reconstruct the four sentence representations from its report

	$ ./arapipe analyze -input <prepared file> -conf <yaml config>

`,
		Flag: *flag.NewFlagSet("analyze", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "input", "", "Prepared corpus file (analyzer input)")
	cmd.Flag.StringVar(&confFile, "conf", "", "Analyzer configuration YAML file")
	return cmd
}
