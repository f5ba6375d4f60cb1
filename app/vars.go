package app

import (
	"log"
	"os"

	"github.com/gonuts/commander"
)

var (
	// file names
	input    string
	outBase  string
	outFile  string
	confFile string

	// processing options
	limit        int
	strict       bool
	corpusFormat string
	dialect      string
	sentCol      int
	dialectCol   int
	sentElement  string

	// server options
	addr string
)

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) {
	for _, flag := range required {
		f := cmd.Flag.Lookup(flag)
		if f.Value.String() == "" {
			log.Printf("Required flag %s not set", f.Name)
			cmd.Usage()
			os.Exit(1)
		}
	}
}
