package main

import (
	"os"

	"github.com/prateekk-tech99/safebite-quiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
