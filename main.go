package main

import (
	"os"

	"github.com/temirov/vacuum/cmd/cli"
)

// main executes the branch-vacuum command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		cli.ReportError(os.Stderr, executionError)
		os.Exit(1)
	}
}
