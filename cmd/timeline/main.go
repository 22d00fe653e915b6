// Package main provides the entry point for the timeline CLI.
package main

import (
	"errors"
	"os"

	"github.com/cokomi/timeline/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// SilenceErrors leaves printing to us
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
