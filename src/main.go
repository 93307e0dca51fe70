package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nowledge/deep-mem/src/cmd"
)

func main() {
	// Directories and logging must exist before any command runs.
	if err := InitCLI(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cmd.ErrConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
