// Package main provides CLI startup for deep-mem.
package main

import (
	"fmt"

	"github.com/nowledge/deep-mem/src/paths"
)

// InitCLI ensures CLI directories exist with correct permissions.
// Logging starts later, once the config file has been read.
func InitCLI() error {
	if err := paths.EnsureDirs(); err != nil {
		return fmt.Errorf("init directories: %w", err)
	}
	return nil
}
