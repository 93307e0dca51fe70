// Package terminal provides terminal capability detection for the CLI.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Size represents terminal dimensions
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal size, defaulting to 80x24 when
// stdout is not a terminal.
func GetSize() Size {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols == 0 {
		cols = 80
	}
	if err != nil || rows == 0 {
		rows = 24
	}
	return Size{Cols: cols, Rows: rows}
}

// IsTerminal reports whether the given file descriptor is a terminal.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}
