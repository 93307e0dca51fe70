package terminal

import (
	"os"
	"strings"
)

// Symbols provides terminal symbols with Unicode/ASCII fallback
type Symbols struct {
	Success  string
	Error    string
	Warning  string
	Info     string
	Bullet   string
	Arrow    string
	Ellipsis string
}

// Unicode symbols (modern terminals)
var UnicodeSymbols = Symbols{
	Success:  "✓",
	Error:    "✗",
	Warning:  "⚠",
	Info:     "ℹ",
	Bullet:   "•",
	Arrow:    "→",
	Ellipsis: "…",
}

// ASCII symbols (fallback for limited terminals)
var ASCIISymbols = Symbols{
	Success:  "[OK]",
	Error:    "[FAIL]",
	Warning:  "[WARN]",
	Info:     "[INFO]",
	Bullet:   "*",
	Arrow:    "->",
	Ellipsis: "...",
}

// GetSymbols returns the appropriate symbol set based on terminal capabilities
func GetSymbols() Symbols {
	if supportsUnicode() {
		return UnicodeSymbols
	}
	return ASCIISymbols
}

// supportsUnicode checks if the terminal likely supports Unicode
func supportsUnicode() bool {
	// Check LANG/LC_ALL for UTF-8
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		val := strings.ToLower(os.Getenv(env))
		if strings.Contains(val, "utf-8") || strings.Contains(val, "utf8") {
			return true
		}
	}

	// Check TERM for known Unicode-capable terminals
	term := os.Getenv("TERM")
	unicodeTerms := []string{
		"xterm", "rxvt", "screen", "tmux", "vt100",
		"linux", "konsole", "gnome", "alacritty", "kitty",
	}
	for _, t := range unicodeTerms {
		if strings.Contains(term, t) {
			return true
		}
	}

	// Default to ASCII for safety
	return false
}
