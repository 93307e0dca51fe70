package display

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/nowledge/deep-mem/src/terminal"
)

// Dracula palette, same as the TUI.
var (
	comment = lipgloss.Color("#6272a4")
	cyan    = lipgloss.Color("#8be9fd")
	green   = lipgloss.Color("#50fa7b")
	orange  = lipgloss.Color("#ffb86c")
	purple  = lipgloss.Color("#bd93f9")
	red     = lipgloss.Color("#ff5555")
	yellow  = lipgloss.Color("#f1fa8c")
)

// Styles holds the render styles for terminal output.
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Dim       lipgloss.Style
	Label     lipgloss.Style
	Critical  lipgloss.Style
	High      lipgloss.Style
	Medium    lipgloss.Style
	Low       lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	UserRole  lipgloss.Style
	AgentRole lipgloss.Style
}

// ColorStyles returns the default colored style set.
func ColorStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(cyan),
		Dim:       lipgloss.NewStyle().Foreground(comment),
		Label:     lipgloss.NewStyle().Foreground(cyan),
		Critical:  lipgloss.NewStyle().Foreground(red),
		High:      lipgloss.NewStyle().Foreground(yellow),
		Medium:    lipgloss.NewStyle().Foreground(purple),
		Low:       lipgloss.NewStyle().Foreground(comment),
		Error:     lipgloss.NewStyle().Foreground(red).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(green).Bold(true),
		UserRole:  lipgloss.NewStyle().Foreground(orange).Bold(true),
		AgentRole: lipgloss.NewStyle().Foreground(green).Bold(true),
	}
}

// PlainStyles returns an unstyled set; Render passes text through
// untouched.
func PlainStyles() Styles {
	return Styles{}
}

// AutoStyles picks colored or plain styles. Color is disabled by the
// flag, by the NO_COLOR convention, or when stdout is not a terminal.
func AutoStyles(noColor bool) Styles {
	if noColor || os.Getenv("NO_COLOR") != "" || !terminal.IsTerminal(os.Stdout.Fd()) {
		return PlainStyles()
	}
	return ColorStyles()
}
