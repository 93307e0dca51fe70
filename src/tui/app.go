// Package tui implements the interactive full-screen search mode.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nowledge/deep-mem/src/display"
	"github.com/nowledge/deep-mem/src/search"
)

// Dracula colors
var (
	comment = lipgloss.Color("#6272a4")
	cyan    = lipgloss.Color("#8be9fd")
	purple  = lipgloss.Color("#bd93f9")
	red     = lipgloss.Color("#ff5555")
	fg      = lipgloss.Color("#f8f8f2")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(purple).
			Bold(true).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(comment).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Foreground(fg)

	metaStyle = lipgloss.NewStyle().
			Foreground(cyan)

	helpStyle = lipgloss.NewStyle().
			Foreground(comment)

	errorStyle = lipgloss.NewStyle().
			Foreground(red)
)

type model struct {
	searcher  *search.Searcher
	input     textinput.Model
	viewport  viewport.Model
	result    *search.Result
	err       error
	searching bool
	width     int
	height    int
}

type searchResultMsg struct {
	result *search.Result
	err    error
}

func initialModel(searcher *search.Searcher) model {
	ti := textinput.New()
	ti.Placeholder = "Search memories..."
	ti.Focus()
	ti.Width = 50

	return model{
		searcher: searcher,
		input:    ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if m.input.Value() != "" {
				m.searching = true
				return m, m.doSearch
			}
		case "esc":
			m.input.SetValue("")
			m.result = nil
			m.err = nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, msg.Height-6)

	case searchResultMsg:
		m.searching = false
		m.result = msg.result
		m.err = msg.err
		m.viewport.SetContent(m.renderResult())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m model) doSearch() tea.Msg {
	// Memory phase only; thread discovery stays on the CLI path where
	// the expand hint can be followed.
	result, err := m.searcher.Search(m.input.Value(), search.Options{
		MemoryLimit:   20,
		ExpandThreads: false,
	})
	if err != nil {
		return searchResultMsg{err: err}
	}
	return searchResultMsg{result: result}
}

func (m model) renderResult() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.result == nil || len(m.result.Memories) == 0 {
		return helpStyle.Render("No memories found")
	}

	var sb strings.Builder
	for i, mem := range m.result.Memories {
		title := mem.Title
		if title == "" {
			title = "[untitled]"
		}
		sb.WriteString(resultStyle.Render(fmt.Sprintf("%d. %s", i+1, title)))
		sb.WriteString("\n")
		sb.WriteString(metaStyle.Render(fmt.Sprintf("   %s match, %s importance",
			display.FormatScore(mem.SimilarityScore), display.ImportanceTier(mem.Importance))))
		sb.WriteString("\n")
		if mem.Content != "" {
			preview := mem.Content
			if runes := []rune(preview); len(runes) > 150 {
				preview = string(runes[:150]) + "…"
			}
			sb.WriteString(helpStyle.Render("   " + preview))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Deep Memory Search"))
	sb.WriteString("\n\n")

	sb.WriteString(inputStyle.Render(m.input.View()))
	sb.WriteString("\n\n")

	if m.searching {
		sb.WriteString(helpStyle.Render("Searching..."))
	} else {
		sb.WriteString(m.viewport.View())
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Enter: search • Esc: clear • q: quit"))

	return sb.String()
}

// Run starts the TUI application
func Run(client search.MemClient) error {
	p := tea.NewProgram(initialModel(search.NewSearcher(client)), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
