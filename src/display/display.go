// Package display renders search results and thread content for the
// terminal. Rendering is a pure function of the input records: for a
// fixed input and fixed options the output bytes are identical.
//
// Memory and thread bodies come from stored conversations and are
// untrusted; they are always emitted inside fence tags so that agents
// reading the output do not act on instructions embedded in them.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/nowledge/deep-mem/src/api"
	"github.com/nowledge/deep-mem/src/search"
	"github.com/nowledge/deep-mem/src/terminal"
)

const (
	previewLen        = 150
	previewLenVerbose = 300

	memoryFence   = "untrusted_memory_content"
	threadFence   = "untrusted_thread_metadata"
	historyFence  = "untrusted_historical_content"
	threadIDWidth = 8
)

// Options control a Renderer.
type Options struct {
	Verbose bool
	Styles  Styles
	Symbols terminal.Symbols
	Width   int
}

// Renderer writes formatted output to a single writer.
type Renderer struct {
	w       io.Writer
	styles  Styles
	symbols terminal.Symbols
	verbose bool
	width   int
}

// New creates a renderer. A zero Width falls back to the detected
// terminal width.
func New(w io.Writer, opts Options) *Renderer {
	width := opts.Width
	if width <= 0 {
		width = terminal.GetSize().Cols
	}
	symbols := opts.Symbols
	if symbols == (terminal.Symbols{}) {
		symbols = terminal.GetSymbols()
	}
	return &Renderer{
		w:       w,
		styles:  opts.Styles,
		symbols: symbols,
		verbose: opts.Verbose,
		width:   width,
	}
}

// Result renders a deep search result: memory summaries first, then
// related thread references.
func (r *Renderer) Result(res *search.Result) {
	fmt.Fprintf(r.w, "\n%s %s\n", r.styles.Title.Render("Query:"), res.Query)
	fmt.Fprintf(r.w, "%s\n\n", r.styles.Dim.Render(fmt.Sprintf(
		"Found %d memories, %d related threads", res.TotalMemories, res.TotalThreads)))

	if len(res.Memories) == 0 {
		fmt.Fprintf(r.w, "%s\n", r.styles.High.Render("No memories found."))
		return
	}

	fmt.Fprintf(r.w, "%s\n\n", r.styles.Header.Render("== Memories =="))
	fmt.Fprintf(r.w, "<%s>\n", memoryFence)
	for i, mem := range res.Memories {
		r.memory(i+1, mem)
	}
	fmt.Fprintf(r.w, "</%s>\n", memoryFence)

	if len(res.RelatedThreads) > 0 {
		fmt.Fprintf(r.w, "\n%s\n\n", r.styles.Header.Render("== Related Threads =="))
		fmt.Fprintf(r.w, "<%s>\n", threadFence)
		for _, thread := range res.RelatedThreads {
			r.threadRef(thread)
		}
		fmt.Fprintf(r.w, "</%s>\n\n", threadFence)
		fmt.Fprintf(r.w, "%s\n", r.styles.Dim.Render(
			"Tip: run 'deep-mem expand <thread_id>' to view full thread content"))
	}
}

func (r *Renderer) memory(rank int, mem search.Memory) {
	title := mem.Title
	if title == "" {
		title = "[untitled]"
	}
	title = r.truncate(title, r.titleWidth())

	header := fmt.Sprintf("%d. %s", rank, title)
	meta := fmt.Sprintf("(%s match, %s importance)",
		FormatScore(mem.SimilarityScore), r.importance(mem.Importance))
	fmt.Fprintf(r.w, "%s %s\n", r.styles.Title.Render(header), r.styles.Dim.Render(meta))

	limit := previewLen
	if r.verbose {
		limit = previewLenVerbose
	}
	fmt.Fprintf(r.w, "   %s\n", r.truncate(mem.Content, limit))

	if len(mem.Labels) > 0 {
		tags := make([]string, len(mem.Labels))
		for i, label := range mem.Labels {
			tags[i] = r.styles.Label.Render("#" + label)
		}
		fmt.Fprintf(r.w, "   %s\n", strings.Join(tags, " "))
	}

	if r.verbose && mem.RelevanceReason != "" {
		fmt.Fprintf(r.w, "   %s\n", r.styles.Dim.Render("Why: "+mem.RelevanceReason))
	}
	if r.verbose && mem.CreatedAt != "" {
		fmt.Fprintf(r.w, "   %s\n", r.styles.Dim.Render("Created: "+mem.CreatedAt))
	}

	if mem.SourceThreadID != "" {
		short := mem.SourceThreadID
		if len(short) > threadIDWidth {
			short = short[:threadIDWidth] + r.symbols.Ellipsis
		}
		fmt.Fprintf(r.w, "   %s\n", r.styles.Dim.Render("Source: thread/"+short))
	}
	fmt.Fprintln(r.w)
}

func (r *Renderer) threadRef(thread search.ThreadSummary) {
	title := thread.Title
	if title == "" {
		title = thread.Summary
	}
	if title == "" {
		title = "[untitled thread]"
	}
	title = r.truncate(title, r.titleWidth())

	id := thread.ThreadID
	if id == "" {
		id = "?"
	}

	fmt.Fprintf(r.w, "  %s %s\n", r.symbols.Arrow, r.styles.Title.Render(title))
	fmt.Fprintf(r.w, "    %s\n", r.styles.Dim.Render(fmt.Sprintf(
		"id: %s (%d messages)", id, thread.MessageCount)))
}

// Thread renders the full content of one thread.
func (r *Renderer) Thread(detail *api.ThreadDetail) {
	title := detail.Thread.Title
	if title == "" {
		title = detail.Thread.Summary
	}
	if title == "" {
		title = "Thread Detail"
	}
	fmt.Fprintf(r.w, "\n%s\n", r.styles.Header.Render(title))

	if len(detail.Messages) == 0 {
		fmt.Fprintf(r.w, "\n%s\n", r.styles.High.Render("No messages in this thread."))
		return
	}

	fmt.Fprintf(r.w, "\n<%s>\n", historyFence)
	for _, msg := range detail.Messages {
		switch msg.Role {
		case "user":
			fmt.Fprintf(r.w, "\n%s\n", r.styles.UserRole.Render("User:"))
		case "assistant":
			fmt.Fprintf(r.w, "\n%s\n", r.styles.AgentRole.Render("Assistant:"))
		default:
			fmt.Fprintf(r.w, "\n%s\n", r.styles.Title.Render(msg.Role+":"))
		}
		fmt.Fprintln(r.w, msg.Content)
	}
	fmt.Fprintf(r.w, "\n</%s>\n", historyFence)
}

// ThreadList renders thread summaries, most recent first as the
// server returns them.
func (r *Renderer) ThreadList(threads []search.ThreadSummary) {
	if len(threads) == 0 {
		fmt.Fprintf(r.w, "%s\n", r.styles.High.Render("No threads found."))
		return
	}

	fmt.Fprintf(r.w, "\n%s\n\n", r.styles.Header.Render(
		fmt.Sprintf("== Threads (%d) ==", len(threads))))
	fmt.Fprintf(r.w, "<%s>\n", threadFence)
	for _, thread := range threads {
		r.threadRef(thread)
	}
	fmt.Fprintf(r.w, "</%s>\n", threadFence)
}

func (r *Renderer) importance(importance float64) string {
	tier := ImportanceTier(importance)
	switch tier {
	case "critical":
		return r.styles.Critical.Render(tier)
	case "high":
		return r.styles.High.Render(tier)
	case "medium":
		return r.styles.Medium.Render(tier)
	default:
		return r.styles.Low.Render(tier)
	}
}

// titleWidth leaves room for the rank prefix and score suffix on a
// title line.
func (r *Renderer) titleWidth() int {
	w := r.width - 40
	if w < 20 {
		w = 20
	}
	return w
}

func (r *Renderer) truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + r.symbols.Ellipsis
}

// FormatScore renders a similarity score as an integer percentage.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.0f%%", score*100)
}

// ImportanceTier buckets an importance value into a named tier.
func ImportanceTier(importance float64) string {
	switch {
	case importance >= 0.8:
		return "critical"
	case importance >= 0.6:
		return "high"
	case importance >= 0.4:
		return "medium"
	default:
		return "low"
	}
}
