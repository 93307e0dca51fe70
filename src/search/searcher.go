// Package search implements progressive memory retrieval: memory
// summaries first, related threads second, full content only on
// explicit expansion.
package search

import (
	"errors"
	"log/slog"

	"github.com/nowledge/deep-mem/src/api"
)

const (
	defaultMemoryLimit = 10
	defaultThreadLimit = 5

	// Importance assumed for records that predate the importance field.
	fallbackImportance = 0.5
)

// MemClient is the part of the API client the searcher needs.
type MemClient interface {
	SearchMemories(query string, limit int, mode, filterLabels string) (*api.MemorySearchResponse, error)
	SearchThreads(query string, limit int, mode string) (*api.ThreadSearchResponse, error)
	GetThread(id string) (*api.ThreadDetail, error)
}

// Memory is a normalized memory search result.
type Memory struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	SimilarityScore float64  `json:"score"`
	Importance      float64  `json:"importance"`
	RelevanceReason string   `json:"relevance_reason,omitempty"`
	SourceThreadID  string   `json:"source_thread_id,omitempty"`
	Labels          []string `json:"labels,omitempty"`
	CreatedAt       string   `json:"created_at,omitempty"`
}

// ThreadSummary is a normalized thread reference.
type ThreadSummary struct {
	ThreadID     string `json:"id"`
	Title        string `json:"title,omitempty"`
	Summary      string `json:"summary,omitempty"`
	MessageCount int    `json:"message_count"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// Result is the outcome of one deep search.
type Result struct {
	Query          string          `json:"query"`
	Memories       []Memory        `json:"memories"`
	RelatedThreads []ThreadSummary `json:"threads"`
	TotalMemories  int             `json:"total_memories"`
	TotalThreads   int             `json:"total_threads"`
}

// Options tune one search invocation. Zero limits fall back to the
// defaults.
type Options struct {
	MemoryLimit   int
	ThreadLimit   int
	FilterLabels  string
	ExpandThreads bool
}

// Searcher runs the two-phase deep search against a Mem server.
type Searcher struct {
	client MemClient
}

// NewSearcher creates a searcher backed by the given client.
func NewSearcher(client MemClient) *Searcher {
	return &Searcher{client: client}
}

// Search runs the deep search. Phase 1 is a semantic memory search;
// phase 2 resolves related threads, preferring the source-thread
// references carried by the memories and falling back to a thread
// text search when none resolve.
func (s *Searcher) Search(query string, opts Options) (*Result, error) {
	memoryLimit := opts.MemoryLimit
	if memoryLimit <= 0 {
		memoryLimit = defaultMemoryLimit
	}
	threadLimit := opts.ThreadLimit
	if threadLimit <= 0 {
		threadLimit = defaultThreadLimit
	}

	memResp, err := s.client.SearchMemories(query, memoryLimit, "deep", opts.FilterLabels)
	if err != nil {
		return nil, err
	}

	memories := normalizeMemories(memResp.Results)
	if len(memories) > memoryLimit {
		memories = memories[:memoryLimit]
	}

	result := &Result{
		Query:         query,
		Memories:      memories,
		TotalMemories: memResp.TotalFound,
	}
	if result.TotalMemories == 0 {
		result.TotalMemories = len(memories)
	}

	if !opts.ExpandThreads || len(memories) == 0 {
		return result, nil
	}

	threads, err := s.resolveSourceThreads(memories, threadLimit)
	if err != nil {
		return nil, err
	}

	if len(threads) == 0 {
		threadResp, err := s.client.SearchThreads(query, threadLimit, "full")
		if err != nil {
			return nil, err
		}
		threads = NormalizeThreads(threadResp.Threads)
		result.TotalThreads = threadResp.TotalFound
	}

	result.RelatedThreads = threads
	if result.TotalThreads == 0 {
		result.TotalThreads = len(threads)
	}
	return result, nil
}

// resolveSourceThreads fetches the threads the memories point at,
// deduplicated in first-seen order. A missing thread is skipped (it
// may have been deleted since the memory was distilled); an auth
// failure aborts since every following fetch would fail the same way.
func (s *Searcher) resolveSourceThreads(memories []Memory, limit int) ([]ThreadSummary, error) {
	var ids []string
	seen := make(map[string]bool)
	for _, m := range memories {
		if m.SourceThreadID == "" || seen[m.SourceThreadID] {
			continue
		}
		seen[m.SourceThreadID] = true
		ids = append(ids, m.SourceThreadID)
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}

	var threads []ThreadSummary
	for _, id := range ids {
		detail, err := s.client.GetThread(id)
		if err != nil {
			if errors.Is(err, api.ErrAuth) {
				return nil, err
			}
			slog.Debug("skipping unresolvable source thread", "thread_id", id, "error", err)
			continue
		}
		t := normalizeThread(detail.Thread)
		if t.MessageCount == 0 {
			t.MessageCount = len(detail.Messages)
		}
		threads = append(threads, t)
	}
	return threads, nil
}

func normalizeMemories(hits []api.MemoryHit) []Memory {
	memories := make([]Memory, 0, len(hits))
	for _, hit := range hits {
		rec := hit.Memory

		id := rec.ID
		if id == "" {
			id = rec.MemoryID
		}

		labels := rec.Labels
		if len(labels) == 0 {
			labels = rec.Metadata.Labels
		}

		importance := fallbackImportance
		if rec.Importance != nil {
			importance = *rec.Importance
		}

		memories = append(memories, Memory{
			ID:              id,
			Title:           rec.Title,
			Content:         rec.Content,
			SimilarityScore: hit.SimilarityScore,
			Importance:      importance,
			RelevanceReason: hit.RelevanceReason,
			SourceThreadID:  rec.Metadata.SourceID,
			Labels:          labels,
			CreatedAt:       rec.CreatedAt,
		})
	}
	return memories
}

// NormalizeThreads converts wire thread records to summaries.
func NormalizeThreads(records []api.ThreadRecord) []ThreadSummary {
	threads := make([]ThreadSummary, 0, len(records))
	for _, t := range records {
		threads = append(threads, normalizeThread(t))
	}
	return threads
}

func normalizeThread(t api.ThreadRecord) ThreadSummary {
	id := t.ThreadID
	if id == "" {
		id = t.ID
	}
	createdAt := t.CreatedAt
	if createdAt == "" {
		createdAt = t.LastActivity
	}
	return ThreadSummary{
		ThreadID:     id,
		Title:        t.Title,
		Summary:      t.Summary,
		MessageCount: t.MessageCount,
		CreatedAt:    createdAt,
	}
}
