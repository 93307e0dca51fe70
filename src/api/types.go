package api

import (
	"bytes"
	"encoding/json"
)

// MemoryRecord is a stored memory as the server returns it. The server
// has shipped both flat and nested shapes for labels and the source
// thread reference, so both are kept here and reconciled by callers.
type MemoryRecord struct {
	ID         string         `json:"id"`
	MemoryID   string         `json:"memory_id"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Importance *float64       `json:"importance"`
	Labels     []string       `json:"labels"`
	CreatedAt  string         `json:"created_at"`
	Metadata   MemoryMetadata `json:"metadata"`
}

// MemoryMetadata carries fields some server versions nest instead of
// putting at the top level of the record.
type MemoryMetadata struct {
	SourceID string   `json:"source_id"`
	Labels   []string `json:"labels"`
}

// MemoryHit is one entry of a memory search response. Older servers
// return the memory record itself; newer ones wrap it with scoring.
type MemoryHit struct {
	Memory          MemoryRecord
	SimilarityScore float64
	RelevanceReason string
}

func (h *MemoryHit) UnmarshalJSON(data []byte) error {
	var raw struct {
		Memory          *MemoryRecord `json:"memory"`
		SimilarityScore float64       `json:"similarity_score"`
		RelevanceReason string        `json:"relevance_reason"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	h.SimilarityScore = raw.SimilarityScore
	h.RelevanceReason = raw.RelevanceReason
	if raw.Memory != nil {
		h.Memory = *raw.Memory
		return nil
	}
	// Flat form: the hit is the memory record.
	return json.Unmarshal(data, &h.Memory)
}

// MemorySearchResponse accepts both a bare array of hits and the
// enveloped {"results": [...], "total_found": N} form.
type MemorySearchResponse struct {
	Results    []MemoryHit
	TotalFound int
}

func (r *MemorySearchResponse) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(data, &r.Results); err != nil {
			return err
		}
		r.TotalFound = len(r.Results)
		return nil
	}
	var env struct {
		Results    []MemoryHit `json:"results"`
		TotalFound int         `json:"total_found"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	r.Results = env.Results
	r.TotalFound = env.TotalFound
	if r.TotalFound == 0 {
		r.TotalFound = len(env.Results)
	}
	return nil
}

// ThreadRecord is a thread summary. The string thread_id is the one
// the API accepts for lookups; id is a server-internal UUID some
// versions send instead.
type ThreadRecord struct {
	ThreadID     string `json:"thread_id"`
	ID           string `json:"id"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	MessageCount int    `json:"message_count"`
	CreatedAt    string `json:"created_at"`
	LastActivity string `json:"last_activity"`
}

// ThreadSearchResponse is the envelope for thread search and thread
// summary listings.
type ThreadSearchResponse struct {
	Threads    []ThreadRecord `json:"threads"`
	TotalFound int            `json:"total_found"`
}

// Message is one conversation turn inside a thread.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ThreadDetail is a full thread. Accepts both the enveloped
// {"thread": {...}, "messages": [...]} form and a flat record with
// messages inline.
type ThreadDetail struct {
	Thread   ThreadRecord
	Messages []Message
}

func (d *ThreadDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		Thread   *ThreadRecord `json:"thread"`
		Messages []Message     `json:"messages"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Messages = raw.Messages
	if raw.Thread != nil {
		d.Thread = *raw.Thread
		return nil
	}
	return json.Unmarshal(data, &d.Thread)
}
