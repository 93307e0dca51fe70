package api

import (
	"encoding/json"
	"testing"
)

// Tests for MemorySearchResponse shapes

func TestMemorySearchResponseEnvelope(t *testing.T) {
	data := `{
		"results": [
			{"memory": {"id": "m1", "title": "First", "importance": 0.9}, "similarity_score": 0.82, "relevance_reason": "direct match"}
		],
		"total_found": 40
	}`

	var resp MemorySearchResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(resp.Results) != 1 {
		t.Fatalf("Results length = %d, want 1", len(resp.Results))
	}
	hit := resp.Results[0]
	if hit.Memory.ID != "m1" || hit.Memory.Title != "First" {
		t.Errorf("Memory = %+v", hit.Memory)
	}
	if hit.SimilarityScore != 0.82 {
		t.Errorf("SimilarityScore = %v", hit.SimilarityScore)
	}
	if hit.RelevanceReason != "direct match" {
		t.Errorf("RelevanceReason = %q", hit.RelevanceReason)
	}
	if hit.Memory.Importance == nil || *hit.Memory.Importance != 0.9 {
		t.Errorf("Importance = %v", hit.Memory.Importance)
	}
	if resp.TotalFound != 40 {
		t.Errorf("TotalFound = %d, want 40", resp.TotalFound)
	}
}

func TestMemorySearchResponseBareArray(t *testing.T) {
	data := `[{"id": "m1", "content": "flat record"}, {"id": "m2"}]`

	var resp MemorySearchResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(resp.Results) != 2 {
		t.Fatalf("Results length = %d, want 2", len(resp.Results))
	}
	if resp.Results[0].Memory.ID != "m1" || resp.Results[0].Memory.Content != "flat record" {
		t.Errorf("flat memory = %+v", resp.Results[0].Memory)
	}
	if resp.TotalFound != 2 {
		t.Errorf("TotalFound = %d, want 2", resp.TotalFound)
	}
}

func TestMemorySearchResponseEnvelopeWithoutTotal(t *testing.T) {
	data := `{"results": [{"id": "m1"}, {"id": "m2"}, {"id": "m3"}]}`

	var resp MemorySearchResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if resp.TotalFound != 3 {
		t.Errorf("TotalFound = %d, want result count fallback 3", resp.TotalFound)
	}
}

func TestMemoryHitAbsentImportance(t *testing.T) {
	data := `{"id": "m1", "content": "old record"}`

	var hit MemoryHit
	if err := json.Unmarshal([]byte(data), &hit); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if hit.Memory.Importance != nil {
		t.Errorf("Importance = %v, want nil for absent field", hit.Memory.Importance)
	}
}

func TestMemoryMetadataLabels(t *testing.T) {
	data := `{"id": "m1", "metadata": {"source_id": "t9", "labels": ["go", "infra"]}}`

	var hit MemoryHit
	if err := json.Unmarshal([]byte(data), &hit); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if hit.Memory.Metadata.SourceID != "t9" {
		t.Errorf("SourceID = %q", hit.Memory.Metadata.SourceID)
	}
	if len(hit.Memory.Metadata.Labels) != 2 {
		t.Errorf("metadata labels = %v", hit.Memory.Metadata.Labels)
	}
}

// Tests for ThreadDetail shapes

func TestThreadDetailEnvelope(t *testing.T) {
	data := `{
		"thread": {"thread_id": "t1", "title": "Build pipeline", "message_count": 2},
		"messages": [{"role": "user", "content": "hi"}, {"role": "assistant", "content": "hello"}]
	}`

	var detail ThreadDetail
	if err := json.Unmarshal([]byte(data), &detail); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if detail.Thread.ThreadID != "t1" || detail.Thread.Title != "Build pipeline" {
		t.Errorf("Thread = %+v", detail.Thread)
	}
	if len(detail.Messages) != 2 || detail.Messages[1].Role != "assistant" {
		t.Errorf("Messages = %+v", detail.Messages)
	}
}

func TestThreadDetailFlat(t *testing.T) {
	data := `{"thread_id": "t2", "summary": "notes", "messages": [{"role": "user", "content": "q"}]}`

	var detail ThreadDetail
	if err := json.Unmarshal([]byte(data), &detail); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if detail.Thread.ThreadID != "t2" || detail.Thread.Summary != "notes" {
		t.Errorf("Thread = %+v", detail.Thread)
	}
	if len(detail.Messages) != 1 {
		t.Errorf("Messages = %+v", detail.Messages)
	}
}
