// Package api is the HTTP client for the Nowledge Mem service.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserAgent identifies the CLI to the server. The cmd package wires
// the real build version in from the version package.
var UserAgent = "deep-mem/dev"

// Statuses the Mem server uses for successful requests.
var successCodes = map[int]bool{
	http.StatusOK:        true,
	http.StatusCreated:   true,
	http.StatusAccepted:  true,
	http.StatusNoContent: true,
}

const maxErrorBody = 200

// Client talks to one Mem server with a fixed bearer token.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a new API client. timeout is in seconds.
func NewClient(baseURL, token string, timeout int) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// SearchMemories runs a semantic memory search. mode is "deep" or
// "fast"; filterLabels is a comma-separated label filter, empty for
// none.
func (c *Client) SearchMemories(query string, limit int, mode, filterLabels string) (*MemorySearchResponse, error) {
	payload := map[string]any{
		"query": query,
		"limit": limit,
		"mode":  mode,
	}
	if filterLabels != "" {
		payload["filter_labels"] = filterLabels
	}

	resp, err := c.doRequest("POST", "/memories/search", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result MemorySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: memory search response: %v", ErrSchema, err)
	}
	return &result, nil
}

// GetMemory fetches a single memory by ID.
func (c *Client) GetMemory(id string) (*MemoryRecord, error) {
	resp, err := c.doRequest("GET", "/memories/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result MemoryRecord
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: memory response: %v", ErrSchema, err)
	}
	return &result, nil
}

// SearchThreads runs a thread text search. mode is "suggestions" or
// "full".
func (c *Client) SearchThreads(query string, limit int, mode string) (*ThreadSearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("mode", mode)

	resp, err := c.doRequest("GET", "/threads/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result ThreadSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: thread search response: %v", ErrSchema, err)
	}
	return &result, nil
}

// GetThread fetches one thread with all its messages.
func (c *Client) GetThread(id string) (*ThreadDetail, error) {
	resp, err := c.doRequest("GET", "/threads/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result ThreadDetail
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: thread response: %v", ErrSchema, err)
	}
	return &result, nil
}

// ThreadSummaries lists recent thread titles and summaries.
func (c *Client) ThreadSummaries(limit int) (*ThreadSearchResponse, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", limit))

	resp, err := c.doRequest("GET", "/threads/summaries?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result ThreadSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: thread summaries response: %v", ErrSchema, err)
	}
	return &result, nil
}

// doRequest performs one HTTP request against the server. Transport
// failures map to ErrNetwork, non-success statuses to *APIError.
func (c *Client) doRequest(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		bodyReader = strings.NewReader(string(bodyBytes))
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	slog.Debug("api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if !successCodes[resp.StatusCode] {
		bodyData, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		slog.Debug("api error", "status", resp.StatusCode, "request_id", requestID)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(bodyData)),
		}
	}

	return resp, nil
}
