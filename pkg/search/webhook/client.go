package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/conchobar/candidates/pkg/search"
)

// Client calls the external semantic search webhook. The provider indexes CV
// documents out of band; each hit carries a relevance score and the profile
// row id in its document metadata.
type Client struct {
	url    string
	httpDo *http.Client
}

func New(url string) *Client {
	return &Client{
		url: url,
		httpDo: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type queryRequest struct {
	Message string `json:"message"`
}

// resultEntry mirrors the provider wire format. The correlation id appears
// under supabase_record_id on current indexes and supabase_id on ones built
// before the field was renamed.
type resultEntry struct {
	Score    float64 `json:"score"`
	Document struct {
		Metadata struct {
			RecordID    string `json:"supabase_record_id"`
			OldRecordID string `json:"supabase_id"`
		} `json:"metadata"`
	} `json:"document"`
}

func (c *Client) Query(ctx context.Context, query string) ([]search.Result, error) {
	payload, err := json.Marshal(queryRequest{Message: query})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return nil, &search.UnavailableError{Class: search.FailTransport, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &search.UnavailableError{
			Class:  search.FailStatus,
			Status: resp.StatusCode,
			Err:    errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &search.UnavailableError{Class: search.FailTransport, Err: err}
	}
	if strings.TrimSpace(string(body)) == "" {
		return nil, &search.UnavailableError{Class: search.FailEmpty, Err: errors.New("empty response body")}
	}

	var entries []resultEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, &search.UnavailableError{Class: search.FailMalformed, Err: err}
	}

	results := make([]search.Result, 0, len(entries))
	for _, e := range entries {
		id := e.Document.Metadata.RecordID
		if id == "" {
			id = e.Document.Metadata.OldRecordID
		}
		results = append(results, search.Result{RecordID: id, Score: e.Score})
	}
	return results, nil
}
