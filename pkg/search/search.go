package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/conchobar/candidates/pkg/profile"
)

// Result is one entry returned by the external search provider, already
// reduced to a correlation id and a relevance score. A missing correlation
// id is kept as empty and skipped during ranking.
type Result struct {
	RecordID string
	Score    float64
}

// Provider is the port to the external semantic search service.
type Provider interface {
	Query(ctx context.Context, query string) ([]Result, error)
}

// ErrBlankQuery reports an empty or whitespace-only query. Callers keep the
// unranked record set; no provider call was made.
var ErrBlankQuery = errors.New("blank query")

// ErrSuperseded reports that a newer query became active while this one was
// in flight. The result must be discarded, never applied to displayed state.
var ErrSuperseded = errors.New("query superseded by a newer one")

// FailureClass distinguishes why the provider was unusable.
type FailureClass string

const (
	FailTransport FailureClass = "transport"
	FailStatus    FailureClass = "status"
	FailEmpty     FailureClass = "empty"
	FailMalformed FailureClass = "malformed"
)

// UnavailableError reports a failed provider call. Callers fail open: they
// show the full unranked set together with the Diagnostic message.
type UnavailableError struct {
	Class  FailureClass
	Status int
	Err    error
}

func (e *UnavailableError) Error() string {
	if e.Class == FailStatus {
		return fmt.Sprintf("search provider unavailable (%s %d): %v", e.Class, e.Status, e.Err)
	}
	return fmt.Sprintf("search provider unavailable (%s): %v", e.Class, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Diagnostic is the user-facing message for this failure class.
func (e *UnavailableError) Diagnostic() string {
	switch e.Class {
	case FailStatus:
		return fmt.Sprintf("Search service error (%d). Please try again later.", e.Status)
	case FailEmpty:
		return "Search service returned an empty response. It may not be configured properly."
	case FailMalformed:
		return "Search service returned malformed data. Please try again."
	default:
		return "Unable to connect to search service. Please check your connection."
	}
}

// Ranked is a profile with the score the provider assigned to it.
type Ranked struct {
	profile.Record
	Score float64 `json:"score"`
}

// Engine turns provider results into a filtered, score-ordered view over the
// current record set. It also enforces last-request-wins: each Rank call
// registers its query as active, and a provider response that completes
// after a different query took over is discarded.
type Engine struct {
	provider Provider
	log      *zap.Logger

	mu     sync.Mutex
	active string
}

func NewEngine(provider Provider, log *zap.Logger) *Engine {
	return &Engine{provider: provider, log: log}
}

// Rank resolves query against records. Records without a corresponding
// provider entry are dropped, survivors are sorted by score descending with
// ties kept in the incoming record order. An empty ranked slice is a valid
// "no matches" outcome, not an error.
func (e *Engine) Rank(ctx context.Context, query string, records []profile.Record) ([]Ranked, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrBlankQuery
	}

	e.mu.Lock()
	e.active = query
	e.mu.Unlock()

	results, err := e.provider.Query(ctx, query)
	if e.stale(query) {
		return nil, ErrSuperseded
	}
	if err != nil {
		var ue *UnavailableError
		if errors.As(err, &ue) {
			e.log.Warn("search provider call failed",
				zap.String("query", query),
				zap.String("class", string(ue.Class)),
				zap.Error(err),
			)
		}
		return nil, err
	}

	// Later entries for the same id win, matching the provider's own
	// ordering semantics for duplicated documents.
	scores := make(map[string]float64, len(results))
	for _, r := range results {
		if r.RecordID == "" {
			continue
		}
		scores[r.RecordID] = r.Score
	}

	ranked := make([]Ranked, 0, len(records))
	for _, rec := range records {
		if score, ok := scores[rec.ID.String()]; ok {
			ranked = append(ranked, Ranked{Record: rec, Score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked, nil
}

func (e *Engine) stale(query string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active != query
}
