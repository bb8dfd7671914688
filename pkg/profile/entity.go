package profile

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Record is the normalized CV profile handed to every consumer outside this
// package. The three list fields are always structured here; raw storage
// encodings never leak past the codec.
type Record struct {
	ID         uuid.UUID        `json:"id"`
	Skills     []string         `json:"skills"`
	Experience []ExperienceItem `json:"experience"`
	Education  []EducationItem  `json:"education"`
	FileURL    string           `json:"file_url"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type ExperienceItem struct {
	Period   string   `json:"period"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Position string   `json:"position"`
	Details  []string `json:"details"`
}

type EducationItem struct {
	Year        string `json:"year"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
}

// RawRecord is the row shape as stored. The ingestion pipeline writes the
// list columns either as JSON arrays or as JSON strings that themselves
// contain the encoded array, so they stay opaque until the codec runs.
type RawRecord struct {
	ID         uuid.UUID
	Skills     json.RawMessage
	Experience json.RawMessage
	Education  json.RawMessage
	FileURL    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateInput carries the required fields for a new profile. List fields are
// stored exactly as given (array or string form); the read path normalizes.
type CreateInput struct {
	Skills     json.RawMessage `json:"skills"`
	Experience json.RawMessage `json:"experience"`
	Education  json.RawMessage `json:"education"`
	FileURL    string          `json:"file_url"`
}

// UpdateFields is a partial update; nil fields keep their stored value.
type UpdateFields struct {
	Skills     json.RawMessage
	Experience json.RawMessage
	Education  json.RawMessage
	FileURL    *string
}

// Repository is the port to the profile row store.
type Repository interface {
	List(ctx context.Context, filter string) ([]RawRecord, error)
	Get(ctx context.Context, id uuid.UUID) (RawRecord, error)
	Insert(ctx context.Context, in CreateInput) (RawRecord, error)
	Update(ctx context.Context, id uuid.UUID, f UpdateFields, updatedAt time.Time) (RawRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
