package profile

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conchobar/candidates/pkg/blob"
)

// UseCase exposes the profile operations to the HTTP layer.
type UseCase interface {
	List(ctx context.Context, filter string) ([]Record, error)
	Get(ctx context.Context, id uuid.UUID) (Record, error)
	Create(ctx context.Context, in CreateInput) (Record, error)
	Update(ctx context.Context, id uuid.UUID, f UpdateFields) (Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	blobs blob.Store
	codec *Codec
	log   *zap.Logger
	now   func() time.Time
}

func NewService(repo Repository, blobs blob.Store, log *zap.Logger) UseCase {
	return &service{
		repo:  repo,
		blobs: blobs,
		codec: NewCodec(log),
		log:   log,
		now:   time.Now,
	}
}

// List returns profiles newest first, optionally narrowed by a
// case-insensitive substring filter over the stored text of the skills,
// experience and education columns. This is the lexical filter; semantic
// search lives in the ranking engine.
func (s *service) List(ctx context.Context, filter string) ([]Record, error) {
	raws, err := s.repo.List(ctx, strings.TrimSpace(filter))
	if err != nil {
		return nil, err
	}
	return s.codec.DecodeAll(raws), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	raw, err := s.repo.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	return s.codec.Decode(raw), nil
}

func (s *service) Create(ctx context.Context, in CreateInput) (Record, error) {
	if emptyJSON(in.Skills) || emptyJSON(in.Experience) || emptyJSON(in.Education) || strings.TrimSpace(in.FileURL) == "" {
		return Record{}, ErrValidation("skills, experience, education and file_url are required")
	}
	raw, err := s.repo.Insert(ctx, in)
	if err != nil {
		return Record{}, err
	}
	return s.codec.Decode(raw), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, f UpdateFields) (Record, error) {
	raw, err := s.repo.Update(ctx, id, f, s.now().UTC())
	if err != nil {
		return Record{}, err
	}
	return s.codec.Decode(raw), nil
}

// Delete removes the profile row after a best-effort removal of its stored
// file. A failed file removal is logged and the row delete proceeds; the
// row is the authoritative record and must not survive because the bucket
// hiccupped.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	raw, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if name := fileKey(raw.FileURL); name != "" {
		if err := s.blobs.Remove(ctx, name); err != nil {
			s.log.Warn("stored file removal failed, deleting row anyway",
				zap.String("profileId", id.String()),
				zap.String("object", name),
				zap.Error(err),
			)
		}
	}
	return s.repo.Delete(ctx, id)
}

// fileKey derives the bucket object name as the final path segment of the
// stored file URL. An unparseable URL yields no key and skips the removal.
func fileKey(fileURL string) string {
	if fileURL == "" {
		return ""
	}
	u, err := url.Parse(fileURL)
	if err != nil || u.Path == "" {
		return ""
	}
	parts := strings.Split(u.Path, "/")
	return parts[len(parts)-1]
}

// emptyJSON reports whether a raw field is absent for validation purposes.
func emptyJSON(raw []byte) bool {
	v := strings.TrimSpace(string(raw))
	return v == "" || v == "null"
}
