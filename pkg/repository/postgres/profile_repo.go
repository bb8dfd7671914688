package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/conchobar/candidates/pkg/profile"
)

// ProfileRepository stores CV profile rows. The list columns are JSONB and
// intentionally kept opaque: the ingestion pipeline writes them either as
// arrays or as JSON-string-encoded arrays, and the codec owns normalization.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	r := &ProfileRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS cv_profiles (
	id UUID PRIMARY KEY,
	skills JSONB NOT NULL DEFAULT '[]'::jsonb,
	experience JSONB NOT NULL DEFAULT '[]'::jsonb,
	education JSONB NOT NULL DEFAULT '[]'::jsonb,
	file_url TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS cv_profiles_created_at_idx ON cv_profiles (created_at DESC);
`)
	return err
}

const profileColumns = `id, skills, experience, education, file_url, created_at, updated_at`

func (r *ProfileRepository) List(ctx context.Context, filter string) ([]profile.RawRecord, error) {
	q := `SELECT ` + profileColumns + ` FROM cv_profiles`
	args := []any{}
	if filter != "" {
		q += ` WHERE skills::text ILIKE $1 OR experience::text ILIKE $1 OR education::text ILIKE $1`
		args = append(args, "%"+filter+"%")
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, &profile.StoreError{Op: "list", Err: err}
	}
	defer rows.Close()
	var res []profile.RawRecord
	for rows.Next() {
		rec, err := scanProfile(rows)
		if err != nil {
			return nil, &profile.StoreError{Op: "list", Err: err}
		}
		res = append(res, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &profile.StoreError{Op: "list", Err: err}
	}
	return res, nil
}

func (r *ProfileRepository) Get(ctx context.Context, id uuid.UUID) (profile.RawRecord, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM cv_profiles WHERE id = $1`, id)
	rec, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.RawRecord{}, profile.ErrNotFound
		}
		return profile.RawRecord{}, &profile.StoreError{Op: "get", Err: err}
	}
	return rec, nil
}

func (r *ProfileRepository) Insert(ctx context.Context, in profile.CreateInput) (profile.RawRecord, error) {
	now := time.Now().UTC()
	row := r.pool.QueryRow(ctx, `
INSERT INTO cv_profiles (id, skills, experience, education, file_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING `+profileColumns,
		uuid.New(), in.Skills, in.Experience, in.Education, in.FileURL, now)
	rec, err := scanProfile(row)
	if err != nil {
		return profile.RawRecord{}, &profile.StoreError{Op: "insert", Err: err}
	}
	return rec, nil
}

func (r *ProfileRepository) Update(ctx context.Context, id uuid.UUID, f profile.UpdateFields, updatedAt time.Time) (profile.RawRecord, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE cv_profiles SET
	skills = COALESCE($2, skills),
	experience = COALESCE($3, experience),
	education = COALESCE($4, education),
	file_url = COALESCE($5, file_url),
	updated_at = $6
WHERE id = $1
RETURNING `+profileColumns,
		id, f.Skills, f.Experience, f.Education, f.FileURL, updatedAt)
	rec, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.RawRecord{}, profile.ErrNotFound
		}
		return profile.RawRecord{}, &profile.StoreError{Op: "update", Err: err}
	}
	return rec, nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cv_profiles WHERE id = $1`, id)
	if err != nil {
		return &profile.StoreError{Op: "delete", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (profile.RawRecord, error) {
	var rec profile.RawRecord
	var created, updated time.Time
	if err := row.Scan(&rec.ID, &rec.Skills, &rec.Experience, &rec.Education, &rec.FileURL, &created, &updated); err != nil {
		return profile.RawRecord{}, err
	}
	rec.CreatedAt = created.UTC()
	rec.UpdatedAt = updated.UTC()
	return rec, nil
}
