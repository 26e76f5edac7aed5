package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hr360/assistant/pkg/resume"
)

// ScreeningRepository stores resume screenings with their analysis as JSONB.
type ScreeningRepository struct {
	pool *pgxpool.Pool
}

func NewScreeningRepository(pool *pgxpool.Pool) (*ScreeningRepository, error) {
	r := &ScreeningRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ScreeningRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS screenings (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	size_bytes BIGINT NOT NULL,
	analysis JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_screenings_owner ON screenings(owner_id, created_at DESC);
`)
	return err
}

func (r *ScreeningRepository) Create(ctx context.Context, s resume.Screening) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	analysisJSON, err := json.Marshal(s.Analysis)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO screenings (id, owner_id, filename, mime_type, size_bytes, analysis, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, s.ID, s.OwnerID, s.Filename, s.MimeType, s.Size, analysisJSON, s.CreatedAt)
	return err
}

func (r *ScreeningRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (resume.Screening, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, filename, mime_type, size_bytes, analysis, created_at
FROM screenings WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanScreening(row)
}

func (r *ScreeningRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Screening, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, filename, mime_type, size_bytes, analysis, created_at
FROM screenings WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []resume.Screening
	for rows.Next() {
		s, err := scanScreening(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ScreeningRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM screenings WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func scanScreening(row pgx.Row) (resume.Screening, error) {
	var s resume.Screening
	var analysisBytes []byte
	var created time.Time
	if err := row.Scan(&s.ID, &s.OwnerID, &s.Filename, &s.MimeType, &s.Size, &analysisBytes, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Screening{}, resume.ErrNotFound
		}
		return resume.Screening{}, err
	}
	if err := json.Unmarshal(analysisBytes, &s.Analysis); err != nil {
		return resume.Screening{}, err
	}
	s.CreatedAt = created.UTC()
	return s, nil
}
