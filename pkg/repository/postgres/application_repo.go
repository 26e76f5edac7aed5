package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hr360/assistant/pkg/application"
)

// ApplicationRepository implements application.Repository backed by PostgreSQL.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) (*ApplicationRepository, error) {
	r := &ApplicationRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ApplicationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS applications (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	position TEXT NOT NULL,
	status TEXT NOT NULL,
	ai_score INT NOT NULL DEFAULT 0,
	screening_id UUID NULL,
	applied_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_applications_owner ON applications(owner_id, applied_at DESC);
`)
	return err
}

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	var screeningID any
	if a.ScreeningID != uuid.Nil {
		screeningID = a.ScreeningID
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO applications (id, owner_id, position, status, ai_score, screening_id, applied_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, a.ID, a.OwnerID, a.Position, string(a.Status), a.AIScore, screeningID, a.AppliedAt, a.UpdatedAt)
	return err
}

func (r *ApplicationRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (application.Application, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, position, status, ai_score, screening_id, applied_at, updated_at
FROM applications WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, status application.Status, limit, offset int) ([]application.Application, error) {
	query := `
SELECT id, owner_id, position, status, ai_score, screening_id, applied_at, updated_at
FROM applications WHERE owner_id = $1`
	args := []any{ownerID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, string(status))
	}
	query += ` ORDER BY applied_at DESC`
	if status != "" {
		query += ` LIMIT $3 OFFSET $4`
	} else {
		query += ` LIMIT $2 OFFSET $3`
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []application.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status application.Status, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE applications SET status = $1, updated_at = $2
WHERE id = $3 AND owner_id = $4
`, string(status), updatedAt, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[application.Status]int, error) {
	rows, err := r.pool.Query(ctx, `
SELECT status, COUNT(*) FROM applications WHERE owner_id = $1 GROUP BY status
`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[application.Status]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[application.Status(status)] = n
	}
	return out, rows.Err()
}

func scanApplication(row pgx.Row) (application.Application, error) {
	var a application.Application
	var screeningID *uuid.UUID
	var appliedAt, updatedAt time.Time
	var status string
	if err := row.Scan(&a.ID, &a.OwnerID, &a.Position, &status, &a.AIScore, &screeningID, &appliedAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	if screeningID != nil {
		a.ScreeningID = *screeningID
	}
	a.AppliedAt = appliedAt.UTC()
	a.UpdatedAt = updatedAt.UTC()
	return a, nil
}
