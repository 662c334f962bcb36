package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/avdeev-dev/portfolio-api/internal/logger"
	"github.com/avdeev-dev/portfolio-api/internal/models"
)

// ResumeRepository stores the singleton resume under a fixed key.
// The upsert on resume_key guarantees at most one row.
type ResumeRepository struct {
	db *sqlx.DB
}

func NewResumeRepository(db *sqlx.DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

// Get returns the current resume, or nil when none has been stored yet.
func (r *ResumeRepository) Get(ctx context.Context) (*models.ResumeDB, error) {
	const query = `
		SELECT resume_key, payload, created_at, updated_at
		FROM resumes
		WHERE resume_key = $1
	`

	var resume models.ResumeDB
	err := r.db.GetContext(ctx, &resume, query, models.ResumeKey)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{models.ResumeKey},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &resume, nil
}

// Upsert creates the resume row if absent, otherwise replaces its payload.
func (r *ResumeRepository) Upsert(ctx context.Context, payload models.ResumePayload) error {
	const query = `
		INSERT INTO resumes (resume_key, payload, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (resume_key) DO UPDATE
		SET payload = EXCLUDED.payload,
		    updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query, models.ResumeKey, payload)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{models.ResumeKey},
		"error", err,
	)

	return err
}
