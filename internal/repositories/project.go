package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avdeev-dev/portfolio-api/internal/logger"
	"github.com/avdeev-dev/portfolio-api/internal/models"
)

type ProjectReadRepository struct {
	db *sqlx.DB
}

func NewProjectReadRepository(db *sqlx.DB) *ProjectReadRepository {
	return &ProjectReadRepository{db: db}
}

// List returns one page of projects newest-first plus the total count
// of rows matching the filter.
func (r *ProjectReadRepository) List(ctx context.Context, filter models.ProjectFilter) ([]models.ProjectDB, int64, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM projects
		WHERE ($1::VARCHAR IS NULL OR category = $1)
		  AND ($2::BOOLEAN IS NULL OR featured = $2)
	`
	const listQuery = `
		SELECT project_id, title, overview, problem, features, image_url,
		       technologies, demo_url, code_url, category, featured,
		       created_at, updated_at
		FROM projects
		WHERE ($1::VARCHAR IS NULL OR category = $1)
		  AND ($2::BOOLEAN IS NULL OR featured = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	p := models.NewPagination(filter.Page, filter.Limit, 0)

	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, filter.Category, filter.Featured); err != nil {
		logger.Log.Errorw("count query failed", "query", squash(countQuery), "error", err)
		return nil, 0, err
	}

	projects := []models.ProjectDB{}
	err := r.db.SelectContext(ctx, &projects, listQuery, filter.Category, filter.Featured, p.Limit, p.Offset())

	logger.Log.Debugw("query executed",
		"query", squash(listQuery),
		"args", []any{filter.Category, filter.Featured, p.Limit, p.Offset()},
		"rows", len(projects),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// GetByID returns the project with the given id, or nil when absent.
func (r *ProjectReadRepository) GetByID(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error) {
	const query = `
		SELECT project_id, title, overview, problem, features, image_url,
		       technologies, demo_url, code_url, category, featured,
		       created_at, updated_at
		FROM projects
		WHERE project_id = $1
	`

	var project models.ProjectDB
	err := r.db.GetContext(ctx, &project, query, projectID)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{projectID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &project, nil
}

type ProjectWriteRepository struct {
	db *sqlx.DB
}

func NewProjectWriteRepository(db *sqlx.DB) *ProjectWriteRepository {
	return &ProjectWriteRepository{db: db}
}

// Save inserts a new project row.
func (r *ProjectWriteRepository) Save(ctx context.Context, p models.ProjectDB) error {
	const query = `
		INSERT INTO projects (project_id, title, overview, problem, features,
		                      image_url, technologies, demo_url, code_url,
		                      category, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	`
	args := []any{
		p.ProjectID, p.Title, p.Overview, p.Problem, p.Features,
		p.ImageURL, p.Technologies, p.DemoURL, p.CodeURL,
		p.Category, p.Featured,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", args,
		"error", err,
	)

	if err != nil {
		return translateError(err)
	}
	return nil
}

// Update rewrites the full project row and returns the number of rows
// affected; zero means the project no longer exists.
func (r *ProjectWriteRepository) Update(ctx context.Context, p models.ProjectDB) (int64, error) {
	const query = `
		UPDATE projects
		SET title = $2, overview = $3, problem = $4, features = $5,
		    image_url = $6, technologies = $7, demo_url = $8, code_url = $9,
		    category = $10, featured = $11, updated_at = NOW()
		WHERE project_id = $1
	`
	args := []any{
		p.ProjectID, p.Title, p.Overview, p.Problem, p.Features,
		p.ImageURL, p.Technologies, p.DemoURL, p.CodeURL,
		p.Category, p.Featured,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", args,
		"rows_affected", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes the project and returns the number of rows affected.
func (r *ProjectWriteRepository) Delete(ctx context.Context, projectID uuid.UUID) (int64, error) {
	const query = `DELETE FROM projects WHERE project_id = $1`

	res, err := r.db.ExecContext(ctx, query, projectID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{projectID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
