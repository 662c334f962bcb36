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

type BlogReadRepository struct {
	db *sqlx.DB
}

func NewBlogReadRepository(db *sqlx.DB) *BlogReadRepository {
	return &BlogReadRepository{db: db}
}

// List returns one page of blog posts newest-first plus the total count
// of rows matching the filter. The category filter matches posts whose
// categories array contains the value.
func (r *BlogReadRepository) List(ctx context.Context, filter models.BlogFilter) ([]models.BlogPostDB, int64, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM blog_posts
		WHERE ($1::VARCHAR IS NULL OR categories @> jsonb_build_array($1::text))
		  AND ($2::BOOLEAN IS NULL OR featured = $2)
	`
	const listQuery = `
		SELECT post_id, title, content, excerpt, cover_image_url,
		       categories, featured, author_id, created_at, updated_at
		FROM blog_posts
		WHERE ($1::VARCHAR IS NULL OR categories @> jsonb_build_array($1::text))
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

	posts := []models.BlogPostDB{}
	err := r.db.SelectContext(ctx, &posts, listQuery, filter.Category, filter.Featured, p.Limit, p.Offset())

	logger.Log.Debugw("query executed",
		"query", squash(listQuery),
		"args", []any{filter.Category, filter.Featured, p.Limit, p.Offset()},
		"rows", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// GetByID returns the blog post with the given id, or nil when absent.
func (r *BlogReadRepository) GetByID(ctx context.Context, postID uuid.UUID) (*models.BlogPostDB, error) {
	const query = `
		SELECT post_id, title, content, excerpt, cover_image_url,
		       categories, featured, author_id, created_at, updated_at
		FROM blog_posts
		WHERE post_id = $1
	`

	var post models.BlogPostDB
	err := r.db.GetContext(ctx, &post, query, postID)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{postID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

type BlogWriteRepository struct {
	db *sqlx.DB
}

func NewBlogWriteRepository(db *sqlx.DB) *BlogWriteRepository {
	return &BlogWriteRepository{db: db}
}

// Save inserts a new blog post row.
func (r *BlogWriteRepository) Save(ctx context.Context, p models.BlogPostDB) error {
	const query = `
		INSERT INTO blog_posts (post_id, title, content, excerpt, cover_image_url,
		                        categories, featured, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	args := []any{
		p.PostID, p.Title, p.Content, p.Excerpt, p.CoverImageURL,
		p.Categories, p.Featured, p.AuthorID,
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

// Update rewrites the full blog post row and returns the number of rows
// affected; zero means the post no longer exists.
func (r *BlogWriteRepository) Update(ctx context.Context, p models.BlogPostDB) (int64, error) {
	const query = `
		UPDATE blog_posts
		SET title = $2, content = $3, excerpt = $4, cover_image_url = $5,
		    categories = $6, featured = $7, updated_at = NOW()
		WHERE post_id = $1
	`
	args := []any{
		p.PostID, p.Title, p.Content, p.Excerpt, p.CoverImageURL,
		p.Categories, p.Featured,
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

// Delete removes the blog post and returns the number of rows affected.
func (r *BlogWriteRepository) Delete(ctx context.Context, postID uuid.UUID) (int64, error) {
	const query = `DELETE FROM blog_posts WHERE post_id = $1`

	res, err := r.db.ExecContext(ctx, query, postID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{postID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
