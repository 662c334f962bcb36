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

type ContactReadRepository struct {
	db *sqlx.DB
}

func NewContactReadRepository(db *sqlx.DB) *ContactReadRepository {
	return &ContactReadRepository{db: db}
}

// List returns one page of contact messages newest-first plus the total
// count of rows matching the filter.
func (r *ContactReadRepository) List(ctx context.Context, filter models.ContactFilter) ([]models.ContactMessageDB, int64, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM contact_messages
		WHERE ($1::VARCHAR IS NULL OR status = $1)
	`
	const listQuery = `
		SELECT message_id, name, email, subject, message, status, notes,
		       ip_address, user_agent, created_at, updated_at
		FROM contact_messages
		WHERE ($1::VARCHAR IS NULL OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	p := models.NewPagination(filter.Page, filter.Limit, 0)

	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, filter.Status); err != nil {
		logger.Log.Errorw("count query failed", "query", squash(countQuery), "error", err)
		return nil, 0, err
	}

	messages := []models.ContactMessageDB{}
	err := r.db.SelectContext(ctx, &messages, listQuery, filter.Status, p.Limit, p.Offset())

	logger.Log.Debugw("query executed",
		"query", squash(listQuery),
		"args", []any{filter.Status, p.Limit, p.Offset()},
		"rows", len(messages),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// GetByID returns the contact message with the given id, or nil when absent.
func (r *ContactReadRepository) GetByID(ctx context.Context, messageID uuid.UUID) (*models.ContactMessageDB, error) {
	const query = `
		SELECT message_id, name, email, subject, message, status, notes,
		       ip_address, user_agent, created_at, updated_at
		FROM contact_messages
		WHERE message_id = $1
	`

	var message models.ContactMessageDB
	err := r.db.GetContext(ctx, &message, query, messageID)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{messageID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &message, nil
}

type ContactWriteRepository struct {
	db *sqlx.DB
}

func NewContactWriteRepository(db *sqlx.DB) *ContactWriteRepository {
	return &ContactWriteRepository{db: db}
}

// Save inserts a new contact message row.
func (r *ContactWriteRepository) Save(ctx context.Context, m models.ContactMessageDB) error {
	const query = `
		INSERT INTO contact_messages (message_id, name, email, subject, message,
		                              status, notes, ip_address, user_agent,
		                              created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	args := []any{
		m.MessageID, m.Name, m.Email, m.Subject, m.Message,
		m.Status, m.Notes, m.IPAddress, m.UserAgent,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", args,
		"error", err,
	)

	return err
}

// Update patches status and/or notes; nil fields keep their value.
// Returns the number of rows affected.
func (r *ContactWriteRepository) Update(ctx context.Context, messageID uuid.UUID, status, notes *string) (int64, error) {
	const query = `
		UPDATE contact_messages
		SET status = COALESCE($2, status),
		    notes = COALESCE($3, notes),
		    updated_at = NOW()
		WHERE message_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, messageID, status, notes)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{messageID, status, notes},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes the contact message and returns the number of rows affected.
func (r *ContactWriteRepository) Delete(ctx context.Context, messageID uuid.UUID) (int64, error) {
	const query = `DELETE FROM contact_messages WHERE message_id = $1`

	res, err := r.db.ExecContext(ctx, query, messageID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{messageID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
