package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avdeev-dev/portfolio-api/internal/logger"
	"github.com/avdeev-dev/portfolio-api/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, is_admin,
		       reset_token_hash, reset_token_expires_at,
		       created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, is_admin,
		       reset_token_hash, reset_token_expires_at,
		       created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByResetTokenHash returns the user holding an unexpired reset token
// with the given hash, or nil when no such user exists.
func (r *UserReadRepository) GetByResetTokenHash(ctx context.Context, tokenHash string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, is_admin,
		       reset_token_hash, reset_token_expires_at,
		       created_at, updated_at
		FROM users
		WHERE reset_token_hash = $1
		  AND reset_token_expires_at > NOW()
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, tokenHash)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{tokenHash},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. A re-used email surfaces as ErrDuplicateKey.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string, isAdmin bool) error {
	const query = `
		INSERT INTO users (user_id, email, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	args := []any{uuid.New(), email, passwordHash, isAdmin}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{args[0], args[1], "***", args[3]},
		"error", err,
	)

	if err != nil {
		return translateError(err)
	}
	return nil
}

// UpdatePassword replaces the password hash and clears any outstanding
// reset token.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const query = `
		UPDATE users
		SET password_hash = $2,
		    reset_token_hash = NULL,
		    reset_token_expires_at = NULL,
		    updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, passwordHash)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{userID, "***"},
		"error", err,
	)

	return err
}

// SetResetToken stores the hash and expiry of a freshly issued reset token.
func (r *UserWriteRepository) SetResetToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	const query = `
		UPDATE users
		SET reset_token_hash = $2,
		    reset_token_expires_at = $3,
		    updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, tokenHash, expiresAt)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{userID, tokenHash, expiresAt},
		"error", err,
	)

	return err
}

// ClearResetToken removes the outstanding reset token, if any.
func (r *UserWriteRepository) ClearResetToken(ctx context.Context, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET reset_token_hash = NULL,
		    reset_token_expires_at = NULL,
		    updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", []any{userID},
		"error", err,
	)

	return err
}
