package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID              uuid.UUID  `json:"id" db:"user_id"`                     // Primary key
	Email               string     `json:"email" db:"email"`                    // Unique email
	PasswordHash        string     `json:"-" db:"password_hash"`                // Bcrypt hash, never serialized
	IsAdmin             bool       `json:"isAdmin" db:"is_admin"`               // Elevated privilege flag
	ResetTokenHash      *string    `json:"-" db:"reset_token_hash"`             // SHA-256 of the outstanding reset token
	ResetTokenExpiresAt *time.Time `json:"-" db:"reset_token_expires_at"`       // Reset token expiry
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`          // Creation timestamp
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`          // Last update timestamp
}
