package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avdeev-dev/portfolio-api/internal/logger"
	"github.com/avdeev-dev/portfolio-api/internal/models"
	"github.com/avdeev-dev/portfolio-api/internal/repositories"
)

// resetTokenTTL is how long a password-reset token stays usable.
const resetTokenTTL = 10 * time.Minute

// Error variables
var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so the response never reveals which part failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash string, isAdmin bool) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	SetResetToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, userID uuid.UUID) error
}

// TokenGenerator defines an interface for generating auth tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, isAdmin bool) (string, error)
}

// MailSender delivers one plain-text message.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// AuthService handles login, the current-user lookup, admin seeding
// and the password-reset flow.
type AuthService struct {
	reader       UserReader
	writer       UserWriter
	jwt          TokenGenerator
	mailer       MailSender
	resetURLBase string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator, mailer MailSender, resetURLBase string) *AuthService {
	return &AuthService{
		reader:       reader,
		writer:       writer,
		jwt:          jwt,
		mailer:       mailer,
		resetURLBase: resetURLBase,
	}
}

// Login verifies credentials and returns a signed token plus the user.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Infow("login attempt for unknown email", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login attempt with wrong password", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// GetUser returns the user with the given id.
func (svc *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// RegisterAdmin seeds an admin account. There is no public registration
// endpoint; this backs the -seed-admin flag on the server binary.
func (svc *AuthService) RegisterAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, email, string(hashedPassword), true); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrEmailExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// ForgotPassword issues an opaque reset token, stores only its SHA-256
// hash with a 10-minute expiry, and emails the raw token to the user.
// If the mail cannot be sent, both reset fields are cleared again.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)
	tokenHash := hashResetToken(token)

	if err := svc.writer.SetResetToken(ctx, user.UserID, tokenHash, time.Now().Add(resetTokenTTL)); err != nil {
		logger.Log.Errorw("failed to store reset token", "err", err)
		return err
	}

	resetURL := fmt.Sprintf("%s/%s", svc.resetURLBase, token)
	body := fmt.Sprintf("You requested a password reset.\n\nReset your password here: %s\n\nThe link expires in 10 minutes. If you did not request this, ignore this email.", resetURL)

	if err := svc.mailer.Send(ctx, user.Email, "Password reset", body); err != nil {
		logger.Log.Errorw("failed to send reset email", "err", err)
		if clearErr := svc.writer.ClearResetToken(ctx, user.UserID); clearErr != nil {
			logger.Log.Errorw("failed to clear reset token after send failure", "err", clearErr)
		}
		return err
	}

	return nil
}

// ResetPassword consumes a reset token. The stored hash is cleared on
// success, so a token can only be used once.
func (svc *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	user, err := svc.reader.GetByResetTokenHash(ctx, hashResetToken(token))
	if err != nil {
		logger.Log.Errorw("failed to look up reset token", "err", err)
		return err
	}
	if user == nil {
		return ErrResetTokenInvalid
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, user.UserID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "err", err)
		return err
	}

	return nil
}

// hashResetToken is the one-way hash applied before a reset token
// touches storage.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
