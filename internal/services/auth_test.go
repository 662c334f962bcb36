package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/avdeev-dev/portfolio-api/internal/models"
	"github.com/avdeev-dev/portfolio-api/internal/repositories"
	"github.com/avdeev-dev/portfolio-api/internal/services"
)

func newAuthService(ctrl *gomock.Controller) (*services.AuthService, *services.MockUserReader, *services.MockUserWriter, *services.MockTokenGenerator, *services.MockMailSender) {
	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)
	mockMailer := services.NewMockMailSender(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockMailer, "https://example.com/reset-password")
	return svc, mockReader, mockWriter, mockJWT, mockMailer
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, _, mockJWT, _ := newAuthService(ctrl)

	password := "secret123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name      string
		email     string
		password  string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "admin@example.com",
			password:  password,
			user:      &models.UserDB{UserID: userID, Email: "admin@example.com", PasswordHash: string(hashed), IsAdmin: true},
			wantToken: "token123",
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: password,
			user:     nil,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "admin@example.com",
			password: "not-the-password",
			user:     &models.UserDB{UserID: userID, Email: "admin@example.com", PasswordHash: string(hashed)},
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "admin@example.com",
			password:  password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "jwt error",
			email:    "admin@example.com",
			password: password,
			user:     &models.UserDB{UserID: userID, Email: "admin@example.com", PasswordHash: string(hashed)},
			jwtErr:   errors.New("sign error"),
			wantErr:  errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.readerErr == nil && tt.user != nil && tt.password == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID, tt.user.IsAdmin).
					Return(tt.wantToken, tt.jwtErr)
			}

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, tt.user, user)
			}
		})
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newAuthService(ctrl)

	_, _, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestAuthService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, _, _, _ := newAuthService(ctrl)

	userID := uuid.New()

	tests := []struct {
		name      string
		user      *models.UserDB
		readerErr error
		wantErr   error
	}{
		{
			name: "found",
			user: &models.UserDB{UserID: userID, Email: "admin@example.com"},
		},
		{
			name:    "not found",
			user:    nil,
			wantErr: services.ErrUserNotFound,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByID(gomock.Any(), userID).
				Return(tt.user, tt.readerErr)

			user, err := svc.GetUser(context.Background(), userID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.user, user)
			}
		})
	}
}

func TestAuthService_RegisterAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockWriter, _, _ := newAuthService(ctrl)

	tests := []struct {
		name      string
		email     string
		password  string
		writerErr error
		wantErr   error
	}{
		{
			name:     "successful seed",
			email:    "admin@example.com",
			password: "secret123",
		},
		{
			name:      "duplicate email",
			email:     "admin@example.com",
			password:  "secret123",
			writerErr: repositories.ErrDuplicateKey,
			wantErr:   services.ErrEmailExists,
		},
		{
			name:      "writer error",
			email:     "admin@example.com",
			password:  "secret123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().
				Save(gomock.Any(), tt.email, gomock.Any(), true).
				Return(tt.writerErr)

			err := svc.RegisterAdmin(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_RegisterAdmin_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newAuthService(ctrl)

	err := svc.RegisterAdmin(context.Background(), "admin@example.com", "")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, mockWriter, _, mockMailer := newAuthService(ctrl)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: "admin@example.com"}

	t.Run("sends a reset link", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), user.Email).
			Return(user, nil)
		mockWriter.EXPECT().
			SetResetToken(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, tokenHash string, expiresAt time.Time) error {
				assert.Len(t, tokenHash, 64)
				assert.WithinDuration(t, time.Now().Add(10*time.Minute), expiresAt, time.Minute)
				return nil
			})
		mockMailer.EXPECT().
			Send(gomock.Any(), user.Email, "Password reset", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, body string) error {
				assert.Contains(t, body, "https://example.com/reset-password/")
				return nil
			})

		err := svc.ForgotPassword(context.Background(), user.Email)
		assert.NoError(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, nil)

		err := svc.ForgotPassword(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("mail failure clears the stored token", func(t *testing.T) {
		mailErr := errors.New("smtp down")

		mockReader.EXPECT().
			GetByEmail(gomock.Any(), user.Email).
			Return(user, nil)
		mockWriter.EXPECT().
			SetResetToken(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return(nil)
		mockMailer.EXPECT().
			Send(gomock.Any(), user.Email, "Password reset", gomock.Any()).
			Return(mailErr)
		mockWriter.EXPECT().
			ClearResetToken(gomock.Any(), userID).
			Return(nil)

		err := svc.ForgotPassword(context.Background(), user.Email)
		assert.ErrorIs(t, err, mailErr)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, mockWriter, _, _ := newAuthService(ctrl)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: "admin@example.com"}

	t.Run("updates the password", func(t *testing.T) {
		mockReader.EXPECT().
			GetByResetTokenHash(gomock.Any(), gomock.Any()).
			Return(user, nil)
		mockWriter.EXPECT().
			UpdatePassword(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, passwordHash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("newsecret1")))
				return nil
			})

		err := svc.ResetPassword(context.Background(), "sometoken", "newsecret1")
		assert.NoError(t, err)
	})

	t.Run("invalid token", func(t *testing.T) {
		mockReader.EXPECT().
			GetByResetTokenHash(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		err := svc.ResetPassword(context.Background(), "bogus", "newsecret1")
		assert.ErrorIs(t, err, services.ErrResetTokenInvalid)
	})

	t.Run("short password", func(t *testing.T) {
		err := svc.ResetPassword(context.Background(), "sometoken", "short")
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}
