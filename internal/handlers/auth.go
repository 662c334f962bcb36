package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avdeev-dev/portfolio-api/internal/middlewares"
	"github.com/avdeev-dev/portfolio-api/internal/models"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.UserDB, error)
}

// UserGetter fetches the current user by id.
type UserGetter interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// PasswordReseter drives the forgot/reset password flow.
type PasswordReseter interface {
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// CookieManager writes and clears the auth cookie.
type CookieManager interface {
	SetAuthCookie(w http.ResponseWriter, token string)
	ClearAuthCookie(w http.ResponseWriter)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: admin@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginData is the payload of a successful login. The token is also set
// as an http-only cookie; the body copy serves non-cookie clients.
// swagger:model LoginData
type LoginData struct {
	Token string         `json:"token"`
	User  *models.UserDB `json:"user"`
}

// ForgotPasswordRequest represents the JSON body for forgot-password
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email
	// required: true
	// example: admin@example.com
	Email string `json:"email"`
}

// ResetPasswordRequest represents the JSON body for reset-password
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// New password
	// required: true
	// example: newsecret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Log in
// @Description Exchanges credentials for a signed token in an http-only cookie and the response body.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.SuccessResponse "Token and user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, cookies CookieManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		cookies.SetAuthCookie(w, token)
		writeData(w, http.StatusOK, LoginData{Token: token, User: user})
	}
}

// NewLogoutHandler returns an HTTP handler for logout.
// @Summary Log out
// @Description Clears the auth cookie. Already-issued tokens stay valid until expiry.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.SuccessResponse "Logged out"
// @Router /auth/logout [post]
func NewLogoutHandler(cookies CookieManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookies.ClearAuthCookie(w)
		writeMessage(w, http.StatusOK, "Logged out")
	}
}

// NewMeHandler returns an HTTP handler for the current-user lookup.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.SuccessResponse "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /auth/me [get]
// @Security CookieAuth
func NewMeHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, user)
	}
}

// NewForgotPasswordHandler returns an HTTP handler for forgot-password.
// @Summary Request a password reset
// @Description Emails a single-use reset link valid for 10 minutes.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Forgot password request"
// @Success 200 {object} handlers.SuccessResponse "Reset email sent"
// @Failure 404 {object} handlers.ErrorResponse "Unknown email"
// @Router /auth/forgot-password [post]
func NewForgotPasswordHandler(svc PasswordReseter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			writeServiceError(w, err)
			return
		}

		writeMessage(w, http.StatusOK, "Password reset email sent")
	}
}

// NewResetPasswordHandler returns an HTTP handler for reset-password.
// @Summary Complete a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset password request"
// @Success 200 {object} handlers.SuccessResponse "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired reset token"
// @Router /auth/reset-password/{token} [put]
func NewResetPasswordHandler(svc PasswordReseter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token := chi.URLParam(r, "token")
		if err := svc.ResetPassword(r.Context(), token, req.Password); err != nil {
			writeServiceError(w, err)
			return
		}

		writeMessage(w, http.StatusOK, "Password updated")
	}
}
