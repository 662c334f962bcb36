package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the name of the http-only cookie carrying the auth token.
const CookieName = "token"

// Error variables surfaced to callers. Expired tokens are reported
// separately from every other validation failure.
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// JWT provides methods to generate and validate JWT tokens and to
// manage the auth cookie they travel in.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
	Secure    bool          // Secure flag on the auth cookie
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration, secure bool) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
		Secure:    secure,
	}
}

// Generate creates a signed token carrying the user id and admin flag.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"admin":   isAdmin,
		"exp":     time.Now().Add(j.Exp).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// Parse validates the token string and returns the user id and admin flag.
func (j *JWT) Parse(ctx context.Context, tokenString string) (uuid.UUID, bool, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, false, ErrTokenExpired
		}
		return uuid.Nil, false, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, false, ErrTokenInvalid
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, false, ErrTokenInvalid
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false, ErrTokenInvalid
	}

	isAdmin, _ := claims["admin"].(bool)
	return userID, isAdmin, nil
}

// GetTokenFromRequest extracts the token from the auth cookie, falling
// back to the Authorization header for non-cookie clients.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("no auth cookie or authorization header")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

// SetAuthCookie writes the token into an http-only, same-site-strict cookie.
func (j *JWT) SetAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(j.Exp),
		HttpOnly: true,
		Secure:   j.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearAuthCookie overwrites the auth cookie with an immediately-expired
// empty value. Already-issued tokens stay valid until their natural
// expiry; there is no server-side revocation list.
func (j *JWT) ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
