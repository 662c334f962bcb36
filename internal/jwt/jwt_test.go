package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParse(t *testing.T) {
	j := New("secret", time.Hour, false)
	ctx := context.Background()
	userID := uuid.New()

	token, err := j.Generate(ctx, userID, true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	gotID, isAdmin, err := j.Parse(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.True(t, isAdmin)
}

func TestParse_Expired(t *testing.T) {
	j := New("secret", -time.Minute, false)
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), false)
	assert.NoError(t, err)

	_, _, err = j.Parse(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	j := New("secret", time.Hour, false)
	other := New("other-secret", time.Hour, false)
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), false)
	assert.NoError(t, err)

	_, _, err = other.Parse(ctx, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParse_Garbage(t *testing.T) {
	j := New("secret", time.Hour, false)

	_, _, err := j.Parse(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Hour, false)
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(r *http.Request)
		wantToken string
		wantErr   bool
	}{
		{
			name: "from cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
			},
			wantToken: "cookie-token",
		},
		{
			name: "from bearer header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-token")
			},
			wantToken: "header-token",
		},
		{
			name: "cookie wins over header",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
				r.Header.Set("Authorization", "Bearer header-token")
			},
			wantToken: "cookie-token",
		},
		{
			name:    "missing",
			setup:   func(r *http.Request) {},
			wantErr: true,
		},
		{
			name: "malformed header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Token abc")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(r)

			token, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthCookieLifecycle(t *testing.T) {
	j := New("secret", time.Hour, true)

	rr := httptest.NewRecorder()
	j.SetAuthCookie(rr, "sometoken")

	cookies := rr.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "sometoken", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)

	rr = httptest.NewRecorder()
	j.ClearAuthCookie(rr)

	cookies = rr.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}
