package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/pkg/tokens"
)

var secret = []byte("guard-secret")

func newCtx(cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

func TestRequireAdmin_NoCookie(t *testing.T) {
	g := NewSessionGuard(SecretVerifier(secret), false)
	c, _ := newCtx(nil)

	err := g.RequireAdmin(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Equal(t, "unauthorized", he.Message)
}

func TestRequireAdmin_ValidCookie(t *testing.T) {
	g := NewSessionGuard(SecretVerifier(secret), false)
	token, exp, err := tokens.IssueSession(tokens.RoleAdmin, secret, time.Now(), time.Hour)
	require.NoError(t, err)

	c, rec := newCtx(tokens.CreateCookie(tokens.SessionCookie, token, "/", exp, false))
	require.NoError(t, g.RequireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, tokens.RoleAdmin, c.Get(ContextRoleKey))
	assert.True(t, g.IsAdmin(c))
}

func TestRequireAdmin_ExpiredCookieIsCleared(t *testing.T) {
	g := NewSessionGuard(SecretVerifier(secret), false)
	token, _, err := tokens.IssueSession(tokens.RoleAdmin, secret, time.Now().Add(-time.Hour), time.Minute)
	require.NoError(t, err)

	c, rec := newCtx(&http.Cookie{Name: tokens.SessionCookie, Value: token})
	err = g.RequireAdmin(okHandler)(c)
	require.Error(t, err)
	assert.False(t, g.IsAdmin(c))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), tokens.SessionCookie+"=;")
}

func TestRequireAdmin_NonAdminRole(t *testing.T) {
	g := NewSessionGuard(SecretVerifier(secret), false)
	token, _, err := tokens.IssueSession("viewer", secret, time.Now(), time.Hour)
	require.NoError(t, err)

	c, _ := newCtx(&http.Cookie{Name: tokens.SessionCookie, Value: token})
	assert.False(t, g.IsAdmin(c))
	assert.Error(t, g.RequireAdmin(okHandler)(c))
}

type rejectAll struct{}

func (rejectAll) Verify(string) (*tokens.SessionClaims, error) { return nil, errors.New("revoked") }

func TestRequireAdmin_VerifierDecides(t *testing.T) {
	g := NewSessionGuard(rejectAll{}, false)
	token, exp, err := tokens.IssueSession(tokens.RoleAdmin, secret, time.Now(), time.Hour)
	require.NoError(t, err)

	c, rec := newCtx(tokens.CreateCookie(tokens.SessionCookie, token, "/", exp, false))
	assert.False(t, g.IsAdmin(c))
	require.Error(t, g.RequireAdmin(okHandler)(c))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), tokens.SessionCookie+"=;")
}
