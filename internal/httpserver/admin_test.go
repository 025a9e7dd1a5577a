package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/pkg/tokens"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid password", decode[errorBody](t, rec).Error)
	assert.Empty(t, rec.Result().Cookies())

	rec = env.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": adminPassword})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[transport.SuccessResponse](t, rec).Success)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, tokens.SessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.WithinDuration(t, time.Now().Add(time.Hour), cookies[0].Expires, time.Minute)
}

func TestLogin_NotConfigured(t *testing.T) {
	env := newTestEnv(t, func(o *envOptions) { o.password = "" })

	rec := env.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": "anything"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "admin password not configured", decode[errorBody](t, rec).Error)
}

func TestLogin_RateLimitedPerClient(t *testing.T) {
	env := newTestEnv(t, func(o *envOptions) { o.loginRate = 2 })

	for i := 0; i < 2; i++ {
		rec := env.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": "wrong"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	rec := env.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": adminPassword})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestSessionAndLogout(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/admin/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[transport.SessionResponse](t, rec).IsAdmin)

	admin := env.login(t)
	rec = env.do(t, http.MethodGet, "/api/admin/session", nil, admin)
	assert.True(t, decode[transport.SessionResponse](t, rec).IsAdmin)

	rec = env.do(t, http.MethodPost, "/api/admin/logout", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[transport.SuccessResponse](t, rec).Success)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, tokens.SessionCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)

	rec = env.do(t, http.MethodGet, "/api/admin/session", nil, admin)
	assert.False(t, decode[transport.SessionResponse](t, rec).IsAdmin)
	rec = env.do(t, http.MethodPost, "/api/categories", map[string]any{"nameAr": "x"}, admin)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	fresh := env.login(t)
	rec = env.do(t, http.MethodGet, "/api/admin/session", nil, fresh)
	assert.True(t, decode[transport.SessionResponse](t, rec).IsAdmin)
}

func TestExpiredSessionIsRejected(t *testing.T) {
	env := newTestEnv(t)

	token, _, err := tokens.IssueSession(tokens.RoleAdmin, testSecret, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	expired := &http.Cookie{Name: tokens.SessionCookie, Value: token}

	rec := env.do(t, http.MethodPost, "/api/categories", map[string]any{"nameAr": "فئة"}, expired)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/admin/session", nil, expired)
	assert.False(t, decode[transport.SessionResponse](t, rec).IsAdmin)

	forged, _, err := tokens.IssueSession(tokens.RoleAdmin, []byte("other-secret"), time.Now(), time.Hour)
	require.NoError(t, err)
	rec = env.do(t, http.MethodPost, "/api/categories", map[string]any{"nameAr": "فئة"},
		&http.Cookie{Name: tokens.SessionCookie, Value: forged})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
