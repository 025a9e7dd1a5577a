package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/pkg/logging"
	"github.com/Skotchmaster/storefront/pkg/tokens"
)

const ContextRoleKey = "role"

// Verifier checks a raw session token and returns its claims.
type Verifier interface {
	Verify(token string) (*tokens.SessionClaims, error)
}

// SecretVerifier accepts any unexpired admin token signed with the key.
type SecretVerifier []byte

func (s SecretVerifier) Verify(token string) (*tokens.SessionClaims, error) {
	claims, err := tokens.SessionClaimsFromToken(token, s)
	if err != nil {
		return nil, err
	}
	if claims.Role != tokens.RoleAdmin {
		return nil, errors.New("not an admin session")
	}
	return claims, nil
}

// SessionGuard checks the admin session cookie issued at login.
type SessionGuard struct {
	Verifier Verifier
	Secure   bool
}

func NewSessionGuard(v Verifier, secure bool) *SessionGuard {
	return &SessionGuard{Verifier: v, Secure: secure}
}

// IsAdmin reports whether the request carries a valid, unexpired admin session.
func (g *SessionGuard) IsAdmin(c echo.Context) bool {
	_, ok := g.claims(c)
	return ok
}

func (g *SessionGuard) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := g.claims(c)
		if !ok {
			logging.FromContext(c.Request().Context()).Warn("admin_guard_denied", "status", http.StatusUnauthorized)
			if cookie, err := c.Cookie(tokens.SessionCookie); err == nil && cookie.Value != "" {
				c.SetCookie(tokens.DeleteCookie(tokens.SessionCookie, "/", g.Secure))
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		c.Set(ContextRoleKey, claims.Role)
		return next(c)
	}
}

func (g *SessionGuard) claims(c echo.Context) (*tokens.SessionClaims, bool) {
	cookie, err := c.Cookie(tokens.SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	claims, err := g.Verifier.Verify(cookie.Value)
	if err != nil {
		return nil, false
	}
	return claims, true
}
