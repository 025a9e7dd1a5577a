package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Skotchmaster/storefront/pkg/hash"
	"github.com/Skotchmaster/storefront/pkg/logging"
	"github.com/Skotchmaster/storefront/pkg/tokens"
)

var (
	ErrAdminNotConfigured = errors.New("admin password not configured")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidSession     = errors.New("invalid session")
	ErrSessionRevoked     = errors.New("session revoked")
)

const DefaultSessionTTL = 12 * time.Hour

// AdminAuth verifies the single shared admin secret and issues session tokens.
type AdminAuth struct {
	PasswordHash string
	Secret       []byte
	TTL          time.Duration
	Now          func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time // jti -> token expiry
}

// NewAdminAuth prefers a bcrypt hash; a cleartext password is hashed once
// here and not kept.
func NewAdminAuth(passwordHash, password string, secret []byte, ttl time.Duration) (*AdminAuth, error) {
	if passwordHash == "" && password != "" {
		h, err := hash.HashPassword(password)
		if err != nil {
			return nil, err
		}
		passwordHash = h
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AdminAuth{PasswordHash: passwordHash, Secret: secret, TTL: ttl, Now: time.Now}, nil
}

func (a *AdminAuth) Configured() bool {
	return a.PasswordHash != "" && len(a.Secret) > 0
}

func (a *AdminAuth) Login(ctx context.Context, password string) (string, time.Time, error) {
	l := logging.FromContext(ctx).With("svc", "admin.login")

	if !a.Configured() {
		l.Error("login_error", "status", 500, "reason", "admin password not configured")
		return "", time.Time{}, ErrAdminNotConfigured
	}
	if password == "" || !hash.CheckPassword(a.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidPassword
	}

	token, exp, err := tokens.IssueSession(tokens.RoleAdmin, a.Secret, a.Now(), a.TTL)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot sign session", "error", err)
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Verify accepts an unexpired admin token that has not been logged out.
func (a *AdminAuth) Verify(token string) (*tokens.SessionClaims, error) {
	claims, err := a.parse(token)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	_, gone := a.revoked[claims.ID]
	a.mu.Unlock()
	if gone {
		return nil, ErrSessionRevoked
	}
	return claims, nil
}

// Revoke invalidates token until it would have expired anyway.
func (a *AdminAuth) Revoke(token string) error {
	claims, err := a.parse(token)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	now := a.Now()
	for id, exp := range a.revoked {
		if !exp.After(now) {
			delete(a.revoked, id)
		}
	}
	if a.revoked == nil {
		a.revoked = make(map[string]time.Time)
	}
	a.revoked[claims.ID] = claims.ExpiresAt.Time
	return nil
}

func (a *AdminAuth) parse(token string) (*tokens.SessionClaims, error) {
	if token == "" || len(a.Secret) == 0 {
		return nil, ErrInvalidSession
	}
	claims, err := tokens.SessionClaimsFromToken(token, a.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if claims.Role != tokens.RoleAdmin || claims.ID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
