package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/pkg/hash"
	"github.com/Skotchmaster/storefront/pkg/tokens"
)

func TestAdminAuth_LoginWithCleartextPassword(t *testing.T) {
	a, err := NewAdminAuth("", "s3cret", []byte("k"), 0)
	require.NoError(t, err)
	assert.True(t, hash.IsHash(a.PasswordHash))
	assert.Equal(t, DefaultSessionTTL, a.TTL)

	token, exp, err := a.Login(context.Background(), "s3cret")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultSessionTTL), exp, 5*time.Second)
	claims, err := a.Verify(token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
	_, err = a.Verify(token + "x")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestAdminAuth_WrongPassword(t *testing.T) {
	h, err := hash.HashPassword("right")
	require.NoError(t, err)
	a, err := NewAdminAuth(h, "", []byte("k"), time.Hour)
	require.NoError(t, err)

	_, _, err = a.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	_, _, err = a.Login(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAdminAuth_NotConfigured(t *testing.T) {
	a, err := NewAdminAuth("", "", []byte("k"), time.Hour)
	require.NoError(t, err)

	_, _, err = a.Login(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrAdminNotConfigured)
}

func TestAdminAuth_ExpiredSession(t *testing.T) {
	a, err := NewAdminAuth("", "pw", []byte("k"), time.Minute)
	require.NoError(t, err)
	a.Now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := a.Login(context.Background(), "pw")
	require.NoError(t, err)
	_, err = a.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestAdminAuth_RevokeEndsOnlyThatSession(t *testing.T) {
	a, err := NewAdminAuth("", "pw", []byte("k"), time.Hour)
	require.NoError(t, err)

	first, _, err := a.Login(context.Background(), "pw")
	require.NoError(t, err)
	second, _, err := a.Login(context.Background(), "pw")
	require.NoError(t, err)

	require.NoError(t, a.Revoke(first))
	_, err = a.Verify(first)
	assert.ErrorIs(t, err, ErrSessionRevoked)
	_, err = a.Verify(second)
	assert.NoError(t, err)

	assert.ErrorIs(t, a.Revoke("garbage"), ErrInvalidSession)
}

func TestAdminAuth_RevokePrunesExpiredEntries(t *testing.T) {
	a, err := NewAdminAuth("", "pw", []byte("k"), time.Hour)
	require.NoError(t, err)

	token, _, err := a.Login(context.Background(), "pw")
	require.NoError(t, err)
	require.NoError(t, a.Revoke(token))
	require.Len(t, a.revoked, 1)

	a.Now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	other, _, err := tokens.IssueSession(tokens.RoleAdmin, a.Secret, time.Now(), time.Hour)
	require.NoError(t, err)
	require.NoError(t, a.Revoke(other))
	assert.Len(t, a.revoked, 1)
}
