package session

import (
	"context"
	"testing"
	"time"

	"cat-collector/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewManager_RejectsShortSecret(t *testing.T) {
	_, err := NewManager("short", time.Hour)
	assert.ErrorIs(t, err, ErrSecretTooWeak)
}

func TestManager_IssueVerifyRoundTrip(t *testing.T) {
	m, err := NewManager(testSecret, time.Hour)
	require.NoError(t, err)

	token, exp, err := m.Issue(context.Background(), auth.Claims{UserID: "u-1", Username: "ana"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, auth.Claims{UserID: "u-1", Username: "ana"}, claims)
}

func TestManager_RejectsExpiredToken(t *testing.T) {
	m, err := NewManager(testSecret, time.Minute)
	require.NoError(t, err)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }
	token, _, err := m.Issue(context.Background(), auth.Claims{UserID: "u-1"})
	require.NoError(t, err)

	m.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = m.Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestManager_RejectsForeignSignature(t *testing.T) {
	a, err := NewManager(testSecret, time.Hour)
	require.NoError(t, err)
	b, err := NewManager("ffffffffffffffffffffffffffffffff", time.Hour)
	require.NoError(t, err)

	token, _, err := a.Issue(context.Background(), auth.Claims{UserID: "u-1"})
	require.NoError(t, err)

	_, err = b.Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestManager_EmptyToken(t *testing.T) {
	m, err := NewManager(testSecret, time.Hour)
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}
