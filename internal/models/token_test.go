package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	now := time.Now()

	pair, err := NewToken(1, "access", "refresh", now.Add(time.Hour), now.Add(48*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, int64(1), pair.UserID)
	assert.False(t, pair.IsBlacklisted)
	assert.False(t, pair.IsExpired())
}

func TestNewTokenRejectsBadExpiries(t *testing.T) {
	now := time.Now()

	_, err := NewToken(1, "access", "refresh", now.Add(-time.Hour), now.Add(48*time.Hour))
	assert.Error(t, err)

	_, err = NewToken(1, "access", "refresh", now.Add(time.Hour), now.Add(-time.Hour))
	assert.Error(t, err)

	// Refresh horizon must lie beyond the access horizon.
	_, err = NewToken(1, "access", "refresh", now.Add(2*time.Hour), now.Add(time.Hour))
	assert.Error(t, err)
}

func TestTokenExpiryHelpers(t *testing.T) {
	now := time.Now()

	live := Token{ExpiresAt: now.Add(time.Hour), RefreshExpiresAt: now.Add(48 * time.Hour)}
	assert.False(t, live.IsAccessTokenExpired())
	assert.False(t, live.IsRefreshTokenExpired())
	assert.False(t, live.IsExpired())

	staleAccess := Token{ExpiresAt: now.Add(-time.Minute), RefreshExpiresAt: now.Add(48 * time.Hour)}
	assert.True(t, staleAccess.IsAccessTokenExpired())
	assert.False(t, staleAccess.IsRefreshTokenExpired())
	assert.True(t, staleAccess.IsExpired())

	staleRefresh := Token{ExpiresAt: now.Add(time.Hour), RefreshExpiresAt: now.Add(-time.Minute)}
	assert.True(t, staleRefresh.IsExpired())
}

func TestBlacklistIsOneWay(t *testing.T) {
	var pair Token
	pair.Blacklist()
	assert.True(t, pair.IsBlacklisted)
}
