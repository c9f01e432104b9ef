package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/models"
)

func assertCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	ewc := DecodeErrorWithCode(err)
	require.NotNil(t, ewc, "expected an ErrorWithCode, got %v", err)
	assert.Equal(t, code, ewc.Code)
}

func TestIssueToken(t *testing.T) {
	service, stores := newTestService(t)
	ctx := context.Background()

	pair, err := service.IssueToken(ctx, 42, jwt.MapClaims{"sub": "alice@example.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, pair.Token)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.Token, pair.RefreshToken)
	assert.Equal(t, int64(42), pair.UserID)
	assert.False(t, pair.IsBlacklisted)

	now := time.Now()
	assert.True(t, pair.ExpiresAt.After(now))
	assert.True(t, pair.RefreshExpiresAt.After(pair.ExpiresAt))

	stored := stores.tokens.mustGet(t, pair.ID)
	assert.Equal(t, pair.Token, stored.Token)
	assert.Equal(t, pair.RefreshToken, stored.RefreshToken)
}

func TestIssueTokenSameClaimsTwice(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first, err := service.IssueToken(ctx, 1, jwt.MapClaims{"sub": "alice@example.com"})
	require.NoError(t, err)

	second, err := service.IssueToken(ctx, 1, jwt.MapClaims{"sub": "alice@example.com"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestValidateAccessToken(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	pair, err := service.IssueToken(ctx, 7, jwt.MapClaims{"sub": "bob@example.com"})
	require.NoError(t, err)

	claims, err := service.ValidateAccessToken(ctx, pair.Token)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", claims["sub"])
}

func TestValidateAccessTokenUnknown(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ValidateAccessToken(context.Background(), "never-issued")
	assertCode(t, err, http.StatusNotFound)
}

func TestValidateAccessTokenBlacklisted(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	pair, err := service.IssueToken(ctx, 7, jwt.MapClaims{"sub": "bob@example.com"})
	require.NoError(t, err)

	require.NoError(t, service.BlacklistToken(ctx, pair.Token))

	_, err = service.ValidateAccessToken(ctx, pair.Token)
	assertCode(t, err, http.StatusUnauthorized)
}

func TestValidateAccessTokenExpired(t *testing.T) {
	service, stores := newTestService(t)
	ctx := context.Background()

	// A structurally valid token whose signed exp is already in the past.
	expired, err := service.codec.Encode(jwt.MapClaims{"sub": "bob@example.com"}, -time.Minute)
	require.NoError(t, err)

	stores.tokens.byID[1] = &models.Token{
		ID:               1,
		Token:            expired,
		RefreshToken:     "refresh-1",
		UserID:           7,
		ExpiresAt:        time.Now().Add(-time.Minute),
		RefreshExpiresAt: time.Now().Add(24 * time.Hour),
	}

	_, err = service.ValidateAccessToken(ctx, expired)
	assertCode(t, err, http.StatusUnauthorized)
}

func TestBlacklistTokenIdempotent(t *testing.T) {
	service, stores := newTestService(t)
	ctx := context.Background()

	pair, err := service.IssueToken(ctx, 7, jwt.MapClaims{"sub": "bob@example.com"})
	require.NoError(t, err)

	require.NoError(t, service.BlacklistToken(ctx, pair.Token))
	require.NoError(t, service.BlacklistToken(ctx, pair.Token))

	assert.True(t, stores.tokens.mustGet(t, pair.ID).IsBlacklisted)
}

func TestBlacklistTokenUnknown(t *testing.T) {
	service, _ := newTestService(t)

	err := service.BlacklistToken(context.Background(), "never-issued")
	assertCode(t, err, http.StatusNotFound)
}

func TestRefreshAccessToken(t *testing.T) {
	service, stores := newTestService(t)
	ctx := context.Background()

	pair, err := service.IssueToken(ctx, 7, jwt.MapClaims{"sub": "bob@example.com"})
	require.NoError(t, err)

	oldAccessToken := pair.Token
	oldExpiresAt := pair.ExpiresAt

	newAccessToken, err := service.RefreshAccessToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, oldAccessToken, newAccessToken)

	stored := stores.tokens.mustGet(t, pair.ID)
	assert.Equal(t, newAccessToken, stored.Token)
	assert.False(t, stored.ExpiresAt.Before(oldExpiresAt))
	assert.Equal(t, pair.RefreshToken, stored.RefreshToken)
	assert.Equal(t, pair.RefreshExpiresAt.Unix(), stored.RefreshExpiresAt.Unix())

	// The new access token is immediately usable, the old one is gone.
	_, err = service.ValidateAccessToken(ctx, newAccessToken)
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(ctx, oldAccessToken)
	assertCode(t, err, http.StatusNotFound)
}

func TestRefreshAccessTokenUnknown(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.RefreshAccessToken(context.Background(), "never-issued")
	assertCode(t, err, http.StatusNotFound)
}

func TestRefreshAccessTokenBlacklisted(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	pair, err := service.IssueToken(ctx, 7, jwt.MapClaims{"sub": "bob@example.com"})
	require.NoError(t, err)

	require.NoError(t, service.BlacklistToken(ctx, pair.Token))

	_, err = service.RefreshAccessToken(ctx, pair.RefreshToken)
	assertCode(t, err, http.StatusUnauthorized)
}

func TestRefreshAccessTokenExpired(t *testing.T) {
	service, stores := newTestService(t)
	ctx := context.Background()

	stores.tokens.byID[1] = &models.Token{
		ID:               1,
		Token:            "access-1",
		RefreshToken:     "refresh-1",
		UserID:           7,
		ExpiresAt:        time.Now().Add(-2 * time.Hour),
		RefreshExpiresAt: time.Now().Add(-time.Hour),
	}

	_, err := service.RefreshAccessToken(ctx, "refresh-1")
	assertCode(t, err, http.StatusUnauthorized)

	// The record is left untouched.
	stored := stores.tokens.mustGet(t, 1)
	assert.Equal(t, "access-1", stored.Token)
	assert.False(t, stored.IsBlacklisted)
}

func TestSweepExpiredTokens(t *testing.T) {
	service, stores := newTestService(t)
	ctx := context.Background()

	now := time.Now()
	stores.tokens.byID[1] = &models.Token{
		ID: 1, Token: "live", RefreshToken: "live-r", UserID: 1,
		ExpiresAt: now.Add(time.Hour), RefreshExpiresAt: now.Add(48 * time.Hour),
	}
	stores.tokens.byID[2] = &models.Token{
		ID: 2, Token: "stale-access", RefreshToken: "stale-access-r", UserID: 1,
		ExpiresAt: now.Add(-time.Minute), RefreshExpiresAt: now.Add(48 * time.Hour),
	}
	stores.tokens.byID[3] = &models.Token{
		ID: 3, Token: "stale-refresh", RefreshToken: "stale-refresh-r", UserID: 1,
		ExpiresAt: now.Add(time.Hour), RefreshExpiresAt: now.Add(-time.Minute),
	}
	stores.tokens.byID[4] = &models.Token{
		ID: 4, Token: "stale-both", RefreshToken: "stale-both-r", UserID: 1,
		ExpiresAt: now.Add(-2 * time.Hour), RefreshExpiresAt: now.Add(-time.Hour),
		IsBlacklisted: true,
	}

	require.NoError(t, service.SweepExpiredTokens(ctx))

	assert.Len(t, stores.tokens.byID, 1)
	assert.Contains(t, stores.tokens.byID, int64(1))
}
