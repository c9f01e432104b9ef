package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	codec, err := NewCodec("super-secret", "HS256")
	require.NoError(t, err)

	claims := jwt.MapClaims{"sub": "a@example.com", "role": "admin"}
	tokenStr, err := codec.Encode(claims, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	decoded, err := codec.Decode(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", decoded["sub"])
	assert.Equal(t, "admin", decoded["role"])
	assert.Contains(t, decoded, "exp")
	assert.False(t, IsExpired(decoded))

	// Encode must not touch the caller's map.
	assert.NotContains(t, claims, "exp")
}

func TestDecode_WrongSecret(t *testing.T) {
	t.Parallel()

	codec, err := NewCodec("right-secret", "HS256")
	require.NoError(t, err)

	other, err := NewCodec("wrong-secret", "HS256")
	require.NoError(t, err)

	tokenStr, err := codec.Encode(jwt.MapClaims{"sub": "u1"}, time.Hour)
	require.NoError(t, err)

	_, err = other.Decode(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	codec, err := NewCodec("secret", "HS256")
	require.NoError(t, err)

	for _, tokenStr := range []string{"", "not.a.token", "aaaa"} {
		_, err := codec.Decode(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestDecode_ExpiredStillDecodes(t *testing.T) {
	t.Parallel()

	codec, err := NewCodec("secret", "HS256")
	require.NoError(t, err)

	tokenStr, err := codec.Encode(jwt.MapClaims{"sub": "u1"}, -61*time.Second)
	require.NoError(t, err)

	decoded, err := codec.Decode(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "u1", decoded["sub"])
	assert.True(t, IsExpired(decoded))
}

func TestIsExpired_MissingExp(t *testing.T) {
	t.Parallel()

	assert.False(t, IsExpired(jwt.MapClaims{"sub": "u1"}))
}

func TestNewCodec_RejectsNonHMAC(t *testing.T) {
	t.Parallel()

	_, err := NewCodec("secret", "RS256")
	assert.Error(t, err)

	_, err = NewCodec("secret", "nope")
	assert.Error(t, err)
}
