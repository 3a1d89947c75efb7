package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	signed, exp, err := New("test-secret", "alice", "USER", time.Hour)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := Parse("test-secret", signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "USER", claims.Role)
}

func TestParseWrongSecret(t *testing.T) {
	signed, _, err := New("test-secret", "alice", "USER", time.Hour)
	require.NoError(t, err)

	_, err = Parse("other-secret", signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseExpired(t *testing.T) {
	signed, _, err := New("test-secret", "alice", "USER", -time.Minute)
	require.NoError(t, err)

	_, err = Parse("test-secret", signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("test-secret", "not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
