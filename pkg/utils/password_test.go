package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPasswordCost("correct horse battery staple", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong horse", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	// Two hashes of the same plaintext differ (fresh salt each call)
	// yet both verify against that plaintext
	h1, err := HashPasswordCost("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPasswordCost("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPasswordHash("secret123", h1))
	assert.True(t, CheckPasswordHash("secret123", h2))
}

func TestHashPassword_SelfDescribing(t *testing.T) {
	// bcrypt output embeds algorithm and cost, verification needs no
	// side channel
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2a$10$"), hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, cost)
}

func TestHashPasswordCost_OutOfRangeFallsBack(t *testing.T) {
	hash, err := HashPasswordCost("secret123", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, cost)
}

func TestCheckPasswordHash_GarbageHash(t *testing.T) {
	// a malformed stored value is a mismatch, not a panic
	assert.False(t, CheckPasswordHash("secret123", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("secret123", ""))
}
