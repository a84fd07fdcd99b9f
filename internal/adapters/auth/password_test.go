package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_Hash_and_Compare(t *testing.T) {
	h := NewBcryptHasher(10)
	password := "my-secret-password"

	hash, err := h.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, password, "hash must not embed the plaintext")

	err = h.Compare(hash, password)
	require.NoError(t, err)
}

func TestBcryptHasher_Compare_wrong_password(t *testing.T) {
	h := NewBcryptHasher(10)
	hash, err := h.Hash("correct")
	require.NoError(t, err)

	err = h.Compare(hash, "wrong")
	assert.Error(t, err)
}

func TestBcryptHasher_minimum_cost(t *testing.T) {
	// A cost below bcrypt's default is raised, never accepted.
	h := NewBcryptHasher(1)
	hash, err := h.Hash("password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"), "expected cost 10 hash, got %s", hash)
}
