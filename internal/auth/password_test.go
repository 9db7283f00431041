package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("Abcdef1!", 10)

	require.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "Abcdef1!", hashed)
}

func TestComparePassword(t *testing.T) {
	hashed, err := HashPassword("Abcdef1!", 10)
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hashed, "Abcdef1!"))
	assert.Error(t, ComparePassword(hashed, "wrongpassword"))
}

func TestComparePassword_InvalidHash(t *testing.T) {
	assert.Error(t, ComparePassword("not-a-bcrypt-hash", "Abcdef1!"))
}
