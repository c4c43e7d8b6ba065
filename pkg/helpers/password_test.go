package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("p@ss")
	require.NoError(t, err)

	assert.NotEqual(t, "p@ss", hash)
	assert.True(t, CompareHashAndPassword(hash, "p@ss"))
	assert.False(t, CompareHashAndPassword(hash, "wrong"))
}

func TestCompareHashAndPasswordBadHash(t *testing.T) {
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "p@ss"))
}
