package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "blue-shirt", GenerateSlug("Blue Shirt"))
	assert.Equal(t, "rs-120", GenerateSlug("Rs. 120/-"))
	assert.Equal(t, "size-small", GenerateSlug("  Size / Small  "))
}

func TestPasswordRoundTrip(t *testing.T) {
	hash := HashPassword("secret123")
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, PasswordCompare(hash, []byte("secret123")))
	assert.False(t, PasswordCompare(hash, []byte("wrong")))
}
