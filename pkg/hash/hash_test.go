package hash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-booking-api/pkg/hash"
)

func TestPassword(t *testing.T) {
	hashed, err := hash.HashPassword("pass1234")
	require.NoError(t, err)
	assert.NotEqual(t, "pass1234", hashed)

	assert.True(t, hash.ComparePassword(hashed, "pass1234"))
	assert.False(t, hash.ComparePassword(hashed, "pass12345"))
	assert.False(t, hash.ComparePassword("not-a-hash", "pass1234"))
}

func TestResetToken(t *testing.T) {
	plain, digest, err := hash.NewResetToken(32)
	require.NoError(t, err)
	assert.Len(t, plain, 64)
	assert.Equal(t, hash.SHA256(plain), digest)

	other, _, err := hash.NewResetToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, plain, other)

	_, _, err = hash.NewResetToken(0)
	assert.ErrorIs(t, err, hash.ErrTokenSize)
}

func TestSHA256(t *testing.T) {
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		hash.SHA256("hello"))
}
