package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Password_HashAndVerify(t *testing.T) {
	hash, err := HashPassword("R3g5T7#gh")
	require.NoError(t, err)
	assert.NotEqual(t, "R3g5T7#gh", hash)

	assert.True(t, CheckPassword("R3g5T7#gh", hash))
	assert.False(t, CheckPassword("wrongpassword", hash))
}

func Test_Password_HashesAreSalted(t *testing.T) {
	h1, err := HashPassword("samepassword")
	require.NoError(t, err)
	h2, err := HashPassword("samepassword")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
