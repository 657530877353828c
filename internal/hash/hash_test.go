package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("secret_password")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	require.NotEqual(t, "secret_password", hashed)

	require.True(t, CheckPassword(hashed, "secret_password"))
	require.False(t, CheckPassword(hashed, "wrong_password"))
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("same_input")
	require.NoError(t, err)
	second, err := HashPassword("same_input")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, CheckPassword(first, "same_input"))
	require.True(t, CheckPassword(second, "same_input"))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	require.False(t, CheckPassword("not a bcrypt hash", "anything"))
	require.False(t, CheckPassword("", "anything"))
}
