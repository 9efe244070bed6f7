package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRandomPasswordMeetsPolicy(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		password, err := GenerateRandomPassword()
		require.NoError(t, err)
		require.Len(t, password, passwordLength)
		require.True(t, strings.ContainsAny(password, lowerChars), "missing lowercase: %q", password)
		require.True(t, strings.ContainsAny(password, upperChars), "missing uppercase: %q", password)
		require.True(t, strings.ContainsAny(password, digitChars), "missing digit: %q", password)
		require.True(t, strings.ContainsAny(password, specialChars), "missing special: %q", password)
		seen[password] = true
	}
	require.Greater(t, len(seen), 45, "passwords should not repeat")
}
