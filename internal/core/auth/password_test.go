package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/auth"
)

func TestHashPassword(t *testing.T) {
	password := "SecurePass123!"

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, auth.CheckPassword(password, hash))
}

func TestHashPasswordSalting(t *testing.T) {
	password := "SecurePass123!"

	first, err := auth.HashPassword(password)
	require.NoError(t, err)

	second, err := auth.HashPassword(password)
	require.NoError(t, err)

	// Same plaintext, different salts, different hashes. Both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, auth.CheckPassword(password, first))
	assert.True(t, auth.CheckPassword(password, second))
}

func TestCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{
			name:     "correct password matches",
			password: "correct-password",
			want:     true,
		},
		{
			name:     "wrong password does not match",
			password: "wrong-password",
			want:     false,
		},
		{
			name:     "empty password does not match",
			password: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.CheckPassword(tt.password, hash))
		})
	}
}
