package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 15 * time.Minute
	maker := NewJWTMaker(secretKey, tokenTTL)

	tests := []struct {
		name     string
		username string
		role     string
		userUID  string
	}{
		{
			name:     "admin user",
			username: "admin_user",
			role:     "admin",
			userUID:  "9b2e7a10-5a44-4a1c-8f0e-111111111111",
		},
		{
			name:     "regular user",
			username: "regular_user",
			role:     "user",
			userUID:  "9b2e7a10-5a44-4a1c-8f0e-222222222222",
		},
		{
			name:     "user with email username",
			username: "user@domain.com",
			role:     "user",
			userUID:  "9b2e7a10-5a44-4a1c-8f0e-333333333333",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.username, tt.role, tt.userUID)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.username, claims.Username)
			assert.Equal(t, tt.role, claims.Role)
			assert.Equal(t, tt.userUID, claims.UserUID)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Minute)
		})
	}
}

func TestJWTMaker_ParseToken_InvalidCases(t *testing.T) {
	maker := NewJWTMaker("secret_one", 15*time.Minute)
	otherMaker := NewJWTMaker("secret_two", 15*time.Minute)

	validToken, err := maker.GenerateToken("sailor", "user", "uid-1")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := maker.ParseToken(tt.token)
			assert.Error(t, err)
		})
	}

	t.Run("wrong signature", func(t *testing.T) {
		token, err := otherMaker.GenerateToken("sailor", "user", "uid-1")
		require.NoError(t, err)

		_, err = maker.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredMaker := NewJWTMaker("secret_one", -time.Minute)
		token, err := expiredMaker.GenerateToken("sailor", "user", "uid-1")
		require.NoError(t, err)

		_, err = maker.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("valid token still parses", func(t *testing.T) {
		_, err := maker.ParseToken(validToken)
		assert.NoError(t, err)
	})
}
