package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", "user")
	require.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "user", role)
}

func TestValidateTokenUserRejectsGarbage(t *testing.T) {
	service := NewJWTService()

	_, err := service.ValidateTokenUser("not-a-token")
	assert.Error(t, err)

	_, _, err = service.GetUserIDByToken("not-a-token")
	assert.Error(t, err)
}
