package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectToken(t *testing.T) {
	expiry := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": expiry.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	info, err := InspectToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", info.Subject)
	assert.True(t, expiry.Equal(info.ExpiresAt))
}

func TestInspectToken_Garbage(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	require.Error(t, err)
}
