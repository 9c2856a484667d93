package tokengenerator

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	gen := NewJwtTokenGenerator("secret", "rolegate", "rolegate")

	tokenStr, expiry, err := gen.GenerateToken("user-123", 10*time.Minute, map[string]interface{}{
		"note": "dev token",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.WithinDuration(t, time.Now().UTC().Add(10*time.Minute), expiry, 5*time.Second)

	token, err := gen.ParseToken(tokenStr)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims["sub"])
	assert.Equal(t, "rolegate", claims["iss"])

	extra, ok := claims["extra_claims"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "dev token", extra["note"])
}

func TestParseTokenWrongSecret(t *testing.T) {
	gen := NewJwtTokenGenerator("secret", "rolegate", "rolegate")
	tokenStr, _, err := gen.GenerateToken("user-123", time.Minute, nil)
	require.NoError(t, err)

	other := NewJwtTokenGenerator("other-secret", "rolegate", "rolegate")
	_, err = other.ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	gen := NewJwtTokenGenerator("secret", "rolegate", "rolegate")
	tokenStr, _, err := gen.GenerateToken("user-123", -time.Minute, nil)
	require.NoError(t, err)

	_, err = gen.ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestCreateTokenStrRoundTrip(t *testing.T) {
	claims := Claims{
		Username: "charlie",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Minute)),
		},
	}

	tokenStr, err := CreateTokenStr("secret", claims)
	require.NoError(t, err)

	token, err := ParseTokenStr("secret", tokenStr)
	require.NoError(t, err)
	assert.True(t, token.Valid)
}
