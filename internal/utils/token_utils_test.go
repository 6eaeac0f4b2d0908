package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayTokenRoundTrip(t *testing.T) {
	token, err := GenerateGatewayToken("desk-1", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "desk-1", claims.Subject)
	assert.Equal(t, GatewayTokenIssuer, claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	expired, err := GenerateGatewayToken("desk-1", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, err := GenerateGatewayToken("desk-1", "secret", time.Hour)
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(valid, "other")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = GenerateGatewayToken("", "secret", time.Hour)
	assert.Error(t, err)
}

func TestParseAndValidateJWT_RequiresIssuer(t *testing.T) {
	for _, issuer := range []string{"", "someone-else"} {
		claims := jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "desk-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = ParseAndValidateJWT(signed, "secret")
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer, "issuer %q", issuer)
	}
}
