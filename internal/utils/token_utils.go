package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GatewayTokenIssuer is the issuer written into gateway client tokens.
const GatewayTokenIssuer = "invest-gateway"

// GenerateGatewayToken signs an HS256 token identifying a gateway client.
func GenerateGatewayToken(clientID string, secret string, expiryDuration time.Duration) (string, error) {
	if clientID == "" {
		return "", errors.New("client id is required")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    GatewayTokenIssuer,
		Subject:   clientID,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string and validates its signature and
// standard claims. Only HMAC signing methods and tokens issued by
// GatewayTokenIssuer are accepted.
func ParseAndValidateJWT(tokenString string, secretKey string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	}, jwt.WithIssuer(GatewayTokenIssuer))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
