package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/invest_gateway/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const gatewayTokenHeader = "X-Token"

// GatewayTokenMiddleware validates the HS256 JWT carried in the X-Token
// header. An empty secret disables the check.
func GatewayTokenMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtSecret == "" {
			c.Next()
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context())
		tokenString := c.GetHeader(gatewayTokenHeader)
		if tokenString == "" {
			logger.Warn("Gateway token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-Token header required"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid gateway token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if claims.Subject == "" {
			logger.Warn("Invalid gateway token claims")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		c.Set(string(clientIDKey), claims.Subject)
		withLogger(c, logger.With(slog.String("client_id", claims.Subject)))

		c.Next()
	}
}
