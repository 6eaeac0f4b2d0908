package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	legacyTokenHeader = "Token"
	accountIDHeader   = "Account-Id"
)

// BrokerCredentials reads the broker API token and the optional account id
// from the request headers. The token comes from "Authorization: Bearer" or
// the legacy "Token" header.
func BrokerCredentials() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		token := ""
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				logger.Warn("Authorization header format invalid")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
				return
			}
			token = strings.TrimSpace(parts[1])
		} else {
			token = strings.TrimSpace(c.GetHeader(legacyTokenHeader))
		}

		if token == "" {
			logger.Warn("Broker token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Broker token required"})
			return
		}

		creds := domain.Credentials{
			Token:     token,
			AccountID: strings.TrimSpace(c.GetHeader(accountIDHeader)),
		}
		c.Set(string(credentialsKey), creds)
		if creds.AccountID != "" {
			withLogger(c, logger.With(slog.String("account_id", creds.AccountID)))
		}

		c.Next()
	}
}

// RequireAccount rejects requests that carry no Account-Id header.
// It must run after BrokerCredentials.
func RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, ok := GetCredentialsFromContext(c)
		if !ok || creds.AccountID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Account-Id header required"})
			return
		}
		c.Next()
	}
}
