package middleware

import (
	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// credentialsKey stores the caller's broker credentials in the Gin context.
const (
	credentialsKey = contextKey("brokerCredentials")
	clientIDKey    = contextKey("clientID")
)

// GetCredentialsFromContext retrieves the broker credentials set by
// BrokerCredentials. It returns the credentials and whether they were found.
func GetCredentialsFromContext(c *gin.Context) (domain.Credentials, bool) {
	val, exists := c.Get(string(credentialsKey))
	if !exists {
		return domain.Credentials{}, false
	}
	creds, ok := val.(domain.Credentials)
	return creds, ok
}

// GetClientIDFromContext retrieves the gateway client id set by
// GatewayTokenMiddleware.
func GetClientIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(clientIDKey))
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}
