package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/invest_gateway/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful
// broker calls with PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		distinctID, ok := distinctIDFromContext(c)
		if !ok {
			return
		}

		// "/operation_market/portfolio" -> "operation_market_portfolio"
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		posthogClient.Enqueue(distinctID, eventName, props)
	}
}

// distinctIDFromContext identifies the caller by gateway client id, falling
// back to the broker account. The broker token is never used.
func distinctIDFromContext(c *gin.Context) (string, bool) {
	if id, ok := GetClientIDFromContext(c); ok {
		return id, true
	}
	if creds, ok := GetCredentialsFromContext(c); ok && creds.AccountID != "" {
		return "account:" + creds.AccountID, true
	}
	return "", false
}
