package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/invest_gateway/internal/apperrors"
	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/SscSPs/invest_gateway/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Upstream details are
// logged, never returned to the caller.
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Broker rejected the token"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, apperrors.ErrRateLimited):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Broker rate limit exceeded"})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": msg})
	}
}

// respondBindError reports malformed query parameters or bodies.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// credentials returns the broker credentials stored by BrokerCredentials.
func credentials(c *gin.Context) domain.Credentials {
	creds, _ := middleware.GetCredentialsFromContext(c)
	return creds
}
