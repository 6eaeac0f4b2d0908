package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/ports/broker"
	"github.com/SscSPs/invest_gateway/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Dialer broker.Dialer
	Now    func() time.Time
}

func newBaseService(dialer broker.Dialer) BaseService {
	return BaseService{Dialer: dialer, Now: time.Now}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting. Expected outcomes such
// as not found are logged at debug level.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	if isExpected(err) {
		logger.Debug(msg, args...)
		return
	}
	logger.Error(msg, args...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

func (s *BaseService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
