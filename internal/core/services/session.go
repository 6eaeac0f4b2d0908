package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/invest_gateway/internal/apperrors"
	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/SscSPs/invest_gateway/internal/core/ports/broker"
	"github.com/SscSPs/invest_gateway/internal/middleware"
)

// withClient opens an upstream session for creds, runs fn and closes the
// session on every path. Close failures are logged and never override the
// result of fn.
func withClient(ctx context.Context, dialer broker.Dialer, creds domain.Credentials, fn func(broker.Client) error) error {
	if creds.Token == "" {
		return fmt.Errorf("%w: broker token required", apperrors.ErrUnauthorized)
	}

	client, err := dialer.Dial(ctx, creds.Token)
	if err != nil {
		return fmt.Errorf("failed to open broker session: %w", err)
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Failed to close broker session", slog.String("error", cerr.Error()))
		}
	}()

	return fn(client)
}

// callClient is withClient for calls that produce a value.
func callClient[T any](ctx context.Context, dialer broker.Dialer, creds domain.Credentials, fn func(broker.Client) (T, error)) (T, error) {
	var out T
	err := withClient(ctx, dialer, creds, func(c broker.Client) error {
		var ferr error
		out, ferr = fn(c)
		return ferr
	})
	return out, err
}

// requireAccount rejects account scoped calls made without an account id.
func requireAccount(creds domain.Credentials) error {
	if creds.AccountID == "" {
		return fmt.Errorf("%w: account id required", apperrors.ErrValidation)
	}
	return nil
}

// codeFor translates a display label into its upstream code. The fallback
// label is not accepted as input.
func codeFor(table domain.LabelTable, field, label string) (string, error) {
	code, ok := table.Code(label)
	if !ok || label == table.Fallback() {
		return "", fmt.Errorf("%w: unknown %s %q", apperrors.ErrValidation, field, label)
	}
	return code, nil
}

// isExpected reports errors that are normal outcomes rather than failures.
func isExpected(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrUnauthorized) ||
		errors.Is(err, apperrors.ErrForbidden)
}
