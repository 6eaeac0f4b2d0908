package services

import (
	"context"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

// OperationSvc defines account scoped history and holdings queries.
// Every method requires creds.AccountID.
type OperationSvc interface {
	// Operations returns the operations of the last year.
	Operations(ctx context.Context, creds domain.Credentials) ([]domain.Operation, error)

	Portfolio(ctx context.Context, creds domain.Credentials) (*domain.Portfolio, error)
	Positions(ctx context.Context, creds domain.Credentials) (*domain.Positions, error)

	// PositionInfo returns the holding of one instrument, or ErrNotFound.
	PositionInfo(ctx context.Context, creds domain.Credentials, figi string) (*domain.SecurityPosition, error)

	WithdrawLimits(ctx context.Context, creds domain.Credentials) (*domain.WithdrawLimits, error)

	// BrokerReport requests a report for the last year and returns its task id.
	BrokerReport(ctx context.Context, creds domain.Credentials) (string, error)
}
