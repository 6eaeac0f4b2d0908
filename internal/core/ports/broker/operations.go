package broker

import (
	"context"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

// OperationsAPI covers account history, holdings and reports.
type OperationsAPI interface {
	Operations(ctx context.Context, accountID string, window domain.TimeRange) ([]domain.Operation, error)
	Portfolio(ctx context.Context, accountID string) (*domain.Portfolio, error)
	Positions(ctx context.Context, accountID string) (*domain.Positions, error)
	WithdrawLimits(ctx context.Context, accountID string) (*domain.WithdrawLimits, error)

	// BrokerReport starts report generation and returns the upstream task id.
	BrokerReport(ctx context.Context, accountID string, window domain.TimeRange) (string, error)
}
