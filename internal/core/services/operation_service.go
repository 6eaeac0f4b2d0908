package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/invest_gateway/internal/apperrors"
	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/SscSPs/invest_gateway/internal/core/ports/broker"
)

const historyLookback = 365

// OperationService serves account history and holdings.
type OperationService struct {
	BaseService
}

// NewOperationService creates a new OperationService.
func NewOperationService(dialer broker.Dialer) *OperationService {
	return &OperationService{BaseService: newBaseService(dialer)}
}

func (s *OperationService) Operations(ctx context.Context, creds domain.Credentials) ([]domain.Operation, error) {
	if err := requireAccount(creds); err != nil {
		return nil, err
	}
	window := domain.LastDays(s.now(), historyLookback)
	ops, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) ([]domain.Operation, error) {
		return c.Operations(ctx, creds.AccountID, window)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get operations", slog.String("account_id", creds.AccountID))
		return nil, fmt.Errorf("failed to get operations: %w", err)
	}
	return ops, nil
}

func (s *OperationService) Portfolio(ctx context.Context, creds domain.Credentials) (*domain.Portfolio, error) {
	if err := requireAccount(creds); err != nil {
		return nil, err
	}
	p, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (*domain.Portfolio, error) {
		return c.Portfolio(ctx, creds.AccountID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get portfolio", slog.String("account_id", creds.AccountID))
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return p, nil
}

func (s *OperationService) Positions(ctx context.Context, creds domain.Credentials) (*domain.Positions, error) {
	if err := requireAccount(creds); err != nil {
		return nil, err
	}
	p, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (*domain.Positions, error) {
		return c.Positions(ctx, creds.AccountID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get positions", slog.String("account_id", creds.AccountID))
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}
	return p, nil
}

func (s *OperationService) PositionInfo(ctx context.Context, creds domain.Credentials, figi string) (*domain.SecurityPosition, error) {
	positions, err := s.Positions(ctx, creds)
	if err != nil {
		return nil, err
	}
	for i := range positions.Securities {
		if positions.Securities[i].Figi == figi {
			return &positions.Securities[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no position in %s", apperrors.ErrNotFound, figi)
}

func (s *OperationService) WithdrawLimits(ctx context.Context, creds domain.Credentials) (*domain.WithdrawLimits, error) {
	if err := requireAccount(creds); err != nil {
		return nil, err
	}
	w, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (*domain.WithdrawLimits, error) {
		return c.WithdrawLimits(ctx, creds.AccountID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get withdraw limits", slog.String("account_id", creds.AccountID))
		return nil, fmt.Errorf("failed to get withdraw limits: %w", err)
	}
	return w, nil
}

func (s *OperationService) BrokerReport(ctx context.Context, creds domain.Credentials) (string, error) {
	if err := requireAccount(creds); err != nil {
		return "", err
	}
	window := domain.LastDays(s.now(), historyLookback)
	taskID, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (string, error) {
		return c.BrokerReport(ctx, creds.AccountID, window)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to request broker report", slog.String("account_id", creds.AccountID))
		return "", fmt.Errorf("failed to request broker report: %w", err)
	}
	s.LogDebug(ctx, "Broker report requested", slog.String("task_id", taskID))
	return taskID, nil
}
