package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/SscSPs/invest_gateway/internal/core/ports/broker"
)

// UserService serves account and token owner information.
type UserService struct {
	BaseService
}

// NewUserService creates a new UserService.
func NewUserService(dialer broker.Dialer) *UserService {
	return &UserService{BaseService: newBaseService(dialer)}
}

func (s *UserService) Accounts(ctx context.Context, creds domain.Credentials) ([]domain.Account, error) {
	accounts, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) ([]domain.Account, error) {
		return c.Accounts(ctx)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *UserService) MarginAttributes(ctx context.Context, creds domain.Credentials) (*domain.MarginAttributes, error) {
	if err := requireAccount(creds); err != nil {
		return nil, err
	}
	attrs, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (*domain.MarginAttributes, error) {
		return c.MarginAttributes(ctx, creds.AccountID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get margin attributes", slog.String("account_id", creds.AccountID))
		return nil, fmt.Errorf("failed to get margin attributes: %w", err)
	}
	return attrs, nil
}

func (s *UserService) UserTariff(ctx context.Context, creds domain.Credentials) (*domain.UserTariff, error) {
	tariff, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (*domain.UserTariff, error) {
		return c.UserTariff(ctx)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get user tariff")
		return nil, fmt.Errorf("failed to get user tariff: %w", err)
	}
	return tariff, nil
}

func (s *UserService) UserInfo(ctx context.Context, creds domain.Credentials) (*domain.UserInfo, error) {
	info, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (*domain.UserInfo, error) {
		return c.UserInfo(ctx)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get user info")
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	return info, nil
}
