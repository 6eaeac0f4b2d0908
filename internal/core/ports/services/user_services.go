package services

import (
	"context"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

// UserSvc defines operations on the token owner and their accounts.
type UserSvc interface {
	Accounts(ctx context.Context, creds domain.Credentials) ([]domain.Account, error)

	// MarginAttributes requires creds.AccountID.
	MarginAttributes(ctx context.Context, creds domain.Credentials) (*domain.MarginAttributes, error)

	UserTariff(ctx context.Context, creds domain.Credentials) (*domain.UserTariff, error)
	UserInfo(ctx context.Context, creds domain.Credentials) (*domain.UserInfo, error)
}
