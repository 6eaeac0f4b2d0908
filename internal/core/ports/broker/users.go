package broker

import (
	"context"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

// UsersAPI covers accounts and token owner information.
type UsersAPI interface {
	Accounts(ctx context.Context) ([]domain.Account, error)
	MarginAttributes(ctx context.Context, accountID string) (*domain.MarginAttributes, error)
	UserTariff(ctx context.Context) (*domain.UserTariff, error)
	UserInfo(ctx context.Context) (*domain.UserInfo, error)
}
