package broker

import (
	"context"
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

// OrdersAPI covers regular order placement and tracking.
type OrdersAPI interface {
	PostOrder(ctx context.Context, accountID string, req domain.OrderRequest) (*domain.OrderReport, error)
	ReplaceOrder(ctx context.Context, accountID string, req domain.ReplaceOrderRequest) (*domain.OrderReport, error)
	CancelOrder(ctx context.Context, accountID, orderID string) (time.Time, error)
	OrderState(ctx context.Context, accountID, orderID string) (*domain.OrderState, error)
	Orders(ctx context.Context, accountID string) ([]domain.OrderState, error)
}

// StopOrdersAPI covers stop order placement and tracking.
type StopOrdersAPI interface {
	PostStopOrder(ctx context.Context, accountID string, req domain.StopOrderRequest) (string, error)
	StopOrders(ctx context.Context, accountID string) ([]domain.StopOrder, error)
	CancelStopOrder(ctx context.Context, accountID, stopOrderID string) (time.Time, error)
}
