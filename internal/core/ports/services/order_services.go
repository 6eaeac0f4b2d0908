package services

import (
	"context"
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/SscSPs/invest_gateway/internal/dto"
)

// OrderWriterSvc defines order placement. Every method requires creds.AccountID.
type OrderWriterSvc interface {
	PostOrder(ctx context.Context, creds domain.Credentials, req dto.PostOrderRequest) (*domain.OrderReport, error)
	ReplaceOrder(ctx context.Context, creds domain.Credentials, req dto.ReplaceOrderRequest) (*domain.OrderReport, error)
	CancelOrder(ctx context.Context, creds domain.Credentials, orderID string) (time.Time, error)
}

// OrderReaderSvc defines order tracking.
type OrderReaderSvc interface {
	OrderState(ctx context.Context, creds domain.Credentials, orderID string) (*domain.OrderState, error)
	Orders(ctx context.Context, creds domain.Credentials) ([]domain.OrderState, error)
}

// StopOrderSvc defines stop order placement and tracking.
type StopOrderSvc interface {
	PostStopOrder(ctx context.Context, creds domain.Credentials, req dto.PostStopOrderRequest) (string, error)
	StopOrders(ctx context.Context, creds domain.Credentials) ([]domain.StopOrder, error)
	CancelStopOrder(ctx context.Context, creds domain.Credentials, stopOrderID string) (time.Time, error)
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderWriterSvc
	OrderReaderSvc
	StopOrderSvc
}
