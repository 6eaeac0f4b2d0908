package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/SscSPs/invest_gateway/internal/apperrors"
	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/SscSPs/invest_gateway/internal/core/ports/broker"
	"github.com/SscSPs/invest_gateway/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxPriceUnits bounds the integer part of an outbound price.
var maxPriceUnits = decimal.NewFromInt(math.MaxInt64)

const (
	orderTypeLimit         = "ORDER_TYPE_LIMIT"
	stopOrderTypeLimit     = "STOP_ORDER_TYPE_STOP_LIMIT"
	stopExpireGoodTillDate = "STOP_ORDER_EXPIRATION_TYPE_GOOD_TILL_DATE"
)

// OrderService places and tracks orders and stop orders.
type OrderService struct {
	BaseService
	newID func() string
}

// NewOrderService creates a new OrderService.
func NewOrderService(dialer broker.Dialer) *OrderService {
	return &OrderService{BaseService: newBaseService(dialer), newID: uuid.NewString}
}

// toPrice converts a request price to the upstream pair. Prices that the pair
// cannot carry exactly are rejected.
func toPrice(field string, d *decimal.Decimal) (*domain.ScaledMoney, error) {
	if d == nil {
		return nil, nil
	}
	if !d.IsPositive() {
		return nil, fmt.Errorf("%w: %s must be positive", apperrors.ErrValidation, field)
	}
	if !d.Truncate(9).Equal(*d) {
		return nil, fmt.Errorf("%w: %s has more than 9 decimal places", apperrors.ErrValidation, field)
	}
	if d.Truncate(0).GreaterThan(maxPriceUnits) {
		return nil, fmt.Errorf("%w: %s is too large", apperrors.ErrValidation, field)
	}
	p := domain.ScaledMoneyFromDecimal(*d)
	return &p, nil
}

// PostOrder submits an order. A missing order id is replaced with a fresh UUID.
func (s *OrderService) PostOrder(ctx context.Context, creds domain.Credentials, req dto.PostOrderRequest) (*domain.OrderReport, error) {
	if err := requireAccount(creds); err != nil {
		return nil, err
	}
	direction, err := codeFor(domain.OrderDirectionLabels, "direction", req.Direction)
	if err != nil {
		return nil, err
	}
	orderType, err := codeFor(domain.OrderTypeLabels, "order_type", req.OrderType)
	if err != nil {
		return nil, err
	}
	price, err := toPrice("price", req.Price)
	if err != nil {
		return nil, err
	}
	if orderType == orderTypeLimit && price == nil {
		return nil, fmt.Errorf("%w: limit orders require a price", apperrors.ErrValidation)
	}

	order := domain.OrderRequest{
		Figi:      req.Figi,
		Quantity:  req.Quantity,
		Price:     price,
		Direction: direction,
		OrderType: orderType,
		OrderID:   req.OrderID,
	}
	if order.OrderID == "" {
		order.OrderID = s.newID()
	}

	report, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (*domain.OrderReport, error) {
		return c.PostOrder(ctx, creds.AccountID, order)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to post order", slog.String("figi", req.Figi), slog.String("order_id", order.OrderID))
		return nil, fmt.Errorf("failed to post order: %w", err)
	}
	s.GetLogger(ctx).Info("Order posted", slog.String("order_id", report.OrderID), slog.String("figi", req.Figi))
	return report, nil
}

func (s *OrderService) ReplaceOrder(ctx context.Context, creds domain.Credentials, req dto.ReplaceOrderRequest) (*domain.OrderReport, error) {
	if err := requireAccount(creds); err != nil {
		return nil, err
	}
	price, err := toPrice("price", req.Price)
	if err != nil {
		return nil, err
	}
	priceType := ""
	if req.PriceType != "" {
		if priceType, err = codeFor(domain.PriceTypeLabels, "price_type", req.PriceType); err != nil {
			return nil, err
		}
	}

	replace := domain.ReplaceOrderRequest{
		OrderID:        req.OrderID,
		IdempotencyKey: req.IdempotencyKey,
		Quantity:       req.Quantity,
		Price:          price,
		PriceType:      priceType,
	}
	if replace.IdempotencyKey == "" {
		replace.IdempotencyKey = s.newID()
	}

	report, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (*domain.OrderReport, error) {
		return c.ReplaceOrder(ctx, creds.AccountID, replace)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to replace order", slog.String("order_id", req.OrderID))
		return nil, fmt.Errorf("failed to replace order %s: %w", req.OrderID, err)
	}
	s.GetLogger(ctx).Info("Order replaced", slog.String("order_id", req.OrderID), slog.String("new_order_id", report.OrderID))
	return report, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, creds domain.Credentials, orderID string) (time.Time, error) {
	if err := requireAccount(creds); err != nil {
		return time.Time{}, err
	}
	at, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (time.Time, error) {
		return c.CancelOrder(ctx, creds.AccountID, orderID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to cancel order", slog.String("order_id", orderID))
		return time.Time{}, fmt.Errorf("failed to cancel order %s: %w", orderID, err)
	}
	return at, nil
}

func (s *OrderService) OrderState(ctx context.Context, creds domain.Credentials, orderID string) (*domain.OrderState, error) {
	if err := requireAccount(creds); err != nil {
		return nil, err
	}
	state, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (*domain.OrderState, error) {
		return c.OrderState(ctx, creds.AccountID, orderID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get order state", slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to get order state %s: %w", orderID, err)
	}
	return state, nil
}

func (s *OrderService) Orders(ctx context.Context, creds domain.Credentials) ([]domain.OrderState, error) {
	if err := requireAccount(creds); err != nil {
		return nil, err
	}
	orders, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) ([]domain.OrderState, error) {
		return c.Orders(ctx, creds.AccountID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders", slog.String("account_id", creds.AccountID))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) PostStopOrder(ctx context.Context, creds domain.Credentials, req dto.PostStopOrderRequest) (string, error) {
	if err := requireAccount(creds); err != nil {
		return "", err
	}
	direction, err := codeFor(domain.StopOrderDirectionLabels, "direction", req.Direction)
	if err != nil {
		return "", err
	}
	expiration, err := codeFor(domain.StopOrderExpirationTypeLabels, "expiration_type", req.ExpirationType)
	if err != nil {
		return "", err
	}
	stopType, err := codeFor(domain.StopOrderTypeLabels, "stop_order_type", req.StopOrderType)
	if err != nil {
		return "", err
	}
	price, err := toPrice("price", req.Price)
	if err != nil {
		return "", err
	}
	stopPrice, err := toPrice("stop_price", req.StopPrice)
	if err != nil {
		return "", err
	}
	if stopPrice == nil {
		return "", fmt.Errorf("%w: stop_price is required", apperrors.ErrValidation)
	}
	if stopType == stopOrderTypeLimit && price == nil {
		return "", fmt.Errorf("%w: stop limit orders require a price", apperrors.ErrValidation)
	}
	if expiration == stopExpireGoodTillDate {
		if req.ExpireDate == nil {
			return "", fmt.Errorf("%w: expire_date is required for Good Till Date", apperrors.ErrValidation)
		}
		if !req.ExpireDate.After(s.now()) {
			return "", fmt.Errorf("%w: expire_date must be in the future", apperrors.ErrValidation)
		}
	}

	order := domain.StopOrderRequest{
		Figi:           req.Figi,
		Quantity:       req.Quantity,
		Price:          price,
		StopPrice:      stopPrice,
		Direction:      direction,
		ExpirationType: expiration,
		StopOrderType:  stopType,
		ExpireDate:     req.ExpireDate,
	}
	id, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (string, error) {
		return c.PostStopOrder(ctx, creds.AccountID, order)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to post stop order", slog.String("figi", req.Figi))
		return "", fmt.Errorf("failed to post stop order: %w", err)
	}
	s.GetLogger(ctx).Info("Stop order posted", slog.String("stop_order_id", id), slog.String("figi", req.Figi))
	return id, nil
}

func (s *OrderService) StopOrders(ctx context.Context, creds domain.Credentials) ([]domain.StopOrder, error) {
	if err := requireAccount(creds); err != nil {
		return nil, err
	}
	orders, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) ([]domain.StopOrder, error) {
		return c.StopOrders(ctx, creds.AccountID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list stop orders", slog.String("account_id", creds.AccountID))
		return nil, fmt.Errorf("failed to list stop orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) CancelStopOrder(ctx context.Context, creds domain.Credentials, stopOrderID string) (time.Time, error) {
	if err := requireAccount(creds); err != nil {
		return time.Time{}, err
	}
	at, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (time.Time, error) {
		return c.CancelStopOrder(ctx, creds.AccountID, stopOrderID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to cancel stop order", slog.String("stop_order_id", stopOrderID))
		return time.Time{}, fmt.Errorf("failed to cancel stop order %s: %w", stopOrderID, err)
	}
	return at, nil
}
