package invest

import (
	"context"
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

const (
	ordersService     = "OrdersService"
	stopOrdersService = "StopOrdersService"
)

func (s *session) PostOrder(ctx context.Context, accountID string, req domain.OrderRequest) (*domain.OrderReport, error) {
	var resp orderReport
	body := postOrderRequest{
		Figi:      req.Figi,
		Quantity:  int64String(req.Quantity),
		Price:     toQuotation(req.Price),
		Direction: req.Direction,
		AccountID: accountID,
		OrderType: req.OrderType,
		OrderID:   req.OrderID,
	}
	if err := s.call(ctx, ordersService, "PostOrder", body, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

func (s *session) ReplaceOrder(ctx context.Context, accountID string, req domain.ReplaceOrderRequest) (*domain.OrderReport, error) {
	var resp orderReport
	body := replaceOrderRequest{
		AccountID:      accountID,
		OrderID:        req.OrderID,
		IdempotencyKey: req.IdempotencyKey,
		Quantity:       int64String(req.Quantity),
		Price:          toQuotation(req.Price),
		PriceType:      req.PriceType,
	}
	if err := s.call(ctx, ordersService, "ReplaceOrder", body, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

func (s *session) CancelOrder(ctx context.Context, accountID, orderID string) (time.Time, error) {
	var resp cancelResponse
	if err := s.call(ctx, ordersService, "CancelOrder", orderIDRequest{AccountID: accountID, OrderID: orderID}, &resp); err != nil {
		return time.Time{}, err
	}
	return resp.Time, nil
}

func (s *session) OrderState(ctx context.Context, accountID, orderID string) (*domain.OrderState, error) {
	var resp orderState
	if err := s.call(ctx, ordersService, "GetOrderState", orderIDRequest{AccountID: accountID, OrderID: orderID}, &resp); err != nil {
		return nil, err
	}
	state := resp.toDomain()
	return &state, nil
}

func (s *session) Orders(ctx context.Context, accountID string) ([]domain.OrderState, error) {
	var resp ordersResponse
	if err := s.call(ctx, ordersService, "GetOrders", accountRequest{AccountID: accountID}, &resp); err != nil {
		return nil, err
	}

	orders := make([]domain.OrderState, len(resp.Orders))
	for i, o := range resp.Orders {
		orders[i] = o.toDomain()
	}
	return orders, nil
}

func (s *session) PostStopOrder(ctx context.Context, accountID string, req domain.StopOrderRequest) (string, error) {
	var resp postStopOrderResponse
	body := postStopOrderRequest{
		Figi:           req.Figi,
		Quantity:       int64String(req.Quantity),
		Price:          toQuotation(req.Price),
		StopPrice:      toQuotation(req.StopPrice),
		Direction:      req.Direction,
		AccountID:      accountID,
		ExpirationType: req.ExpirationType,
		StopOrderType:  req.StopOrderType,
		ExpireDate:     req.ExpireDate,
	}
	if err := s.call(ctx, stopOrdersService, "PostStopOrder", body, &resp); err != nil {
		return "", err
	}
	return resp.StopOrderID, nil
}

func (s *session) StopOrders(ctx context.Context, accountID string) ([]domain.StopOrder, error) {
	var resp stopOrdersResponse
	if err := s.call(ctx, stopOrdersService, "GetStopOrders", accountRequest{AccountID: accountID}, &resp); err != nil {
		return nil, err
	}

	orders := make([]domain.StopOrder, len(resp.StopOrders))
	for i, o := range resp.StopOrders {
		orders[i] = domain.StopOrder{
			StopOrderID:    o.StopOrderID,
			LotsRequested:  int64(o.LotsRequested),
			Figi:           o.Figi,
			Direction:      o.Direction,
			Currency:       o.Currency,
			OrderType:      o.OrderType,
			CreateDate:     o.CreateDate,
			ActivationDate: o.ActivationDateTime,
			ExpirationTime: o.ExpirationTime,
			Price:          o.Price.toDomain(),
			StopPrice:      o.StopPrice.toDomain(),
		}
	}
	return orders, nil
}

func (s *session) CancelStopOrder(ctx context.Context, accountID, stopOrderID string) (time.Time, error) {
	var resp cancelResponse
	req := stopOrderIDRequest{AccountID: accountID, StopOrderID: stopOrderID}
	if err := s.call(ctx, stopOrdersService, "CancelStopOrder", req, &resp); err != nil {
		return time.Time{}, err
	}
	return resp.Time, nil
}
