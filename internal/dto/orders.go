package dto

import (
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostOrderRequest submits a new order. Direction and OrderType are display
// labels such as "Buy" and "Limit".
type PostOrderRequest struct {
	Figi      string           `json:"figi" binding:"required,figi"`
	Quantity  int64            `json:"quantity" binding:"required,min=1"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Direction string           `json:"direction" binding:"required"`
	OrderType string           `json:"order_type" binding:"required"`
	OrderID   string           `json:"order_id,omitempty" binding:"omitempty,max=36"`
}

// ReplaceOrderRequest changes quantity and price of an active order.
type ReplaceOrderRequest struct {
	OrderID        string           `json:"order_id" binding:"required"`
	IdempotencyKey string           `json:"idempotency_key,omitempty" binding:"omitempty,max=36"`
	Quantity       int64            `json:"quantity" binding:"required,min=1"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	PriceType      string           `json:"price_type,omitempty"`
}

// PostStopOrderRequest submits a new stop order.
type PostStopOrderRequest struct {
	Figi           string           `json:"figi" binding:"required,figi"`
	Quantity       int64            `json:"quantity" binding:"required,min=1"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	StopPrice      *decimal.Decimal `json:"stop_price,omitempty"`
	Direction      string           `json:"direction" binding:"required"`
	ExpirationType string           `json:"expiration_type" binding:"required"`
	StopOrderType  string           `json:"stop_order_type" binding:"required"`
	ExpireDate     *time.Time       `json:"expire_date,omitempty"`
}

// OrderIDQuery carries an order id.
type OrderIDQuery struct {
	OrderID string `form:"order_id" binding:"required"`
}

// StopOrderIDQuery carries a stop order id.
type StopOrderIDQuery struct {
	StopOrderID string `form:"stop_order_id" binding:"required"`
}

// PostOrderResponse is the execution report of a posted or replaced order.
type PostOrderResponse struct {
	OrderID               string          `json:"order_id"`
	ExecutionReportStatus string          `json:"execution_report_status"`
	LotsRequested         int64           `json:"lots_requested"`
	LotsExecuted          int64           `json:"lots_executed"`
	InitialOrderPrice     decimal.Decimal `json:"initial_order_price"`
	ExecutedOrderPrice    decimal.Decimal `json:"executed_order_price"`
	TotalOrderAmount      decimal.Decimal `json:"total_order_amount"`
	InitialCommission     decimal.Decimal `json:"initial_commission"`
	ExecutedCommission    decimal.Decimal `json:"executed_commission"`
	AciValue              decimal.Decimal `json:"aci_value"`
	Figi                  string          `json:"figi"`
	Direction             string          `json:"direction"`
	InitialSecurityPrice  decimal.Decimal `json:"initial_security_price"`
	OrderType             string          `json:"order_type"`
	Message               string          `json:"message,omitempty"`
	InitialOrderPricePt   decimal.Decimal `json:"initial_order_price_pt"`
	Currency              string          `json:"currency"`
}

// OrderStateResponse is the current state of an order.
type OrderStateResponse struct {
	OrderID               string          `json:"order_id"`
	ExecutionReportStatus string          `json:"execution_report_status"`
	LotsRequested         int64           `json:"lots_requested"`
	LotsExecuted          int64           `json:"lots_executed"`
	InitialOrderPrice     decimal.Decimal `json:"initial_order_price"`
	ExecutedOrderPrice    decimal.Decimal `json:"executed_order_price"`
	TotalOrderAmount      decimal.Decimal `json:"total_order_amount"`
	InitialCommission     decimal.Decimal `json:"initial_commission"`
	ExecutedCommission    decimal.Decimal `json:"executed_commission"`
	ServiceCommission     decimal.Decimal `json:"service_commission"`
	Figi                  string          `json:"figi"`
	Direction             string          `json:"direction"`
	InitialSecurityPrice  decimal.Decimal `json:"initial_security_price"`
	Currency              string          `json:"currency"`
	OrderType             string          `json:"order_type"`
	OrderDate             time.Time       `json:"order_date"`
}

// StopOrderResponse is an active stop order.
type StopOrderResponse struct {
	StopOrderID    string          `json:"stop_order_id"`
	LotsRequested  int64           `json:"lots_requested"`
	Figi           string          `json:"figi"`
	Direction      string          `json:"direction"`
	Currency       string          `json:"currency"`
	OrderType      string          `json:"order_type"`
	CreateDate     time.Time       `json:"create_date"`
	ActivationDate *time.Time      `json:"activation_date,omitempty"`
	ExpirationTime *time.Time      `json:"expiration_time,omitempty"`
	Price          decimal.Decimal `json:"price"`
	StopPrice      decimal.Decimal `json:"stop_price"`
}

// StopOrderIDResponse returns the id of a created stop order.
type StopOrderIDResponse struct {
	StopOrderID string `json:"stop_order_id"`
}

// CancelResponse returns the time a cancellation was accepted.
type CancelResponse struct {
	Time time.Time `json:"time"`
}

// ToPostOrderResponse converts an execution report.
func ToPostOrderResponse(r *domain.OrderReport) PostOrderResponse {
	return PostOrderResponse{
		OrderID:               r.OrderID,
		ExecutionReportStatus: domain.ExecutionReportStatusLabels.Label(r.ExecutionReportStatus),
		LotsRequested:         r.LotsRequested,
		LotsExecuted:          r.LotsExecuted,
		InitialOrderPrice:     r.InitialOrderPrice.Abs(),
		ExecutedOrderPrice:    r.ExecutedOrderPrice.Abs(),
		TotalOrderAmount:      r.TotalOrderAmount.Abs(),
		InitialCommission:     r.InitialCommission.Abs(),
		ExecutedCommission:    r.ExecutedCommission.Abs(),
		AciValue:              r.AciValue.Abs(),
		Figi:                  r.Figi,
		Direction:             domain.OrderDirectionLabels.Label(r.Direction),
		InitialSecurityPrice:  r.InitialSecurityPrice.Abs(),
		OrderType:             domain.OrderTypeLabels.Label(r.OrderType),
		Message:               r.Message,
		InitialOrderPricePt:   r.InitialOrderPricePt.Abs(),
		Currency:              r.InitialOrderPrice.Currency,
	}
}

// ToOrderStateResponse converts an order state.
func ToOrderStateResponse(s *domain.OrderState) OrderStateResponse {
	return OrderStateResponse{
		OrderID:               s.OrderID,
		ExecutionReportStatus: domain.ExecutionReportStatusLabels.Label(s.ExecutionReportStatus),
		LotsRequested:         s.LotsRequested,
		LotsExecuted:          s.LotsExecuted,
		InitialOrderPrice:     s.InitialOrderPrice.Abs(),
		ExecutedOrderPrice:    s.ExecutedOrderPrice.Abs(),
		TotalOrderAmount:      s.TotalOrderAmount.Abs(),
		InitialCommission:     s.InitialCommission.Abs(),
		ExecutedCommission:    s.ExecutedCommission.Abs(),
		ServiceCommission:     s.ServiceCommission.Abs(),
		Figi:                  s.Figi,
		Direction:             domain.OrderDirectionLabels.Label(s.Direction),
		InitialSecurityPrice:  s.InitialSecurityPrice.Abs(),
		Currency:              s.Currency,
		OrderType:             domain.OrderTypeLabels.Label(s.OrderType),
		OrderDate:             s.OrderDate,
	}
}

// ToListOrderStateResponse converts a list of order states.
func ToListOrderStateResponse(states []domain.OrderState) []OrderStateResponse {
	res := make([]OrderStateResponse, len(states))
	for i := range states {
		res[i] = ToOrderStateResponse(&states[i])
	}
	return res
}

// ToStopOrderResponses converts stop orders.
func ToStopOrderResponses(orders []domain.StopOrder) []StopOrderResponse {
	res := make([]StopOrderResponse, len(orders))
	for i, o := range orders {
		res[i] = StopOrderResponse{
			StopOrderID:    o.StopOrderID,
			LotsRequested:  o.LotsRequested,
			Figi:           o.Figi,
			Direction:      domain.StopOrderDirectionLabels.Label(o.Direction),
			Currency:       o.Currency,
			OrderType:      domain.StopOrderTypeLabels.Label(o.OrderType),
			CreateDate:     o.CreateDate,
			ActivationDate: o.ActivationDate,
			ExpirationTime: o.ExpirationTime,
			Price:          o.Price.Abs(),
			StopPrice:      o.StopPrice.Abs(),
		}
	}
	return res
}
