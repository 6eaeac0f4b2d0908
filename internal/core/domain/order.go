package domain

import "time"

// OrderRequest is a new order submission. Direction and OrderType hold
// upstream codes, already translated from labels.
type OrderRequest struct {
	Figi      string
	Quantity  int64
	Price     *ScaledMoney
	Direction string
	OrderType string
	OrderID   string
}

// ReplaceOrderRequest changes quantity and price of an active order.
type ReplaceOrderRequest struct {
	OrderID        string
	IdempotencyKey string
	Quantity       int64
	Price          *ScaledMoney
	PriceType      string
}

// OrderReport is the upstream execution report returned on post and replace.
type OrderReport struct {
	OrderID               string
	ExecutionReportStatus string
	LotsRequested         int64
	LotsExecuted          int64
	InitialOrderPrice     MoneyValue
	ExecutedOrderPrice    MoneyValue
	TotalOrderAmount      MoneyValue
	InitialCommission     MoneyValue
	ExecutedCommission    MoneyValue
	AciValue              MoneyValue
	Figi                  string
	Direction             string
	InitialSecurityPrice  MoneyValue
	OrderType             string
	Message               string
	InitialOrderPricePt   ScaledMoney
}

// OrderState is the current state of an order.
type OrderState struct {
	OrderID               string
	ExecutionReportStatus string
	LotsRequested         int64
	LotsExecuted          int64
	InitialOrderPrice     MoneyValue
	ExecutedOrderPrice    MoneyValue
	TotalOrderAmount      MoneyValue
	InitialCommission     MoneyValue
	ExecutedCommission    MoneyValue
	Figi                  string
	Direction             string
	InitialSecurityPrice  MoneyValue
	ServiceCommission     MoneyValue
	Currency              string
	OrderType             string
	OrderDate             time.Time
}

// StopOrderRequest is a new stop order submission with upstream codes.
type StopOrderRequest struct {
	Figi           string
	Quantity       int64
	Price          *ScaledMoney
	StopPrice      *ScaledMoney
	Direction      string
	ExpirationType string
	StopOrderType  string
	ExpireDate     *time.Time
}

// StopOrder is an active stop order.
type StopOrder struct {
	StopOrderID    string
	LotsRequested  int64
	Figi           string
	Direction      string
	Currency       string
	OrderType      string
	CreateDate     time.Time
	ActivationDate *time.Time
	ExpirationTime *time.Time
	Price          MoneyValue
	StopPrice      MoneyValue
}
