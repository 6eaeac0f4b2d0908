package domain

import "time"

// Operation is one entry of an account's operation history.
type Operation struct {
	ID             string
	Currency       string
	Payment        MoneyValue
	Price          MoneyValue
	State          string
	Quantity       int64
	Figi           string
	InstrumentType string
	Date           time.Time
	Type           string
	OperationType  string
}

// Portfolio is the valuation summary of an account.
type Portfolio struct {
	TotalAmountShares     MoneyValue
	TotalAmountBonds      MoneyValue
	TotalAmountEtf        MoneyValue
	TotalAmountCurrencies MoneyValue
	TotalAmountFutures    MoneyValue
	ExpectedYield         ScaledMoney
}

// SecurityPosition is a holding of one instrument.
type SecurityPosition struct {
	Figi           string
	InstrumentType string
	Blocked        int64
	Balance        int64
}

// Positions lists money and securities held on an account.
type Positions struct {
	Money      []MoneyValue
	Blocked    []MoneyValue
	Securities []SecurityPosition
}

// WithdrawLimits lists money available for withdrawal per currency.
type WithdrawLimits struct {
	Money            []MoneyValue
	Blocked          []MoneyValue
	BlockedGuarantee []MoneyValue
}
