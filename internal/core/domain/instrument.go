package domain

import "time"

// TradingDay is one day of an exchange trading schedule.
type TradingDay struct {
	Date         time.Time
	IsTradingDay bool
	StartTime    *time.Time
	EndTime      *time.Time
}

// TradingSchedule lists the trading days of one exchange.
type TradingSchedule struct {
	Exchange string
	Days     []TradingDay
}

// Instrument is the subset of upstream instrument attributes the gateway exposes.
// Currencies, shares and generic instruments all decode into it.
type Instrument struct {
	Figi          string
	Ticker        string
	ClassCode     string
	UID           string
	Name          string
	Exchange      string
	Currency      string
	CountryName   string
	Sector        string
	Lot           int32
	BuyAvailable  bool
	SellAvailable bool
}

// Dividend is a declared dividend payment on a share.
type Dividend struct {
	DividendNet  MoneyValue
	ClosePrice   MoneyValue
	YieldValue   ScaledMoney
	DeclaredDate time.Time
	PaymentDate  *time.Time
	RecordDate   *time.Time
	DividendType string
}
