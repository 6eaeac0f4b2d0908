package domain

import "time"

// LastPrice is the latest traded price of an instrument.
type LastPrice struct {
	Figi  string
	Price ScaledMoney
	Time  time.Time
}

// Trade is an anonymous market trade.
type Trade struct {
	Figi      string
	Direction string
	Price     ScaledMoney
	Quantity  int64
	Time      time.Time
}

// BookLevel is one price level of an order book.
type BookLevel struct {
	Price    ScaledMoney
	Quantity int64
}

// OrderBook is a depth snapshot for one instrument.
type OrderBook struct {
	Figi       string
	Depth      int32
	Bids       []BookLevel
	Asks       []BookLevel
	LastPrice  ScaledMoney
	ClosePrice ScaledMoney
	LimitUp    ScaledMoney
	LimitDown  ScaledMoney
}

// Candle is an OHLCV bar.
type Candle struct {
	Open       ScaledMoney
	High       ScaledMoney
	Low        ScaledMoney
	Close      ScaledMoney
	Volume     int64
	Time       time.Time
	IsComplete bool
}
