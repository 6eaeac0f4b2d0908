package dto

import (
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderBookQuery selects an instrument and book depth.
type OrderBookQuery struct {
	Figi  string `form:"figi" binding:"required,figi"`
	Depth int32  `form:"depth" binding:"required,oneof=1 10 20 30 40 50"`
}

// CandlesQuery selects candles of an instrument. From and To default to the
// last day when omitted.
type CandlesQuery struct {
	Figi     string     `form:"figi" binding:"required,figi"`
	Interval string     `form:"interval"`
	From     *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To       *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// KlineQuery selects candles within an explicit window.
type KlineQuery struct {
	Figi     string     `form:"figi" binding:"required,figi"`
	Interval string     `form:"interval" binding:"required"`
	From     *time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To       *time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

// TickersQuery carries several FIGIs.
type TickersQuery struct {
	Figi []string `form:"figi" binding:"required,min=1,max=100,dive,figi"`
}

// LastPriceResponse is the latest price of an instrument.
type LastPriceResponse struct {
	Figi  string          `json:"figi"`
	Price decimal.Decimal `json:"price"`
	Time  time.Time       `json:"time"`
}

// TradeResponse is an anonymous market trade.
type TradeResponse struct {
	Figi      string          `json:"figi"`
	Direction string          `json:"direction"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Time      time.Time       `json:"time"`
}

// BookOrderResponse is one order book level.
type BookOrderResponse struct {
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// OrderBookResponse is an order book snapshot.
type OrderBookResponse struct {
	Figi       string              `json:"figi"`
	Depth      int32               `json:"depth"`
	Bids       []BookOrderResponse `json:"bids"`
	Asks       []BookOrderResponse `json:"asks"`
	LastPrice  decimal.Decimal     `json:"last_price"`
	ClosePrice decimal.Decimal     `json:"close_price"`
	LimitUp    decimal.Decimal     `json:"limit_up"`
	LimitDown  decimal.Decimal     `json:"limit_down"`
}

// CandleResponse is an OHLCV bar.
type CandleResponse struct {
	Open       decimal.Decimal `json:"open"`
	High       decimal.Decimal `json:"high"`
	Low        decimal.Decimal `json:"low"`
	Close      decimal.Decimal `json:"close"`
	Volume     int64           `json:"volume"`
	Time       time.Time       `json:"time"`
	IsComplete bool            `json:"is_complete"`
}

// ToLastPriceResponses converts last prices.
func ToLastPriceResponses(prices []domain.LastPrice) []LastPriceResponse {
	res := make([]LastPriceResponse, len(prices))
	for i, p := range prices {
		res[i] = LastPriceResponse{Figi: p.Figi, Price: p.Price.Abs(), Time: p.Time}
	}
	return res
}

// ToTradeResponses converts trades, labelling their direction.
func ToTradeResponses(trades []domain.Trade) []TradeResponse {
	res := make([]TradeResponse, len(trades))
	for i, t := range trades {
		res[i] = TradeResponse{
			Figi:      t.Figi,
			Direction: domain.TradeDirectionLabels.Label(t.Direction),
			Price:     t.Price.Abs(),
			Quantity:  t.Quantity,
			Time:      t.Time,
		}
	}
	return res
}

func toBookOrders(levels []domain.BookLevel) []BookOrderResponse {
	res := make([]BookOrderResponse, len(levels))
	for i, l := range levels {
		res[i] = BookOrderResponse{Price: l.Price.Abs(), Quantity: l.Quantity}
	}
	return res
}

// ToOrderBookResponse converts an order book snapshot.
func ToOrderBookResponse(book *domain.OrderBook) OrderBookResponse {
	return OrderBookResponse{
		Figi:       book.Figi,
		Depth:      book.Depth,
		Bids:       toBookOrders(book.Bids),
		Asks:       toBookOrders(book.Asks),
		LastPrice:  book.LastPrice.Abs(),
		ClosePrice: book.ClosePrice.Abs(),
		LimitUp:    book.LimitUp.Abs(),
		LimitDown:  book.LimitDown.Abs(),
	}
}

// ToCandleResponses converts candles.
func ToCandleResponses(candles []domain.Candle) []CandleResponse {
	res := make([]CandleResponse, len(candles))
	for i, c := range candles {
		res[i] = CandleResponse{
			Open:       c.Open.Abs(),
			High:       c.High.Abs(),
			Low:        c.Low.Abs(),
			Close:      c.Close.Abs(),
			Volume:     c.Volume,
			Time:       c.Time,
			IsComplete: c.IsComplete,
		}
	}
	return res
}
