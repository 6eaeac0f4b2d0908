package broker

import (
	"context"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

// MarketDataAPI covers prices, trades, books and candles.
type MarketDataAPI interface {
	LastPrices(ctx context.Context, figis []string) ([]domain.LastPrice, error)
	LastTrades(ctx context.Context, figi string, window domain.TimeRange) ([]domain.Trade, error)
	OrderBook(ctx context.Context, figi string, depth int32) (*domain.OrderBook, error)
	Candles(ctx context.Context, figi string, interval string, window domain.TimeRange) ([]domain.Candle, error)
}
