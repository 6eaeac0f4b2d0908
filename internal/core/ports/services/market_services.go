package services

import (
	"context"
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

// MarketDataSvc defines market data queries.
type MarketDataSvc interface {
	LastPrices(ctx context.Context, creds domain.Credentials, figis []string) ([]domain.LastPrice, error)

	// RecentTrades returns anonymous trades of the last 30 minutes.
	RecentTrades(ctx context.Context, creds domain.Credentials, figi string) ([]domain.Trade, error)

	OrderBook(ctx context.Context, creds domain.Credentials, figi string, depth int32) (*domain.OrderBook, error)

	// Candles returns bars of interval (a label such as "hour"). A nil from or
	// to falls back to the last day.
	Candles(ctx context.Context, creds domain.Credentials, figi, interval string, from, to *time.Time) ([]domain.Candle, error)
}
