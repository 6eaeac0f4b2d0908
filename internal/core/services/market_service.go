package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/invest_gateway/internal/apperrors"
	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/SscSPs/invest_gateway/internal/core/ports/broker"
)

const (
	recentTradesWindow    = 30 * time.Minute
	defaultCandleInterval = "hour"
)

// MarketDataService serves prices, trades, books and candles.
type MarketDataService struct {
	BaseService
}

// NewMarketDataService creates a new MarketDataService.
func NewMarketDataService(dialer broker.Dialer) *MarketDataService {
	return &MarketDataService{BaseService: newBaseService(dialer)}
}

func (s *MarketDataService) LastPrices(ctx context.Context, creds domain.Credentials, figis []string) ([]domain.LastPrice, error) {
	if len(figis) == 0 {
		return nil, fmt.Errorf("%w: at least one figi is required", apperrors.ErrValidation)
	}
	prices, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) ([]domain.LastPrice, error) {
		return c.LastPrices(ctx, figis)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get last prices", slog.Any("figis", figis))
		return nil, fmt.Errorf("failed to get last prices: %w", err)
	}
	return prices, nil
}

func (s *MarketDataService) RecentTrades(ctx context.Context, creds domain.Credentials, figi string) ([]domain.Trade, error) {
	now := s.now()
	window := domain.TimeRange{From: now.Add(-recentTradesWindow), To: now}
	trades, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) ([]domain.Trade, error) {
		return c.LastTrades(ctx, figi, window)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get last trades", slog.String("figi", figi))
		return nil, fmt.Errorf("failed to get last trades: %w", err)
	}
	return trades, nil
}

func (s *MarketDataService) OrderBook(ctx context.Context, creds domain.Credentials, figi string, depth int32) (*domain.OrderBook, error) {
	book, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (*domain.OrderBook, error) {
		return c.OrderBook(ctx, figi, depth)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get order book", slog.String("figi", figi), slog.Int("depth", int(depth)))
		return nil, fmt.Errorf("failed to get order book: %w", err)
	}
	return book, nil
}

func (s *MarketDataService) Candles(ctx context.Context, creds domain.Credentials, figi, interval string, from, to *time.Time) ([]domain.Candle, error) {
	if interval == "" {
		interval = defaultCandleInterval
	}
	code, err := codeFor(domain.CandleIntervalLabels, "interval", interval)
	if err != nil {
		return nil, err
	}

	window := domain.LastDays(s.now(), 1)
	if to != nil {
		window.To = *to
		if from == nil {
			window.From = to.AddDate(0, 0, -1)
		}
	}
	if from != nil {
		window.From = *from
	}
	if !window.From.Before(window.To) {
		return nil, fmt.Errorf("%w: from must be before to", apperrors.ErrValidation)
	}

	candles, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) ([]domain.Candle, error) {
		return c.Candles(ctx, figi, code, window)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get candles", slog.String("figi", figi), slog.String("interval", interval))
		return nil, fmt.Errorf("failed to get candles: %w", err)
	}
	return candles, nil
}
