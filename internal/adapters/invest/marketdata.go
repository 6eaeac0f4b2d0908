package invest

import (
	"context"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

const marketDataService = "MarketDataService"

func (s *session) LastPrices(ctx context.Context, figis []string) ([]domain.LastPrice, error) {
	var resp lastPricesResponse
	if err := s.call(ctx, marketDataService, "GetLastPrices", lastPricesRequest{Figi: figis}, &resp); err != nil {
		return nil, err
	}

	prices := make([]domain.LastPrice, len(resp.LastPrices))
	for i, p := range resp.LastPrices {
		prices[i] = domain.LastPrice{Figi: p.Figi, Price: p.Price.toDomain(), Time: p.Time}
	}
	return prices, nil
}

func (s *session) LastTrades(ctx context.Context, figi string, window domain.TimeRange) ([]domain.Trade, error) {
	var resp lastTradesResponse
	req := lastTradesRequest{Figi: figi, From: window.From, To: window.To}
	if err := s.call(ctx, marketDataService, "GetLastTrades", req, &resp); err != nil {
		return nil, err
	}

	trades := make([]domain.Trade, len(resp.Trades))
	for i, t := range resp.Trades {
		trades[i] = domain.Trade{
			Figi:      t.Figi,
			Direction: t.Direction,
			Price:     t.Price.toDomain(),
			Quantity:  int64(t.Quantity),
			Time:      t.Time,
		}
	}
	return trades, nil
}

func (s *session) OrderBook(ctx context.Context, figi string, depth int32) (*domain.OrderBook, error) {
	var resp orderBookResponse
	if err := s.call(ctx, marketDataService, "GetOrderBook", orderBookRequest{Figi: figi, Depth: depth}, &resp); err != nil {
		return nil, err
	}
	return &domain.OrderBook{
		Figi:       resp.Figi,
		Depth:      resp.Depth,
		Bids:       toBookLevels(resp.Bids),
		Asks:       toBookLevels(resp.Asks),
		LastPrice:  resp.LastPrice.toDomain(),
		ClosePrice: resp.ClosePrice.toDomain(),
		LimitUp:    resp.LimitUp.toDomain(),
		LimitDown:  resp.LimitDown.toDomain(),
	}, nil
}

func (s *session) Candles(ctx context.Context, figi string, interval string, window domain.TimeRange) ([]domain.Candle, error) {
	var resp candlesResponse
	req := candlesRequest{Figi: figi, From: window.From, To: window.To, Interval: interval}
	if err := s.call(ctx, marketDataService, "GetCandles", req, &resp); err != nil {
		return nil, err
	}

	candles := make([]domain.Candle, len(resp.Candles))
	for i, c := range resp.Candles {
		candles[i] = domain.Candle{
			Open:       c.Open.toDomain(),
			High:       c.High.toDomain(),
			Low:        c.Low.toDomain(),
			Close:      c.Close.toDomain(),
			Volume:     int64(c.Volume),
			Time:       c.Time,
			IsComplete: c.IsComplete,
		}
	}
	return candles, nil
}
