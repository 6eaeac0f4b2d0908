package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/invest_gateway/internal/apperrors"
	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/SscSPs/invest_gateway/internal/core/ports/broker"
	"github.com/SscSPs/invest_gateway/internal/dto"
	"github.com/SscSPs/invest_gateway/internal/utils/pagination"
)

const (
	scheduleLead     = time.Hour
	scheduleHorizon  = 7
	dividendLookback = 365
)

// InstrumentService serves instrument reference data.
type InstrumentService struct {
	BaseService
}

// NewInstrumentService creates a new InstrumentService.
func NewInstrumentService(dialer broker.Dialer) *InstrumentService {
	return &InstrumentService{BaseService: newBaseService(dialer)}
}

// TradingSchedules returns the schedule starting an hour from now and
// spanning the following week.
func (s *InstrumentService) TradingSchedules(ctx context.Context, creds domain.Credentials, exchange string) ([]domain.TradingSchedule, error) {
	from := s.now().Add(scheduleLead)
	window := domain.TimeRange{From: from, To: from.AddDate(0, 0, scheduleHorizon)}

	schedules, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) ([]domain.TradingSchedule, error) {
		return c.TradingSchedules(ctx, exchange, window)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get trading schedules", slog.String("exchange", exchange))
		return nil, fmt.Errorf("failed to get trading schedules: %w", err)
	}
	return schedules, nil
}

func (s *InstrumentService) Currencies(ctx context.Context, creds domain.Credentials, page dto.ListParams) ([]domain.Instrument, string, error) {
	items, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) ([]domain.Instrument, error) {
		return c.Currencies(ctx)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, "", fmt.Errorf("failed to list currencies: %w", err)
	}
	return paginate(items, page)
}

func (s *InstrumentService) CurrencyBy(ctx context.Context, creds domain.Credentials, figi string) (*domain.Instrument, error) {
	inst, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (*domain.Instrument, error) {
		return c.CurrencyBy(ctx, domain.InstrumentIDFigi, figi)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get currency", slog.String("figi", figi))
		return nil, fmt.Errorf("failed to get currency %s: %w", figi, err)
	}
	return inst, nil
}

func (s *InstrumentService) Shares(ctx context.Context, creds domain.Credentials, page dto.ListParams) ([]domain.Instrument, string, error) {
	items, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) ([]domain.Instrument, error) {
		return c.Shares(ctx)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list shares")
		return nil, "", fmt.Errorf("failed to list shares: %w", err)
	}
	return paginate(items, page)
}

func (s *InstrumentService) ShareBy(ctx context.Context, creds domain.Credentials, ticker, classCode string) (*domain.Instrument, error) {
	inst, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (*domain.Instrument, error) {
		return c.ShareBy(ctx, domain.InstrumentIDTicker, classCode, ticker)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get share", slog.String("ticker", ticker), slog.String("class_code", classCode))
		return nil, fmt.Errorf("failed to get share %s: %w", ticker, err)
	}
	return inst, nil
}

// InstrumentBy defaults idType to figi. A ticker lookup needs a class code.
func (s *InstrumentService) InstrumentBy(ctx context.Context, creds domain.Credentials, idType, classCode, id string) (*domain.Instrument, error) {
	var upstreamType domain.InstrumentIDType
	switch idType {
	case "", "figi":
		upstreamType = domain.InstrumentIDFigi
	case "ticker":
		if classCode == "" {
			return nil, fmt.Errorf("%w: class_code is required for ticker lookups", apperrors.ErrValidation)
		}
		upstreamType = domain.InstrumentIDTicker
	case "uid":
		upstreamType = domain.InstrumentIDUID
	default:
		return nil, fmt.Errorf("%w: unknown id type %q", apperrors.ErrValidation, idType)
	}

	inst, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) (*domain.Instrument, error) {
		return c.InstrumentBy(ctx, upstreamType, classCode, id)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get instrument", slog.String("id", id), slog.String("id_type", idType))
		return nil, fmt.Errorf("failed to get instrument %s: %w", id, err)
	}
	return inst, nil
}

// Dividends returns dividends declared within the last year.
func (s *InstrumentService) Dividends(ctx context.Context, creds domain.Credentials, figi string) ([]domain.Dividend, error) {
	window := domain.LastDays(s.now(), dividendLookback)
	divs, err := callClient(ctx, s.Dialer, creds, func(c broker.Client) ([]domain.Dividend, error) {
		return c.Dividends(ctx, figi, window)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get dividends", slog.String("figi", figi))
		return nil, fmt.Errorf("failed to get dividends for %s: %w", figi, err)
	}
	return divs, nil
}

func paginate(items []domain.Instrument, page dto.ListParams) ([]domain.Instrument, string, error) {
	out, next, err := pagination.Page(items, page.Limit, page.NextToken)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return out, next, nil
}
