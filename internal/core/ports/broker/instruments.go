package broker

import (
	"context"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

// InstrumentsAPI covers instrument reference data and schedules.
type InstrumentsAPI interface {
	// TradingSchedules returns the schedule of an exchange within the window.
	TradingSchedules(ctx context.Context, exchange string, window domain.TimeRange) ([]domain.TradingSchedule, error)

	// Currencies lists tradable currencies.
	Currencies(ctx context.Context) ([]domain.Instrument, error)

	// CurrencyBy looks a currency up by identifier.
	CurrencyBy(ctx context.Context, idType domain.InstrumentIDType, id string) (*domain.Instrument, error)

	// Shares lists tradable shares.
	Shares(ctx context.Context) ([]domain.Instrument, error)

	// ShareBy looks a share up by identifier within a class code.
	ShareBy(ctx context.Context, idType domain.InstrumentIDType, classCode, id string) (*domain.Instrument, error)

	// InstrumentBy looks any instrument up by identifier.
	InstrumentBy(ctx context.Context, idType domain.InstrumentIDType, classCode, id string) (*domain.Instrument, error)

	// Dividends returns dividends of a share declared within the window.
	Dividends(ctx context.Context, figi string, window domain.TimeRange) ([]domain.Dividend, error)
}
