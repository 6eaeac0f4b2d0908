package services

import (
	"context"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/SscSPs/invest_gateway/internal/dto"
)

// InstrumentReaderSvc defines read operations for instrument reference data.
type InstrumentReaderSvc interface {
	// TradingSchedules returns the exchange schedule for the coming week.
	TradingSchedules(ctx context.Context, creds domain.Credentials, exchange string) ([]domain.TradingSchedule, error)

	// Currencies lists tradable currencies. The returned token is empty on the last page.
	Currencies(ctx context.Context, creds domain.Credentials, page dto.ListParams) ([]domain.Instrument, string, error)

	// CurrencyBy looks a currency up by FIGI.
	CurrencyBy(ctx context.Context, creds domain.Credentials, figi string) (*domain.Instrument, error)

	// Shares lists tradable shares. The returned token is empty on the last page.
	Shares(ctx context.Context, creds domain.Credentials, page dto.ListParams) ([]domain.Instrument, string, error)

	// ShareBy looks a share up by ticker within a class code.
	ShareBy(ctx context.Context, creds domain.Credentials, ticker, classCode string) (*domain.Instrument, error)

	// InstrumentBy looks any instrument up. idType is one of figi, ticker or uid.
	InstrumentBy(ctx context.Context, creds domain.Credentials, idType, classCode, id string) (*domain.Instrument, error)
}

// DividendSvc defines dividend lookups.
type DividendSvc interface {
	// Dividends returns dividends of a share declared within the last year.
	Dividends(ctx context.Context, creds domain.Credentials, figi string) ([]domain.Dividend, error)
}

// InstrumentSvcFacade combines all instrument-related service interfaces
type InstrumentSvcFacade interface {
	InstrumentReaderSvc
	DividendSvc
}
