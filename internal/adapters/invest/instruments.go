package invest

import (
	"context"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

const (
	instrumentsService = "InstrumentsService"

	// instrumentStatusBase limits listings to instruments tradable through the API.
	instrumentStatusBase = "INSTRUMENT_STATUS_BASE"
)

func (s *session) TradingSchedules(ctx context.Context, exchange string, window domain.TimeRange) ([]domain.TradingSchedule, error) {
	var resp tradingSchedulesResponse
	req := tradingSchedulesRequest{Exchange: exchange, From: window.From, To: window.To}
	if err := s.call(ctx, instrumentsService, "TradingSchedules", req, &resp); err != nil {
		return nil, err
	}

	schedules := make([]domain.TradingSchedule, 0, len(resp.Exchanges))
	for _, ex := range resp.Exchanges {
		sch := domain.TradingSchedule{Exchange: ex.Exchange, Days: make([]domain.TradingDay, 0, len(ex.Days))}
		for _, day := range ex.Days {
			sch.Days = append(sch.Days, domain.TradingDay{
				Date:         day.Date,
				IsTradingDay: day.IsTradingDay,
				StartTime:    day.StartTime,
				EndTime:      day.EndTime,
			})
		}
		schedules = append(schedules, sch)
	}
	return schedules, nil
}

func (s *session) Currencies(ctx context.Context) ([]domain.Instrument, error) {
	var resp instrumentsResponse
	if err := s.call(ctx, instrumentsService, "Currencies", instrumentsRequest{InstrumentStatus: instrumentStatusBase}, &resp); err != nil {
		return nil, err
	}
	return toInstruments(resp.Instruments), nil
}

func (s *session) CurrencyBy(ctx context.Context, idType domain.InstrumentIDType, id string) (*domain.Instrument, error) {
	return s.instrumentBy(ctx, "CurrencyBy", idType, "", id)
}

func (s *session) Shares(ctx context.Context) ([]domain.Instrument, error) {
	var resp instrumentsResponse
	if err := s.call(ctx, instrumentsService, "Shares", instrumentsRequest{InstrumentStatus: instrumentStatusBase}, &resp); err != nil {
		return nil, err
	}
	return toInstruments(resp.Instruments), nil
}

func (s *session) ShareBy(ctx context.Context, idType domain.InstrumentIDType, classCode, id string) (*domain.Instrument, error) {
	return s.instrumentBy(ctx, "ShareBy", idType, classCode, id)
}

func (s *session) InstrumentBy(ctx context.Context, idType domain.InstrumentIDType, classCode, id string) (*domain.Instrument, error) {
	return s.instrumentBy(ctx, "GetInstrumentBy", idType, classCode, id)
}

func (s *session) instrumentBy(ctx context.Context, method string, idType domain.InstrumentIDType, classCode, id string) (*domain.Instrument, error) {
	var resp instrumentResponse
	req := instrumentRequest{IDType: string(idType), ClassCode: classCode, ID: id}
	if err := s.call(ctx, instrumentsService, method, req, &resp); err != nil {
		return nil, err
	}
	inst := resp.Instrument.toDomain()
	return &inst, nil
}

func (s *session) Dividends(ctx context.Context, figi string, window domain.TimeRange) ([]domain.Dividend, error) {
	var resp dividendsResponse
	req := dividendsRequest{Figi: figi, From: window.From, To: window.To}
	if err := s.call(ctx, instrumentsService, "GetDividends", req, &resp); err != nil {
		return nil, err
	}

	dividends := make([]domain.Dividend, len(resp.Dividends))
	for i, d := range resp.Dividends {
		dividends[i] = domain.Dividend{
			DividendNet:  d.DividendNet.toDomain(),
			ClosePrice:   d.ClosePrice.toDomain(),
			YieldValue:   d.YieldValue.toDomain(),
			DeclaredDate: d.DeclaredDate,
			PaymentDate:  d.PaymentDate,
			RecordDate:   d.RecordDate,
			DividendType: d.DividendType,
		}
	}
	return dividends, nil
}
