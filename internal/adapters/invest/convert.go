package invest

import (
	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

func (q quotation) toDomain() domain.ScaledMoney {
	return domain.NewScaledMoney(int64(q.Units), q.Nano)
}

func (m moneyValue) toDomain() domain.MoneyValue {
	return domain.MoneyValue{
		Currency:    m.Currency,
		ScaledMoney: domain.NewScaledMoney(int64(m.Units), m.Nano),
	}
}

func toMoneyValues(in []moneyValue) []domain.MoneyValue {
	out := make([]domain.MoneyValue, len(in))
	for i, m := range in {
		out[i] = m.toDomain()
	}
	return out
}

func toQuotation(m *domain.ScaledMoney) *quotation {
	if m == nil {
		return nil
	}
	return &quotation{Units: int64String(m.Units), Nano: m.Nano}
}

func (i instrument) toDomain() domain.Instrument {
	return domain.Instrument{
		Figi:          i.Figi,
		Ticker:        i.Ticker,
		ClassCode:     i.ClassCode,
		UID:           i.UID,
		Name:          i.Name,
		Exchange:      i.Exchange,
		Currency:      i.Currency,
		CountryName:   i.CountryOfRiskName,
		Sector:        i.Sector,
		Lot:           i.Lot,
		BuyAvailable:  i.BuyAvailableFlag,
		SellAvailable: i.SellAvailableFlag,
	}
}

func toInstruments(in []instrument) []domain.Instrument {
	out := make([]domain.Instrument, len(in))
	for i, inst := range in {
		out[i] = inst.toDomain()
	}
	return out
}

func (r orderReport) toDomain() *domain.OrderReport {
	return &domain.OrderReport{
		OrderID:               r.OrderID,
		ExecutionReportStatus: r.ExecutionReportStatus,
		LotsRequested:         int64(r.LotsRequested),
		LotsExecuted:          int64(r.LotsExecuted),
		InitialOrderPrice:     r.InitialOrderPrice.toDomain(),
		ExecutedOrderPrice:    r.ExecutedOrderPrice.toDomain(),
		TotalOrderAmount:      r.TotalOrderAmount.toDomain(),
		InitialCommission:     r.InitialCommission.toDomain(),
		ExecutedCommission:    r.ExecutedCommission.toDomain(),
		AciValue:              r.AciValue.toDomain(),
		Figi:                  r.Figi,
		Direction:             r.Direction,
		InitialSecurityPrice:  r.InitialSecurityPrice.toDomain(),
		OrderType:             r.OrderType,
		Message:               r.Message,
		InitialOrderPricePt:   r.InitialOrderPricePt.toDomain(),
	}
}

func (s orderState) toDomain() domain.OrderState {
	return domain.OrderState{
		OrderID:               s.OrderID,
		ExecutionReportStatus: s.ExecutionReportStatus,
		LotsRequested:         int64(s.LotsRequested),
		LotsExecuted:          int64(s.LotsExecuted),
		InitialOrderPrice:     s.InitialOrderPrice.toDomain(),
		ExecutedOrderPrice:    s.ExecutedOrderPrice.toDomain(),
		TotalOrderAmount:      s.TotalOrderAmount.toDomain(),
		InitialCommission:     s.InitialCommission.toDomain(),
		ExecutedCommission:    s.ExecutedCommission.toDomain(),
		Figi:                  s.Figi,
		Direction:             s.Direction,
		InitialSecurityPrice:  s.InitialSecurityPrice.toDomain(),
		ServiceCommission:     s.ServiceCommission.toDomain(),
		Currency:              s.Currency,
		OrderType:             s.OrderType,
		OrderDate:             s.OrderDate,
	}
}

func toBookLevels(in []bookLevel) []domain.BookLevel {
	out := make([]domain.BookLevel, len(in))
	for i, l := range in {
		out[i] = domain.BookLevel{Price: l.Price.toDomain(), Quantity: int64(l.Quantity)}
	}
	return out
}
