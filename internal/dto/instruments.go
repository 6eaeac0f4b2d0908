package dto

import (
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TradingSchedulesQuery selects the exchange whose schedule is returned.
type TradingSchedulesQuery struct {
	Exchange string `form:"exch" binding:"required"`
}

// CurrencyByQuery looks a currency up by FIGI.
type CurrencyByQuery struct {
	ID string `form:"id" binding:"required,figi"`
}

// ShareByQuery looks a share up by ticker within a class code.
type ShareByQuery struct {
	Ticker    string `form:"ticker" binding:"required"`
	ClassCode string `form:"class_code" binding:"required"`
}

// FigiQuery carries a single instrument FIGI.
type FigiQuery struct {
	Figi string `form:"figi" binding:"required,figi"`
}

// InstrumentInfoQuery looks any instrument up by FIGI, ticker or UID.
type InstrumentInfoQuery struct {
	ID        string `form:"id" binding:"required"`
	IDType    string `form:"id_type" binding:"omitempty,oneof=figi ticker uid"`
	ClassCode string `form:"class_code" binding:"required_if=IDType ticker"`
}

// TradeScheduleResponse is one trading day of an exchange.
type TradeScheduleResponse struct {
	Exchange     string     `json:"exchange"`
	IsTradingDay bool       `json:"is_trading_day"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}

// AvailableCurrencyResponse describes a tradable currency.
type AvailableCurrencyResponse struct {
	Name          string `json:"name"`
	Figi          string `json:"figi"`
	Ticker        string `json:"ticker"`
	SellAvailable bool   `json:"sell_available"`
	BuyAvailable  bool   `json:"buy_available"`
}

// AvailableShareResponse describes a tradable instrument.
type AvailableShareResponse struct {
	Name          string `json:"name"`
	Ticker        string `json:"ticker"`
	Figi          string `json:"figi"`
	UID           string `json:"uid"`
	ClassCode     string `json:"class_code"`
	Exchange      string `json:"exchange"`
	Currency      string `json:"currency"`
	CountryName   string `json:"country_name"`
	Sector        string `json:"sector,omitempty"`
	Lot           int32  `json:"lot"`
	BuyAvailable  bool   `json:"buy_available"`
	SellAvailable bool   `json:"sell_available"`
}

// ShareDividendResponse describes one dividend payment.
type ShareDividendResponse struct {
	Figi               string          `json:"figi"`
	ClosePrice         decimal.Decimal `json:"close_price"`
	ClosePriceCurrency string          `json:"close_price_currency"`
	DividendNet        decimal.Decimal `json:"dividend_net"`
	DividendCurrency   string          `json:"dividend_currency"`
	YieldValue         decimal.Decimal `json:"yield_value"`
	DeclaredDate       time.Time       `json:"declared_date"`
	PaymentDate        *time.Time      `json:"payment_date,omitempty"`
}

// ToTradeScheduleResponses flattens schedules into one entry per day.
// Start and end times are only reported for trading days.
func ToTradeScheduleResponses(schedules []domain.TradingSchedule) []TradeScheduleResponse {
	res := make([]TradeScheduleResponse, 0)
	for _, sch := range schedules {
		for _, day := range sch.Days {
			entry := TradeScheduleResponse{Exchange: sch.Exchange, IsTradingDay: day.IsTradingDay}
			if day.IsTradingDay {
				entry.StartTime = day.StartTime
				entry.EndTime = day.EndTime
			}
			res = append(res, entry)
		}
	}
	return res
}

// ToAvailableCurrencyResponse converts a domain.Instrument to AvailableCurrencyResponse.
func ToAvailableCurrencyResponse(inst *domain.Instrument) AvailableCurrencyResponse {
	return AvailableCurrencyResponse{
		Name:          inst.Name,
		Figi:          inst.Figi,
		Ticker:        inst.Ticker,
		SellAvailable: inst.SellAvailable,
		BuyAvailable:  inst.BuyAvailable,
	}
}

// ToListAvailableCurrencyResponse converts a slice of instruments.
func ToListAvailableCurrencyResponse(insts []domain.Instrument) []AvailableCurrencyResponse {
	res := make([]AvailableCurrencyResponse, len(insts))
	for i := range insts {
		res[i] = ToAvailableCurrencyResponse(&insts[i])
	}
	return res
}

// ToAvailableShareResponse converts a domain.Instrument to AvailableShareResponse.
func ToAvailableShareResponse(inst *domain.Instrument) AvailableShareResponse {
	return AvailableShareResponse{
		Name:          inst.Name,
		Ticker:        inst.Ticker,
		Figi:          inst.Figi,
		UID:           inst.UID,
		ClassCode:     inst.ClassCode,
		Exchange:      inst.Exchange,
		Currency:      inst.Currency,
		CountryName:   inst.CountryName,
		Sector:        inst.Sector,
		Lot:           inst.Lot,
		BuyAvailable:  inst.BuyAvailable,
		SellAvailable: inst.SellAvailable,
	}
}

// ToListAvailableShareResponse converts a slice of instruments.
func ToListAvailableShareResponse(insts []domain.Instrument) []AvailableShareResponse {
	res := make([]AvailableShareResponse, len(insts))
	for i := range insts {
		res[i] = ToAvailableShareResponse(&insts[i])
	}
	return res
}

// ToShareDividendResponses converts dividends of figi.
// The close price is a display price; the net dividend keeps its sign.
func ToShareDividendResponses(figi string, dividends []domain.Dividend) []ShareDividendResponse {
	res := make([]ShareDividendResponse, len(dividends))
	for i, div := range dividends {
		res[i] = ShareDividendResponse{
			Figi:               figi,
			ClosePrice:         div.ClosePrice.Abs(),
			ClosePriceCurrency: div.ClosePrice.Currency,
			DividendNet:        div.DividendNet.Signed(),
			DividendCurrency:   div.DividendNet.Currency,
			YieldValue:         div.YieldValue.Signed(),
			DeclaredDate:       div.DeclaredDate,
			PaymentDate:        div.PaymentDate,
		}
	}
	return res
}
