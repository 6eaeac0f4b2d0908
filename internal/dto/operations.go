package dto

import (
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountOperationResponse is one operation of an account.
type AccountOperationResponse struct {
	ID             string          `json:"id"`
	Currency       string          `json:"currency"`
	Date           time.Time       `json:"date"`
	InstrumentType string          `json:"instrument_type"`
	Figi           string          `json:"figi,omitempty"`
	Payment        decimal.Decimal `json:"payment"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int64           `json:"quantity"`
	Type           string          `json:"type"`
	State          string          `json:"state"`
}

// AccountPortfolioResponse summarises an account's valuation.
type AccountPortfolioResponse struct {
	TotalAmountShares     decimal.Decimal `json:"total_amount_shares"`
	TotalAmountBonds      decimal.Decimal `json:"total_amount_bonds"`
	TotalAmountEtf        decimal.Decimal `json:"total_amount_etf"`
	TotalAmountCurrencies decimal.Decimal `json:"total_amount_currencies"`
	TotalAmountFutures    decimal.Decimal `json:"total_amount_futures"`
	ExpectedYield         decimal.Decimal `json:"expected_yield"`
	Currency              string          `json:"currency"`
}

// PositionsSecurityResponse is a security holding.
type PositionsSecurityResponse struct {
	Figi            string `json:"figi"`
	InstrumentType  string `json:"instrument_type"`
	BlockedPosition int64  `json:"blocked_position"`
	Balance         int64  `json:"balance"`
}

// AccountPositionsResponse lists money and securities held on an account.
type AccountPositionsResponse struct {
	Money      []MoneyAmount               `json:"money"`
	Blocked    []MoneyAmount               `json:"blocked"`
	Securities []PositionsSecurityResponse `json:"securities"`
}

// WithdrawLimitsResponse lists money available for withdrawal.
type WithdrawLimitsResponse struct {
	Money            []MoneyAmount `json:"money"`
	Blocked          []MoneyAmount `json:"blocked"`
	BlockedGuarantee []MoneyAmount `json:"blocked_guarantee"`
}

// BrokerReportResponse carries the id of the report generation task.
type BrokerReportResponse struct {
	TaskID string `json:"task_id"`
}

// ToAccountOperationResponses converts operations. The payment is a net
// amount and keeps its sign; the price is a display price.
func ToAccountOperationResponses(ops []domain.Operation) []AccountOperationResponse {
	res := make([]AccountOperationResponse, len(ops))
	for i, op := range ops {
		res[i] = AccountOperationResponse{
			ID:             op.ID,
			Currency:       op.Currency,
			Date:           op.Date,
			InstrumentType: op.InstrumentType,
			Figi:           op.Figi,
			Payment:        op.Payment.Signed(),
			Price:          op.Price.Abs(),
			Quantity:       op.Quantity,
			Type:           op.Type,
			State:          op.State,
		}
	}
	return res
}

// ToAccountPortfolioResponse converts a portfolio. Totals are magnitudes,
// the expected yield keeps its sign.
func ToAccountPortfolioResponse(p *domain.Portfolio) AccountPortfolioResponse {
	return AccountPortfolioResponse{
		TotalAmountShares:     p.TotalAmountShares.Abs(),
		TotalAmountBonds:      p.TotalAmountBonds.Abs(),
		TotalAmountEtf:        p.TotalAmountEtf.Abs(),
		TotalAmountCurrencies: p.TotalAmountCurrencies.Abs(),
		TotalAmountFutures:    p.TotalAmountFutures.Abs(),
		ExpectedYield:         p.ExpectedYield.Signed(),
		Currency:              p.TotalAmountShares.Currency,
	}
}

// ToAccountPositionsResponse converts positions.
func ToAccountPositionsResponse(p *domain.Positions) AccountPositionsResponse {
	res := AccountPositionsResponse{
		Money:      toAbsAmounts(p.Money),
		Blocked:    toAbsAmounts(p.Blocked),
		Securities: make([]PositionsSecurityResponse, len(p.Securities)),
	}
	for i := range p.Securities {
		res.Securities[i] = ToPositionsSecurityResponse(&p.Securities[i])
	}
	return res
}

// ToPositionsSecurityResponse converts one security holding.
func ToPositionsSecurityResponse(sec *domain.SecurityPosition) PositionsSecurityResponse {
	return PositionsSecurityResponse{
		Figi:            sec.Figi,
		InstrumentType:  sec.InstrumentType,
		BlockedPosition: sec.Blocked,
		Balance:         sec.Balance,
	}
}

// ToWithdrawLimitsResponse converts withdraw limits.
func ToWithdrawLimitsResponse(w *domain.WithdrawLimits) WithdrawLimitsResponse {
	return WithdrawLimitsResponse{
		Money:            toAbsAmounts(w.Money),
		Blocked:          toAbsAmounts(w.Blocked),
		BlockedGuarantee: toAbsAmounts(w.BlockedGuarantee),
	}
}
