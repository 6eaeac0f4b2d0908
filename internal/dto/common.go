package dto

import (
	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyAmount is a decoded amount with its currency.
type MoneyAmount struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// ListParams carries optional paging over long upstream lists.
type ListParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=1000"`
	NextToken string `form:"next_token"`
}

// toAbsAmounts decodes every value with the unsigned policy.
func toAbsAmounts(values []domain.MoneyValue) []MoneyAmount {
	out := make([]MoneyAmount, len(values))
	for i, v := range values {
		out[i] = MoneyAmount{Currency: v.Currency, Amount: v.Abs()}
	}
	return out
}
