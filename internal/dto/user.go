package dto

import (
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse describes a brokerage account.
type AccountResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	AccessLevel string     `json:"access_level"`
	OpenedDate  time.Time  `json:"opened_date"`
	ClosedDate  *time.Time `json:"closed_date,omitempty"`
}

// MarginAttributesResponse describes the margin state of an account.
type MarginAttributesResponse struct {
	LiquidPortfolio       decimal.Decimal `json:"liquid_portfolio"`
	StartingMargin        decimal.Decimal `json:"starting_margin"`
	MinimalMargin         decimal.Decimal `json:"minimal_margin"`
	FundsSufficiencyLevel decimal.Decimal `json:"funds_sufficiency_level"`
	AmountOfMissingFunds  decimal.Decimal `json:"amount_of_missing_funds"`
	CorrectedMargin       decimal.Decimal `json:"corrected_margin"`
	Currency              string          `json:"currency"`
}

// UserTariffResponse lists the request limits of the token.
type UserTariffResponse struct {
	LimitPerMinute []int32 `json:"limit_per_minute"`
	LimitStreams   []int32 `json:"limit_streams"`
}

// UserInfoResponse describes the token owner.
type UserInfoResponse struct {
	PremStatus           bool     `json:"prem_status"`
	QualStatus           bool     `json:"qual_status"`
	QualifiedForWorkWith []string `json:"qualified_for_work_with"`
	Tariff               string   `json:"tariff"`
}

// ToAccountResponse converts a domain.Account, labelling its enum fields.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          acc.ID,
		Name:        acc.Name,
		Type:        domain.AccountTypeLabels.Label(acc.Type),
		Status:      domain.AccountStatusLabels.Label(acc.Status),
		AccessLevel: domain.AccessLevelLabels.Label(acc.AccessLevel),
		OpenedDate:  acc.OpenedDate,
		ClosedDate:  acc.ClosedDate,
	}
}

// ToListAccountResponse converts a slice of accounts.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ToMarginAttributesResponse converts margin attributes. Missing funds and
// corrected margin can be negative, so every amount keeps its sign.
func ToMarginAttributesResponse(m *domain.MarginAttributes) MarginAttributesResponse {
	return MarginAttributesResponse{
		LiquidPortfolio:       m.LiquidPortfolio.Signed(),
		StartingMargin:        m.StartingMargin.Signed(),
		MinimalMargin:         m.MinimalMargin.Signed(),
		FundsSufficiencyLevel: m.FundsSufficiencyLevel.Signed(),
		AmountOfMissingFunds:  m.AmountOfMissingFunds.Signed(),
		CorrectedMargin:       m.CorrectedMargin.Signed(),
		Currency:              m.LiquidPortfolio.Currency,
	}
}

// ToUserTariffResponse flattens tariff limits.
func ToUserTariffResponse(t *domain.UserTariff) UserTariffResponse {
	res := UserTariffResponse{
		LimitPerMinute: make([]int32, len(t.UnaryLimits)),
		LimitStreams:   make([]int32, len(t.StreamLimits)),
	}
	for i, l := range t.UnaryLimits {
		res.LimitPerMinute[i] = l.LimitPerMinute
	}
	for i, l := range t.StreamLimits {
		res.LimitStreams[i] = l.Limit
	}
	return res
}

// ToUserInfoResponse converts a domain.UserInfo.
func ToUserInfoResponse(info *domain.UserInfo) UserInfoResponse {
	qualified := info.QualifiedForWorkWith
	if qualified == nil {
		qualified = []string{}
	}
	return UserInfoResponse{
		PremStatus:           info.PremStatus,
		QualStatus:           info.QualStatus,
		QualifiedForWorkWith: qualified,
		Tariff:               info.Tariff,
	}
}
