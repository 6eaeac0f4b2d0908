package invest

import (
	"context"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

const usersService = "UsersService"

func (s *session) Accounts(ctx context.Context) ([]domain.Account, error) {
	var resp accountsResponse
	if err := s.call(ctx, usersService, "GetAccounts", nil, &resp); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, len(resp.Accounts))
	for i, a := range resp.Accounts {
		accounts[i] = domain.Account{
			ID:          a.ID,
			Name:        a.Name,
			Type:        a.Type,
			Status:      a.Status,
			AccessLevel: a.AccessLevel,
			OpenedDate:  a.OpenedDate,
			ClosedDate:  a.ClosedDate,
		}
	}
	return accounts, nil
}

func (s *session) MarginAttributes(ctx context.Context, accountID string) (*domain.MarginAttributes, error) {
	var resp marginAttributesResponse
	if err := s.call(ctx, usersService, "GetMarginAttributes", accountRequest{AccountID: accountID}, &resp); err != nil {
		return nil, err
	}
	return &domain.MarginAttributes{
		LiquidPortfolio:       resp.LiquidPortfolio.toDomain(),
		StartingMargin:        resp.StartingMargin.toDomain(),
		MinimalMargin:         resp.MinimalMargin.toDomain(),
		FundsSufficiencyLevel: resp.FundsSufficiencyLevel.toDomain(),
		AmountOfMissingFunds:  resp.AmountOfMissingFunds.toDomain(),
		CorrectedMargin:       resp.CorrectedMargin.toDomain(),
	}, nil
}

func (s *session) UserTariff(ctx context.Context) (*domain.UserTariff, error) {
	var resp userTariffResponse
	if err := s.call(ctx, usersService, "GetUserTariff", nil, &resp); err != nil {
		return nil, err
	}

	tariff := &domain.UserTariff{
		UnaryLimits:  make([]domain.UnaryLimit, len(resp.UnaryLimits)),
		StreamLimits: make([]domain.StreamLimit, len(resp.StreamLimits)),
	}
	for i, l := range resp.UnaryLimits {
		tariff.UnaryLimits[i] = domain.UnaryLimit{LimitPerMinute: l.LimitPerMinute, Methods: l.Methods}
	}
	for i, l := range resp.StreamLimits {
		tariff.StreamLimits[i] = domain.StreamLimit{Limit: l.Limit, Streams: l.Streams}
	}
	return tariff, nil
}

func (s *session) UserInfo(ctx context.Context) (*domain.UserInfo, error) {
	var resp userInfoResponse
	if err := s.call(ctx, usersService, "GetInfo", nil, &resp); err != nil {
		return nil, err
	}
	return &domain.UserInfo{
		PremStatus:           resp.PremStatus,
		QualStatus:           resp.QualStatus,
		QualifiedForWorkWith: resp.QualifiedForWorkWith,
		Tariff:               resp.Tariff,
	}, nil
}
