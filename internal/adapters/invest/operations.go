package invest

import (
	"context"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
)

const operationsService = "OperationsService"

func (s *session) Operations(ctx context.Context, accountID string, window domain.TimeRange) ([]domain.Operation, error) {
	var resp operationsResponse
	req := operationsRequest{AccountID: accountID, From: window.From, To: window.To}
	if err := s.call(ctx, operationsService, "GetOperations", req, &resp); err != nil {
		return nil, err
	}

	ops := make([]domain.Operation, len(resp.Operations))
	for i, op := range resp.Operations {
		ops[i] = domain.Operation{
			ID:             op.ID,
			Currency:       op.Currency,
			Payment:        op.Payment.toDomain(),
			Price:          op.Price.toDomain(),
			State:          op.State,
			Quantity:       int64(op.Quantity),
			Figi:           op.Figi,
			InstrumentType: op.InstrumentType,
			Date:           op.Date,
			Type:           op.Type,
			OperationType:  op.OperationType,
		}
	}
	return ops, nil
}

func (s *session) Portfolio(ctx context.Context, accountID string) (*domain.Portfolio, error) {
	var resp portfolioResponse
	if err := s.call(ctx, operationsService, "GetPortfolio", accountRequest{AccountID: accountID}, &resp); err != nil {
		return nil, err
	}
	return &domain.Portfolio{
		TotalAmountShares:     resp.TotalAmountShares.toDomain(),
		TotalAmountBonds:      resp.TotalAmountBonds.toDomain(),
		TotalAmountEtf:        resp.TotalAmountEtf.toDomain(),
		TotalAmountCurrencies: resp.TotalAmountCurrencies.toDomain(),
		TotalAmountFutures:    resp.TotalAmountFutures.toDomain(),
		ExpectedYield:         resp.ExpectedYield.toDomain(),
	}, nil
}

func (s *session) Positions(ctx context.Context, accountID string) (*domain.Positions, error) {
	var resp positionsResponse
	if err := s.call(ctx, operationsService, "GetPositions", accountRequest{AccountID: accountID}, &resp); err != nil {
		return nil, err
	}

	positions := &domain.Positions{
		Money:      toMoneyValues(resp.Money),
		Blocked:    toMoneyValues(resp.Blocked),
		Securities: make([]domain.SecurityPosition, len(resp.Securities)),
	}
	for i, sec := range resp.Securities {
		positions.Securities[i] = domain.SecurityPosition{
			Figi:           sec.Figi,
			InstrumentType: sec.InstrumentType,
			Blocked:        int64(sec.Blocked),
			Balance:        int64(sec.Balance),
		}
	}
	return positions, nil
}

func (s *session) WithdrawLimits(ctx context.Context, accountID string) (*domain.WithdrawLimits, error) {
	var resp withdrawLimitsResponse
	if err := s.call(ctx, operationsService, "GetWithdrawLimits", accountRequest{AccountID: accountID}, &resp); err != nil {
		return nil, err
	}
	return &domain.WithdrawLimits{
		Money:            toMoneyValues(resp.Money),
		Blocked:          toMoneyValues(resp.Blocked),
		BlockedGuarantee: toMoneyValues(resp.BlockedGuarantee),
	}, nil
}

func (s *session) BrokerReport(ctx context.Context, accountID string, window domain.TimeRange) (string, error) {
	var resp brokerReportResponse
	req := brokerReportRequest{
		GenerateBrokerReportRequest: operationsRequest{AccountID: accountID, From: window.From, To: window.To},
	}
	if err := s.call(ctx, operationsService, "GetBrokerReport", req, &resp); err != nil {
		return "", err
	}
	return resp.GenerateBrokerReportResponse.TaskID, nil
}
