package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/SscSPs/invest_gateway/internal/core/ports/broker"
	"github.com/stretchr/testify/mock"
)

// MockDialer is a mock type for the broker.Dialer interface
type MockDialer struct {
	mock.Mock
}

func (m *MockDialer) Dial(ctx context.Context, token string) (broker.Client, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(broker.Client), args.Error(1)
}

// MockClient is a mock type for the broker.Client interface
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

// --- InstrumentsAPI ---

func (m *MockClient) TradingSchedules(ctx context.Context, exchange string, window domain.TimeRange) ([]domain.TradingSchedule, error) {
	args := m.Called(ctx, exchange, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TradingSchedule), args.Error(1)
}

func (m *MockClient) Currencies(ctx context.Context) ([]domain.Instrument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Instrument), args.Error(1)
}

func (m *MockClient) CurrencyBy(ctx context.Context, idType domain.InstrumentIDType, id string) (*domain.Instrument, error) {
	args := m.Called(ctx, idType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Instrument), args.Error(1)
}

func (m *MockClient) Shares(ctx context.Context) ([]domain.Instrument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Instrument), args.Error(1)
}

func (m *MockClient) ShareBy(ctx context.Context, idType domain.InstrumentIDType, classCode, id string) (*domain.Instrument, error) {
	args := m.Called(ctx, idType, classCode, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Instrument), args.Error(1)
}

func (m *MockClient) InstrumentBy(ctx context.Context, idType domain.InstrumentIDType, classCode, id string) (*domain.Instrument, error) {
	args := m.Called(ctx, idType, classCode, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Instrument), args.Error(1)
}

func (m *MockClient) Dividends(ctx context.Context, figi string, window domain.TimeRange) ([]domain.Dividend, error) {
	args := m.Called(ctx, figi, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dividend), args.Error(1)
}

// --- UsersAPI ---

func (m *MockClient) Accounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockClient) MarginAttributes(ctx context.Context, accountID string) (*domain.MarginAttributes, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarginAttributes), args.Error(1)
}

func (m *MockClient) UserTariff(ctx context.Context) (*domain.UserTariff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTariff), args.Error(1)
}

func (m *MockClient) UserInfo(ctx context.Context) (*domain.UserInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserInfo), args.Error(1)
}

// --- OperationsAPI ---

func (m *MockClient) Operations(ctx context.Context, accountID string, window domain.TimeRange) ([]domain.Operation, error) {
	args := m.Called(ctx, accountID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operation), args.Error(1)
}

func (m *MockClient) Portfolio(ctx context.Context, accountID string) (*domain.Portfolio, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

func (m *MockClient) Positions(ctx context.Context, accountID string) (*domain.Positions, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Positions), args.Error(1)
}

func (m *MockClient) WithdrawLimits(ctx context.Context, accountID string) (*domain.WithdrawLimits, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithdrawLimits), args.Error(1)
}

func (m *MockClient) BrokerReport(ctx context.Context, accountID string, window domain.TimeRange) (string, error) {
	args := m.Called(ctx, accountID, window)
	return args.String(0), args.Error(1)
}

// --- MarketDataAPI ---

func (m *MockClient) LastPrices(ctx context.Context, figis []string) ([]domain.LastPrice, error) {
	args := m.Called(ctx, figis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LastPrice), args.Error(1)
}

func (m *MockClient) LastTrades(ctx context.Context, figi string, window domain.TimeRange) ([]domain.Trade, error) {
	args := m.Called(ctx, figi, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trade), args.Error(1)
}

func (m *MockClient) OrderBook(ctx context.Context, figi string, depth int32) (*domain.OrderBook, error) {
	args := m.Called(ctx, figi, depth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderBook), args.Error(1)
}

func (m *MockClient) Candles(ctx context.Context, figi string, interval string, window domain.TimeRange) ([]domain.Candle, error) {
	args := m.Called(ctx, figi, interval, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candle), args.Error(1)
}

// --- OrdersAPI ---

func (m *MockClient) PostOrder(ctx context.Context, accountID string, req domain.OrderRequest) (*domain.OrderReport, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderReport), args.Error(1)
}

func (m *MockClient) ReplaceOrder(ctx context.Context, accountID string, req domain.ReplaceOrderRequest) (*domain.OrderReport, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderReport), args.Error(1)
}

func (m *MockClient) CancelOrder(ctx context.Context, accountID, orderID string) (time.Time, error) {
	args := m.Called(ctx, accountID, orderID)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockClient) OrderState(ctx context.Context, accountID, orderID string) (*domain.OrderState, error) {
	args := m.Called(ctx, accountID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderState), args.Error(1)
}

func (m *MockClient) Orders(ctx context.Context, accountID string) ([]domain.OrderState, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderState), args.Error(1)
}

// --- StopOrdersAPI ---

func (m *MockClient) PostStopOrder(ctx context.Context, accountID string, req domain.StopOrderRequest) (string, error) {
	args := m.Called(ctx, accountID, req)
	return args.String(0), args.Error(1)
}

func (m *MockClient) StopOrders(ctx context.Context, accountID string) ([]domain.StopOrder, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StopOrder), args.Error(1)
}

func (m *MockClient) CancelStopOrder(ctx context.Context, accountID, stopOrderID string) (time.Time, error) {
	args := m.Called(ctx, accountID, stopOrderID)
	return args.Get(0).(time.Time), args.Error(1)
}

var _ broker.Client = (*MockClient)(nil)
