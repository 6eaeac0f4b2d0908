package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	portssvc "github.com/SscSPs/invest_gateway/internal/core/ports/services"
	"github.com/SscSPs/invest_gateway/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock InstrumentService ---
type MockInstrumentService struct {
	mock.Mock
}

func (m *MockInstrumentService) TradingSchedules(ctx context.Context, creds domain.Credentials, exchange string) ([]domain.TradingSchedule, error) {
	args := m.Called(ctx, creds, exchange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TradingSchedule), args.Error(1)
}
func (m *MockInstrumentService) Currencies(ctx context.Context, creds domain.Credentials, page dto.ListParams) ([]domain.Instrument, string, error) {
	args := m.Called(ctx, creds, page)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.Instrument), args.String(1), args.Error(2)
}
func (m *MockInstrumentService) CurrencyBy(ctx context.Context, creds domain.Credentials, figi string) (*domain.Instrument, error) {
	args := m.Called(ctx, creds, figi)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Instrument), args.Error(1)
}
func (m *MockInstrumentService) Shares(ctx context.Context, creds domain.Credentials, page dto.ListParams) ([]domain.Instrument, string, error) {
	args := m.Called(ctx, creds, page)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.Instrument), args.String(1), args.Error(2)
}
func (m *MockInstrumentService) ShareBy(ctx context.Context, creds domain.Credentials, ticker, classCode string) (*domain.Instrument, error) {
	args := m.Called(ctx, creds, ticker, classCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Instrument), args.Error(1)
}
func (m *MockInstrumentService) InstrumentBy(ctx context.Context, creds domain.Credentials, idType, classCode, id string) (*domain.Instrument, error) {
	args := m.Called(ctx, creds, idType, classCode, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Instrument), args.Error(1)
}
func (m *MockInstrumentService) Dividends(ctx context.Context, creds domain.Credentials, figi string) ([]domain.Dividend, error) {
	args := m.Called(ctx, creds, figi)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dividend), args.Error(1)
}

var _ portssvc.InstrumentSvcFacade = (*MockInstrumentService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Accounts(ctx context.Context, creds domain.Credentials) ([]domain.Account, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockUserService) MarginAttributes(ctx context.Context, creds domain.Credentials) (*domain.MarginAttributes, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarginAttributes), args.Error(1)
}
func (m *MockUserService) UserTariff(ctx context.Context, creds domain.Credentials) (*domain.UserTariff, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTariff), args.Error(1)
}
func (m *MockUserService) UserInfo(ctx context.Context, creds domain.Credentials) (*domain.UserInfo, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserInfo), args.Error(1)
}

var _ portssvc.UserSvc = (*MockUserService)(nil)

// --- Mock OperationService ---
type MockOperationService struct {
	mock.Mock
}

func (m *MockOperationService) Operations(ctx context.Context, creds domain.Credentials) ([]domain.Operation, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operation), args.Error(1)
}
func (m *MockOperationService) Portfolio(ctx context.Context, creds domain.Credentials) (*domain.Portfolio, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}
func (m *MockOperationService) Positions(ctx context.Context, creds domain.Credentials) (*domain.Positions, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Positions), args.Error(1)
}
func (m *MockOperationService) PositionInfo(ctx context.Context, creds domain.Credentials, figi string) (*domain.SecurityPosition, error) {
	args := m.Called(ctx, creds, figi)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SecurityPosition), args.Error(1)
}
func (m *MockOperationService) WithdrawLimits(ctx context.Context, creds domain.Credentials) (*domain.WithdrawLimits, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithdrawLimits), args.Error(1)
}
func (m *MockOperationService) BrokerReport(ctx context.Context, creds domain.Credentials) (string, error) {
	args := m.Called(ctx, creds)
	return args.String(0), args.Error(1)
}

var _ portssvc.OperationSvc = (*MockOperationService)(nil)

// --- Mock MarketDataService ---
type MockMarketDataService struct {
	mock.Mock
}

func (m *MockMarketDataService) LastPrices(ctx context.Context, creds domain.Credentials, figis []string) ([]domain.LastPrice, error) {
	args := m.Called(ctx, creds, figis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LastPrice), args.Error(1)
}
func (m *MockMarketDataService) RecentTrades(ctx context.Context, creds domain.Credentials, figi string) ([]domain.Trade, error) {
	args := m.Called(ctx, creds, figi)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trade), args.Error(1)
}
func (m *MockMarketDataService) OrderBook(ctx context.Context, creds domain.Credentials, figi string, depth int32) (*domain.OrderBook, error) {
	args := m.Called(ctx, creds, figi, depth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderBook), args.Error(1)
}
func (m *MockMarketDataService) Candles(ctx context.Context, creds domain.Credentials, figi, interval string, from, to *time.Time) ([]domain.Candle, error) {
	args := m.Called(ctx, creds, figi, interval, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candle), args.Error(1)
}

var _ portssvc.MarketDataSvc = (*MockMarketDataService)(nil)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PostOrder(ctx context.Context, creds domain.Credentials, req dto.PostOrderRequest) (*domain.OrderReport, error) {
	args := m.Called(ctx, creds, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderReport), args.Error(1)
}
func (m *MockOrderService) ReplaceOrder(ctx context.Context, creds domain.Credentials, req dto.ReplaceOrderRequest) (*domain.OrderReport, error) {
	args := m.Called(ctx, creds, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderReport), args.Error(1)
}
func (m *MockOrderService) CancelOrder(ctx context.Context, creds domain.Credentials, orderID string) (time.Time, error) {
	args := m.Called(ctx, creds, orderID)
	return args.Get(0).(time.Time), args.Error(1)
}
func (m *MockOrderService) OrderState(ctx context.Context, creds domain.Credentials, orderID string) (*domain.OrderState, error) {
	args := m.Called(ctx, creds, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderState), args.Error(1)
}
func (m *MockOrderService) Orders(ctx context.Context, creds domain.Credentials) ([]domain.OrderState, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderState), args.Error(1)
}
func (m *MockOrderService) PostStopOrder(ctx context.Context, creds domain.Credentials, req dto.PostStopOrderRequest) (string, error) {
	args := m.Called(ctx, creds, req)
	return args.String(0), args.Error(1)
}
func (m *MockOrderService) StopOrders(ctx context.Context, creds domain.Credentials) ([]domain.StopOrder, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StopOrder), args.Error(1)
}
func (m *MockOrderService) CancelStopOrder(ctx context.Context, creds domain.Credentials, stopOrderID string) (time.Time, error) {
	args := m.Called(ctx, creds, stopOrderID)
	return args.Get(0).(time.Time), args.Error(1)
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)
