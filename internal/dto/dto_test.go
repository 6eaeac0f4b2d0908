package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(currency string, units int64, nano int32) domain.MoneyValue {
	return domain.MoneyValue{Currency: currency, ScaledMoney: domain.NewScaledMoney(units, nano)}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestToTradeScheduleResponses_OnlyTradingDaysHaveTimes(t *testing.T) {
	start := time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)
	end := start.Add(9 * time.Hour)
	schedules := []domain.TradingSchedule{{
		Exchange: "MOEX",
		Days: []domain.TradingDay{
			{IsTradingDay: true, StartTime: &start, EndTime: &end},
			{IsTradingDay: false, StartTime: &start, EndTime: &end},
		},
	}}

	res := ToTradeScheduleResponses(schedules)
	require.Len(t, res, 2)
	assert.Equal(t, "MOEX", res[0].Exchange)
	assert.Equal(t, &start, res[0].StartTime)
	assert.Nil(t, res[1].StartTime)
	assert.Nil(t, res[1].EndTime)
}

func TestToTradeScheduleResponses_Empty(t *testing.T) {
	res := ToTradeScheduleResponses(nil)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestToShareDividendResponses_SignPolicy(t *testing.T) {
	divs := []domain.Dividend{{
		DividendNet: money("rub", -1, -500000000),
		ClosePrice:  money("rub", -250, -100000000),
		YieldValue:  domain.NewScaledMoney(0, -20000000),
	}}

	res := ToShareDividendResponses("BBG004730N88", divs)
	require.Len(t, res, 1)
	assert.Equal(t, "BBG004730N88", res[0].Figi)
	assert.True(t, dec("250.1").Equal(res[0].ClosePrice))
	assert.True(t, dec("-1.5").Equal(res[0].DividendNet))
	assert.True(t, dec("-0.02").Equal(res[0].YieldValue))
	assert.Equal(t, "rub", res[0].DividendCurrency)
}

func TestToAccountResponse_Labels(t *testing.T) {
	acc := domain.Account{
		ID:          "2000",
		Type:        "ACCOUNT_TYPE_TINKOFF",
		Status:      "ACCOUNT_STATUS_OPEN",
		AccessLevel: "ACCOUNT_ACCESS_LEVEL_READ_ONLY",
	}
	res := ToAccountResponse(&acc)
	assert.Equal(t, "Brokerage", res.Type)
	assert.Equal(t, "Open", res.Status)
	assert.Equal(t, "Read Only", res.AccessLevel)

	acc.AccessLevel = "ACCOUNT_ACCESS_LEVEL_SOMETHING_NEW"
	assert.Equal(t, "Unspecified", ToAccountResponse(&acc).AccessLevel)
}

func TestToMarginAttributesResponse_Signed(t *testing.T) {
	res := ToMarginAttributesResponse(&domain.MarginAttributes{
		LiquidPortfolio:      money("rub", 100, 0),
		AmountOfMissingFunds: money("rub", -5, -250000000),
	})
	assert.True(t, dec("100").Equal(res.LiquidPortfolio))
	assert.True(t, dec("-5.25").Equal(res.AmountOfMissingFunds))
	assert.Equal(t, "rub", res.Currency)
}

func TestToAccountOperationResponses_SignPolicy(t *testing.T) {
	ops := []domain.Operation{{
		ID:      "op-1",
		Payment: money("rub", -1000, -500000000),
		Price:   money("rub", -100, -50000000),
	}}
	res := ToAccountOperationResponses(ops)
	require.Len(t, res, 1)
	assert.True(t, dec("-1000.5").Equal(res[0].Payment))
	assert.True(t, dec("100.05").Equal(res[0].Price))
}

func TestToAccountPortfolioResponse(t *testing.T) {
	res := ToAccountPortfolioResponse(&domain.Portfolio{
		TotalAmountShares: money("rub", 5000, 0),
		ExpectedYield:     domain.NewScaledMoney(-3, -100000000),
	})
	assert.True(t, dec("5000").Equal(res.TotalAmountShares))
	assert.True(t, dec("-3.1").Equal(res.ExpectedYield))
	assert.Equal(t, "rub", res.Currency)
}

func TestToAccountPositionsResponse_MoneyPerCurrency(t *testing.T) {
	res := ToAccountPositionsResponse(&domain.Positions{
		Money:      []domain.MoneyValue{money("rub", 10, 0), money("usd", 0, 500000000)},
		Securities: []domain.SecurityPosition{{Figi: "F1", Balance: 3, Blocked: 1}},
	})
	require.Len(t, res.Money, 2)
	assert.Equal(t, "usd", res.Money[1].Currency)
	assert.True(t, dec("0.5").Equal(res.Money[1].Amount))
	assert.NotNil(t, res.Blocked)
	require.Len(t, res.Securities, 1)
	assert.Equal(t, int64(1), res.Securities[0].BlockedPosition)
}

func TestToTradeResponses_DirectionLabel(t *testing.T) {
	res := ToTradeResponses([]domain.Trade{
		{Direction: "TRADE_DIRECTION_SELL", Price: domain.NewScaledMoney(12, 340000000)},
		{Direction: "TRADE_DIRECTION_X"},
	})
	require.Len(t, res, 2)
	assert.Equal(t, "Sell", res[0].Direction)
	assert.True(t, dec("12.34").Equal(res[0].Price))
	assert.Equal(t, "Unspecified", res[1].Direction)
}

func TestToOrderBookResponse_AbsPrices(t *testing.T) {
	res := ToOrderBookResponse(&domain.OrderBook{
		Figi:      "F1",
		Depth:     1,
		Bids:      []domain.BookLevel{{Price: domain.NewScaledMoney(-10, 0), Quantity: 2}},
		Asks:      []domain.BookLevel{{Price: domain.NewScaledMoney(11, 0), Quantity: 1}},
		LastPrice: domain.NewScaledMoney(0, -500000000),
	})
	assert.True(t, dec("10").Equal(res.Bids[0].Price))
	assert.True(t, dec("0.5").Equal(res.LastPrice))
}

func TestToPostOrderResponse_Labels(t *testing.T) {
	res := ToPostOrderResponse(&domain.OrderReport{
		OrderID:               "o1",
		ExecutionReportStatus: "EXECUTION_REPORT_STATUS_PARTIALLYFILL",
		Direction:             "ORDER_DIRECTION_BUY",
		OrderType:             "ORDER_TYPE_BESTPRICE",
		InitialOrderPrice:     money("usd", 99, 990000000),
	})
	assert.Equal(t, "Partially Filled", res.ExecutionReportStatus)
	assert.Equal(t, "Buy", res.Direction)
	assert.Equal(t, "Best Price", res.OrderType)
	assert.Equal(t, "usd", res.Currency)
	assert.True(t, dec("99.99").Equal(res.InitialOrderPrice))
}

func TestToStopOrderResponses_Labels(t *testing.T) {
	res := ToStopOrderResponses([]domain.StopOrder{{
		StopOrderID: "s1",
		Direction:   "STOP_ORDER_DIRECTION_SELL",
		OrderType:   "STOP_ORDER_TYPE_STOP_LOSS",
		StopPrice:   money("rub", 90, 0),
	}})
	require.Len(t, res, 1)
	assert.Equal(t, "Sell", res[0].Direction)
	assert.Equal(t, "Stop Loss", res[0].OrderType)
	assert.True(t, dec("90").Equal(res[0].StopPrice))
}
