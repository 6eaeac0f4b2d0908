package invest

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// int64String decodes the JSON mapping of int64, which is a quoted string,
// and tolerates bare numbers.
type int64String int64

func (v *int64String) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse int64 %q: %w", s, err)
	}
	*v = int64String(n)
	return nil
}

func (v int64String) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(v), 10))), nil
}

type quotation struct {
	Units int64String `json:"units"`
	Nano  int32       `json:"nano"`
}

type moneyValue struct {
	Currency string      `json:"currency"`
	Units    int64String `json:"units"`
	Nano     int32       `json:"nano"`
}

// --- InstrumentsService ---

type tradingSchedulesRequest struct {
	Exchange string    `json:"exchange,omitempty"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
}

type tradingSchedulesResponse struct {
	Exchanges []struct {
		Exchange string `json:"exchange"`
		Days     []struct {
			Date         time.Time  `json:"date"`
			IsTradingDay bool       `json:"isTradingDay"`
			StartTime    *time.Time `json:"startTime"`
			EndTime      *time.Time `json:"endTime"`
		} `json:"days"`
	} `json:"exchanges"`
}

type instrumentsRequest struct {
	InstrumentStatus string `json:"instrumentStatus"`
}

type instrumentRequest struct {
	IDType    string `json:"idType"`
	ClassCode string `json:"classCode,omitempty"`
	ID        string `json:"id"`
}

type instrument struct {
	Figi              string `json:"figi"`
	Ticker            string `json:"ticker"`
	ClassCode         string `json:"classCode"`
	UID               string `json:"uid"`
	Name              string `json:"name"`
	Exchange          string `json:"exchange"`
	Currency          string `json:"currency"`
	CountryOfRiskName string `json:"countryOfRiskName"`
	Sector            string `json:"sector"`
	Lot               int32  `json:"lot"`
	BuyAvailableFlag  bool   `json:"buyAvailableFlag"`
	SellAvailableFlag bool   `json:"sellAvailableFlag"`
}

type instrumentsResponse struct {
	Instruments []instrument `json:"instruments"`
}

type instrumentResponse struct {
	Instrument instrument `json:"instrument"`
}

type dividendsRequest struct {
	Figi string    `json:"figi"`
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type dividendsResponse struct {
	Dividends []struct {
		DividendNet  moneyValue `json:"dividendNet"`
		ClosePrice   moneyValue `json:"closePrice"`
		YieldValue   quotation  `json:"yieldValue"`
		DeclaredDate time.Time  `json:"declaredDate"`
		PaymentDate  *time.Time `json:"paymentDate"`
		RecordDate   *time.Time `json:"recordDate"`
		DividendType string     `json:"dividendType"`
	} `json:"dividends"`
}

// --- UsersService ---

type accountRequest struct {
	AccountID string `json:"accountId"`
}

type accountsResponse struct {
	Accounts []struct {
		ID          string     `json:"id"`
		Type        string     `json:"type"`
		Name        string     `json:"name"`
		Status      string     `json:"status"`
		OpenedDate  time.Time  `json:"openedDate"`
		ClosedDate  *time.Time `json:"closedDate"`
		AccessLevel string     `json:"accessLevel"`
	} `json:"accounts"`
}

type marginAttributesResponse struct {
	LiquidPortfolio       moneyValue `json:"liquidPortfolio"`
	StartingMargin        moneyValue `json:"startingMargin"`
	MinimalMargin         moneyValue `json:"minimalMargin"`
	FundsSufficiencyLevel quotation  `json:"fundsSufficiencyLevel"`
	AmountOfMissingFunds  moneyValue `json:"amountOfMissingFunds"`
	CorrectedMargin       moneyValue `json:"correctedMargin"`
}

type userTariffResponse struct {
	UnaryLimits []struct {
		LimitPerMinute int32    `json:"limitPerMinute"`
		Methods        []string `json:"methods"`
	} `json:"unaryLimits"`
	StreamLimits []struct {
		Limit   int32    `json:"limit"`
		Streams []string `json:"streams"`
	} `json:"streamLimits"`
}

type userInfoResponse struct {
	PremStatus           bool     `json:"premStatus"`
	QualStatus           bool     `json:"qualStatus"`
	QualifiedForWorkWith []string `json:"qualifiedForWorkWith"`
	Tariff               string   `json:"tariff"`
}

// --- OperationsService ---

type operationsRequest struct {
	AccountID string    `json:"accountId"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
}

type operationsResponse struct {
	Operations []struct {
		ID             string      `json:"id"`
		Currency       string      `json:"currency"`
		Payment        moneyValue  `json:"payment"`
		Price          moneyValue  `json:"price"`
		State          string      `json:"state"`
		Quantity       int64String `json:"quantity"`
		Figi           string      `json:"figi"`
		InstrumentType string      `json:"instrumentType"`
		Date           time.Time   `json:"date"`
		Type           string      `json:"type"`
		OperationType  string      `json:"operationType"`
	} `json:"operations"`
}

type portfolioResponse struct {
	TotalAmountShares     moneyValue `json:"totalAmountShares"`
	TotalAmountBonds      moneyValue `json:"totalAmountBonds"`
	TotalAmountEtf        moneyValue `json:"totalAmountEtf"`
	TotalAmountCurrencies moneyValue `json:"totalAmountCurrencies"`
	TotalAmountFutures    moneyValue `json:"totalAmountFutures"`
	ExpectedYield         quotation  `json:"expectedYield"`
}

type positionsResponse struct {
	Money      []moneyValue `json:"money"`
	Blocked    []moneyValue `json:"blocked"`
	Securities []struct {
		Figi           string      `json:"figi"`
		InstrumentType string      `json:"instrumentType"`
		Blocked        int64String `json:"blocked"`
		Balance        int64String `json:"balance"`
	} `json:"securities"`
}

type withdrawLimitsResponse struct {
	Money            []moneyValue `json:"money"`
	Blocked          []moneyValue `json:"blocked"`
	BlockedGuarantee []moneyValue `json:"blockedGuarantee"`
}

type brokerReportRequest struct {
	GenerateBrokerReportRequest operationsRequest `json:"generateBrokerReportRequest"`
}

type brokerReportResponse struct {
	GenerateBrokerReportResponse struct {
		TaskID string `json:"taskId"`
	} `json:"generateBrokerReportResponse"`
}

// --- MarketDataService ---

type lastPricesRequest struct {
	Figi []string `json:"figi"`
}

type lastPricesResponse struct {
	LastPrices []struct {
		Figi  string    `json:"figi"`
		Price quotation `json:"price"`
		Time  time.Time `json:"time"`
	} `json:"lastPrices"`
}

type lastTradesRequest struct {
	Figi string    `json:"figi"`
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type lastTradesResponse struct {
	Trades []struct {
		Figi      string      `json:"figi"`
		Direction string      `json:"direction"`
		Price     quotation   `json:"price"`
		Quantity  int64String `json:"quantity"`
		Time      time.Time   `json:"time"`
	} `json:"trades"`
}

type orderBookRequest struct {
	Figi  string `json:"figi"`
	Depth int32  `json:"depth"`
}

type bookLevel struct {
	Price    quotation   `json:"price"`
	Quantity int64String `json:"quantity"`
}

type orderBookResponse struct {
	Figi       string      `json:"figi"`
	Depth      int32       `json:"depth"`
	Bids       []bookLevel `json:"bids"`
	Asks       []bookLevel `json:"asks"`
	LastPrice  quotation   `json:"lastPrice"`
	ClosePrice quotation   `json:"closePrice"`
	LimitUp    quotation   `json:"limitUp"`
	LimitDown  quotation   `json:"limitDown"`
}

type candlesRequest struct {
	Figi     string    `json:"figi"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Interval string    `json:"interval"`
}

type candlesResponse struct {
	Candles []struct {
		Open       quotation   `json:"open"`
		High       quotation   `json:"high"`
		Low        quotation   `json:"low"`
		Close      quotation   `json:"close"`
		Volume     int64String `json:"volume"`
		Time       time.Time   `json:"time"`
		IsComplete bool        `json:"isComplete"`
	} `json:"candles"`
}

// --- OrdersService ---

type postOrderRequest struct {
	Figi      string      `json:"figi"`
	Quantity  int64String `json:"quantity"`
	Price     *quotation  `json:"price,omitempty"`
	Direction string      `json:"direction"`
	AccountID string      `json:"accountId"`
	OrderType string      `json:"orderType"`
	OrderID   string      `json:"orderId"`
}

type replaceOrderRequest struct {
	AccountID      string      `json:"accountId"`
	OrderID        string      `json:"orderId"`
	IdempotencyKey string      `json:"idempotencyKey"`
	Quantity       int64String `json:"quantity"`
	Price          *quotation  `json:"price,omitempty"`
	PriceType      string      `json:"priceType,omitempty"`
}

type orderReport struct {
	OrderID               string      `json:"orderId"`
	ExecutionReportStatus string      `json:"executionReportStatus"`
	LotsRequested         int64String `json:"lotsRequested"`
	LotsExecuted          int64String `json:"lotsExecuted"`
	InitialOrderPrice     moneyValue  `json:"initialOrderPrice"`
	ExecutedOrderPrice    moneyValue  `json:"executedOrderPrice"`
	TotalOrderAmount      moneyValue  `json:"totalOrderAmount"`
	InitialCommission     moneyValue  `json:"initialCommission"`
	ExecutedCommission    moneyValue  `json:"executedCommission"`
	AciValue              moneyValue  `json:"aciValue"`
	Figi                  string      `json:"figi"`
	Direction             string      `json:"direction"`
	InitialSecurityPrice  moneyValue  `json:"initialSecurityPrice"`
	OrderType             string      `json:"orderType"`
	Message               string      `json:"message"`
	InitialOrderPricePt   quotation   `json:"initialOrderPricePt"`
}

type orderIDRequest struct {
	AccountID string `json:"accountId"`
	OrderID   string `json:"orderId"`
}

type orderState struct {
	OrderID               string      `json:"orderId"`
	ExecutionReportStatus string      `json:"executionReportStatus"`
	LotsRequested         int64String `json:"lotsRequested"`
	LotsExecuted          int64String `json:"lotsExecuted"`
	InitialOrderPrice     moneyValue  `json:"initialOrderPrice"`
	ExecutedOrderPrice    moneyValue  `json:"executedOrderPrice"`
	TotalOrderAmount      moneyValue  `json:"totalOrderAmount"`
	InitialCommission     moneyValue  `json:"initialCommission"`
	ExecutedCommission    moneyValue  `json:"executedCommission"`
	Figi                  string      `json:"figi"`
	Direction             string      `json:"direction"`
	InitialSecurityPrice  moneyValue  `json:"initialSecurityPrice"`
	ServiceCommission     moneyValue  `json:"serviceCommission"`
	Currency              string      `json:"currency"`
	OrderType             string      `json:"orderType"`
	OrderDate             time.Time   `json:"orderDate"`
}

type ordersResponse struct {
	Orders []orderState `json:"orders"`
}

type cancelResponse struct {
	Time time.Time `json:"time"`
}

// --- StopOrdersService ---

type postStopOrderRequest struct {
	Figi           string      `json:"figi"`
	Quantity       int64String `json:"quantity"`
	Price          *quotation  `json:"price,omitempty"`
	StopPrice      *quotation  `json:"stopPrice,omitempty"`
	Direction      string      `json:"direction"`
	AccountID      string      `json:"accountId"`
	ExpirationType string      `json:"expirationType"`
	StopOrderType  string      `json:"stopOrderType"`
	ExpireDate     *time.Time  `json:"expireDate,omitempty"`
}

type postStopOrderResponse struct {
	StopOrderID string `json:"stopOrderId"`
}

type stopOrderIDRequest struct {
	AccountID   string `json:"accountId"`
	StopOrderID string `json:"stopOrderId"`
}

type stopOrdersResponse struct {
	StopOrders []struct {
		StopOrderID        string      `json:"stopOrderId"`
		LotsRequested      int64String `json:"lotsRequested"`
		Figi               string      `json:"figi"`
		Direction          string      `json:"direction"`
		Currency           string      `json:"currency"`
		OrderType          string      `json:"orderType"`
		CreateDate         time.Time   `json:"createDate"`
		ActivationDateTime *time.Time  `json:"activationDateTime"`
		ExpirationTime     *time.Time  `json:"expirationTime"`
		Price              moneyValue  `json:"price"`
		StopPrice          moneyValue  `json:"stopPrice"`
	} `json:"stopOrders"`
}
