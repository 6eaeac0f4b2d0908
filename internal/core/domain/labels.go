package domain

// LabelTable maps opaque upstream enum codes to display labels.
// Tables are built once and are read-only afterwards.
type LabelTable struct {
	labels   map[string]string
	codes    map[string]string
	fallback string
}

// NewLabelTable copies entries into a new table. Unknown codes resolve to fallback.
func NewLabelTable(fallback string, entries map[string]string) LabelTable {
	t := LabelTable{
		labels:   make(map[string]string, len(entries)),
		codes:    make(map[string]string, len(entries)),
		fallback: fallback,
	}
	for code, label := range entries {
		t.labels[code] = label
		t.codes[label] = code
	}
	return t
}

// Label returns the label configured for code, or the fallback.
func (t LabelTable) Label(code string) string {
	if label, ok := t.labels[code]; ok {
		return label
	}
	return t.fallback
}

// Code returns the upstream code for a display label.
func (t LabelTable) Code(label string) (string, bool) {
	code, ok := t.codes[label]
	return code, ok
}

// Fallback returns the label used for unknown codes.
func (t LabelTable) Fallback() string {
	return t.fallback
}

// Labels lists every configured label, in no particular order.
func (t LabelTable) Labels() []string {
	out := make([]string, 0, len(t.codes))
	for label := range t.codes {
		out = append(out, label)
	}
	return out
}

const unspecifiedLabel = "Unspecified"

var (
	TradeDirectionLabels = NewLabelTable(unspecifiedLabel, map[string]string{
		"TRADE_DIRECTION_BUY":         "Buy",
		"TRADE_DIRECTION_SELL":        "Sell",
		"TRADE_DIRECTION_UNSPECIFIED": unspecifiedLabel,
	})

	AccessLevelLabels = NewLabelTable(unspecifiedLabel, map[string]string{
		"ACCOUNT_ACCESS_LEVEL_FULL_ACCESS": "Full Access",
		"ACCOUNT_ACCESS_LEVEL_UNSPECIFIED": unspecifiedLabel,
		"ACCOUNT_ACCESS_LEVEL_NO_ACCESS":   "No Access",
		"ACCOUNT_ACCESS_LEVEL_READ_ONLY":   "Read Only",
	})

	AccountTypeLabels = NewLabelTable(unspecifiedLabel, map[string]string{
		"ACCOUNT_TYPE_UNSPECIFIED": unspecifiedLabel,
		"ACCOUNT_TYPE_TINKOFF":     "Brokerage",
		"ACCOUNT_TYPE_TINKOFF_IIS": "IIS",
		"ACCOUNT_TYPE_INVEST_BOX":  "Invest Box",
		"ACCOUNT_TYPE_INVEST_FUND": "Invest Fund",
	})

	AccountStatusLabels = NewLabelTable(unspecifiedLabel, map[string]string{
		"ACCOUNT_STATUS_UNSPECIFIED": unspecifiedLabel,
		"ACCOUNT_STATUS_NEW":         "New",
		"ACCOUNT_STATUS_OPEN":        "Open",
		"ACCOUNT_STATUS_CLOSED":      "Closed",
	})

	OrderDirectionLabels = NewLabelTable(unspecifiedLabel, map[string]string{
		"ORDER_DIRECTION_BUY":         "Buy",
		"ORDER_DIRECTION_SELL":        "Sell",
		"ORDER_DIRECTION_UNSPECIFIED": unspecifiedLabel,
	})

	OrderTypeLabels = NewLabelTable(unspecifiedLabel, map[string]string{
		"ORDER_TYPE_UNSPECIFIED": unspecifiedLabel,
		"ORDER_TYPE_LIMIT":       "Limit",
		"ORDER_TYPE_MARKET":      "Market",
		"ORDER_TYPE_BESTPRICE":   "Best Price",
	})

	ExecutionReportStatusLabels = NewLabelTable(unspecifiedLabel, map[string]string{
		"EXECUTION_REPORT_STATUS_UNSPECIFIED":   unspecifiedLabel,
		"EXECUTION_REPORT_STATUS_FILL":          "Fill",
		"EXECUTION_REPORT_STATUS_REJECTED":      "Rejected",
		"EXECUTION_REPORT_STATUS_CANCELLED":     "Cancelled",
		"EXECUTION_REPORT_STATUS_NEW":           "New",
		"EXECUTION_REPORT_STATUS_PARTIALLYFILL": "Partially Filled",
	})

	PriceTypeLabels = NewLabelTable(unspecifiedLabel, map[string]string{
		"PRICE_TYPE_UNSPECIFIED": unspecifiedLabel,
		"PRICE_TYPE_POINT":       "Point",
		"PRICE_TYPE_CURRENCY":    "Currency",
	})

	StopOrderDirectionLabels = NewLabelTable(unspecifiedLabel, map[string]string{
		"STOP_ORDER_DIRECTION_UNSPECIFIED": unspecifiedLabel,
		"STOP_ORDER_DIRECTION_BUY":         "Buy",
		"STOP_ORDER_DIRECTION_SELL":        "Sell",
	})

	StopOrderTypeLabels = NewLabelTable(unspecifiedLabel, map[string]string{
		"STOP_ORDER_TYPE_UNSPECIFIED": unspecifiedLabel,
		"STOP_ORDER_TYPE_TAKE_PROFIT": "Take Profit",
		"STOP_ORDER_TYPE_STOP_LOSS":   "Stop Loss",
		"STOP_ORDER_TYPE_STOP_LIMIT":  "Stop Limit",
	})

	StopOrderExpirationTypeLabels = NewLabelTable(unspecifiedLabel, map[string]string{
		"STOP_ORDER_EXPIRATION_TYPE_UNSPECIFIED":      unspecifiedLabel,
		"STOP_ORDER_EXPIRATION_TYPE_GOOD_TILL_CANCEL": "Good Till Cancel",
		"STOP_ORDER_EXPIRATION_TYPE_GOOD_TILL_DATE":   "Good Till Date",
	})

	// CandleIntervalLabels is used in reverse, to parse the interval query parameter.
	CandleIntervalLabels = NewLabelTable(unspecifiedLabel, map[string]string{
		"CANDLE_INTERVAL_UNSPECIFIED": unspecifiedLabel,
		"CANDLE_INTERVAL_1_MIN":       "1min",
		"CANDLE_INTERVAL_5_MIN":       "5min",
		"CANDLE_INTERVAL_15_MIN":      "15min",
		"CANDLE_INTERVAL_HOUR":        "hour",
		"CANDLE_INTERVAL_DAY":         "day",
	})
)
