package domain

import "time"

// Credentials identify the caller to the upstream broker.
// AccountID is empty for calls that are not account scoped.
type Credentials struct {
	Token     string
	AccountID string
}

// TimeRange is a half-open [From, To) window passed to upstream calls.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// LastDays returns the window ending at now and starting days before it.
func LastDays(now time.Time, days int) TimeRange {
	return TimeRange{From: now.AddDate(0, 0, -days), To: now}
}

// InstrumentIDType selects how an instrument identifier is interpreted upstream.
type InstrumentIDType string

const (
	InstrumentIDFigi   InstrumentIDType = "INSTRUMENT_ID_TYPE_FIGI"
	InstrumentIDTicker InstrumentIDType = "INSTRUMENT_ID_TYPE_TICKER"
	InstrumentIDUID    InstrumentIDType = "INSTRUMENT_ID_TYPE_UID"
)
