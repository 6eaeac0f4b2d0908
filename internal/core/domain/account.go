package domain

import "time"

// Account is a brokerage account visible to the token.
type Account struct {
	ID          string
	Name        string
	Type        string
	Status      string
	AccessLevel string
	OpenedDate  time.Time
	ClosedDate  *time.Time
}

// MarginAttributes describes the margin state of an account.
type MarginAttributes struct {
	LiquidPortfolio       MoneyValue
	StartingMargin        MoneyValue
	MinimalMargin         MoneyValue
	FundsSufficiencyLevel ScaledMoney
	AmountOfMissingFunds  MoneyValue
	CorrectedMargin       MoneyValue
}

// UserTariff holds the API request limits of the token owner.
type UserTariff struct {
	UnaryLimits  []UnaryLimit
	StreamLimits []StreamLimit
}

// UnaryLimit is a per-minute limit shared by a group of unary methods.
type UnaryLimit struct {
	LimitPerMinute int32
	Methods        []string
}

// StreamLimit caps the number of concurrent streams of some kinds.
type StreamLimit struct {
	Limit   int32
	Streams []string
}

// UserInfo describes the token owner.
type UserInfo struct {
	PremStatus           bool
	QualStatus           bool
	QualifiedForWorkWith []string
	Tariff               string
}
