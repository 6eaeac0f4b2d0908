// Package broker defines the upstream brokerage interfaces the services call through.
package broker

import (
	"context"
	"io"
)

// Dialer opens a client session authenticated by an API token.
// Every session returned by Dial must be closed by the caller.
type Dialer interface {
	Dial(ctx context.Context, token string) (Client, error)
}

// Client combines every upstream service in one session.
type Client interface {
	InstrumentsAPI
	UsersAPI
	OperationsAPI
	MarketDataAPI
	OrdersAPI
	StopOrdersAPI
	io.Closer
}
