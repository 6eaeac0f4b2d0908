// Package invest implements the broker ports over the brokerage REST gateway.
//
// Every upstream method is exposed as POST {baseURL}/rest/{package}.{Service}/{Method}
// taking and returning the protobuf contract in its JSON mapping.
package invest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/SscSPs/invest_gateway/internal/apperrors"
	"github.com/SscSPs/invest_gateway/internal/core/ports/broker"
)

// DefaultBaseURL is the production REST gateway.
const DefaultBaseURL = "https://invest-public-api.tinkoff.ru"

// SandboxBaseURL is the sandbox REST gateway.
const SandboxBaseURL = "https://sandbox-invest-public-api.tinkoff.ru"

const contractPackage = "tinkoff.public.invest.api.contract.v1"

// ErrSessionClosed is returned by calls made on a closed session.
var ErrSessionClosed = errors.New("broker session closed")

// Dialer creates token-scoped sessions sharing one HTTP connection pool.
type Dialer struct {
	baseURL    string
	appName    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Dialer.
type Option func(*Dialer)

// NewDialer creates a Dialer for the gateway at baseURL.
func NewDialer(baseURL string, opts ...Option) *Dialer {
	d := &Dialer{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dialer) {
		d.httpClient.Timeout = timeout
	}
}

// WithAppName sets the x-app-name header sent with every call.
func WithAppName(name string) Option {
	return func(d *Dialer) {
		d.appName = name
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dialer) {
		d.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(d *Dialer) {
		d.httpClient = hc
	}
}

// Dial opens a session for token. It does not contact the broker; a bad token
// surfaces on the first call.
func (d *Dialer) Dial(ctx context.Context, token string) (broker.Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("dial broker: empty token: %w", apperrors.ErrUnauthorized)
	}
	return &session{dialer: d, token: token}, nil
}

// session is a broker.Client bound to one token.
type session struct {
	dialer *Dialer
	token  string
	closed atomic.Bool
}

// Close marks the session as unusable. The shared connection pool stays open.
func (s *session) Close() error {
	if s.closed.Swap(true) {
		return ErrSessionClosed
	}
	return nil
}

var (
	_ broker.Dialer = (*Dialer)(nil)
	_ broker.Client = (*session)(nil)
)
