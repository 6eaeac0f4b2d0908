package invest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SscSPs/invest_gateway/internal/apperrors"
	"github.com/SscSPs/invest_gateway/internal/platform/metrics"
)

// APIError represents an error returned by the broker gateway.
type APIError struct {
	StatusCode  int
	Code        int    // gRPC status code
	Message     string
	Description string // broker error code, e.g. "30052"
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("broker api error %d (%s): %s", e.StatusCode, e.Description, e.Message)
	}
	return fmt.Sprintf("broker api error %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the error onto the application sentinel errors.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return apperrors.ErrValidation
	case http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case http.StatusForbidden:
		return apperrors.ErrForbidden
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	case http.StatusTooManyRequests:
		return apperrors.ErrRateLimited
	}
	switch e.Code {
	case 3:
		return apperrors.ErrValidation
	case 5:
		return apperrors.ErrNotFound
	case 7:
		return apperrors.ErrForbidden
	case 8:
		return apperrors.ErrRateLimited
	case 16:
		return apperrors.ErrUnauthorized
	}
	return apperrors.ErrUpstream
}

type errorBody struct {
	Code        int    `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

// call invokes service/method with in as the JSON body and decodes the reply into out.
func (s *session) call(ctx context.Context, service, method string, in, out any) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}

	name := service + "/" + method
	start := time.Now()
	err := s.dialer.do(ctx, s.token, name, in, out)
	metrics.ObserveUpstreamCall(name, outcome(err), time.Since(start))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (d *Dialer) do(ctx context.Context, token, name string, in, out any) error {
	if in == nil {
		in = struct{}{}
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := d.baseURL + "/rest/" + contractPackage + "." + name
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if d.appName != "" {
		req.Header.Set("x-app-name", d.appName)
	}

	d.logger.Debug("calling broker", "method", name)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w: %w", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w: %w", apperrors.ErrUpstream, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil && eb.Message != "" {
			apiErr.Code = eb.Code
			apiErr.Message = eb.Message
			apiErr.Description = eb.Description
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w: %w", apperrors.ErrUpstream, err)
	}
	return nil
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("http_%d", apiErr.StatusCode)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "canceled"
	}
	return "error"
}
