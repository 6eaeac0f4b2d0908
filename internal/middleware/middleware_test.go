package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/SscSPs/invest_gateway/internal/middleware"
	"github.com/SscSPs/invest_gateway/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signToken(t *testing.T, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func credentialsRouter(captured *domain.Credentials) *gin.Engine {
	r := gin.New()
	r.GET("/open", middleware.BrokerCredentials(), func(c *gin.Context) {
		*captured, _ = middleware.GetCredentialsFromContext(c)
		c.Status(http.StatusOK)
	})
	r.GET("/scoped", middleware.BrokerCredentials(), middleware.RequireAccount(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestBrokerCredentials(t *testing.T) {
	tests := []struct {
		name      string
		headers   map[string]string
		wantCode  int
		wantCreds domain.Credentials
	}{
		{
			name:      "bearer token with account",
			headers:   map[string]string{"Authorization": "Bearer t.abc", "Account-Id": "42"},
			wantCode:  http.StatusOK,
			wantCreds: domain.Credentials{Token: "t.abc", AccountID: "42"},
		},
		{
			name:      "legacy token header",
			headers:   map[string]string{"Token": "t.legacy"},
			wantCode:  http.StatusOK,
			wantCreds: domain.Credentials{Token: "t.legacy"},
		},
		{
			name:     "malformed authorization",
			headers:  map[string]string{"Authorization": "Basic dXNlcg=="},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "empty bearer",
			headers:  map[string]string{"Authorization": "Bearer  "},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "no token",
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.Credentials
			r := credentialsRouter(&got)
			req, _ := http.NewRequest(http.MethodGet, "/open", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := serve(r, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantCreds, got)
		})
	}
}

func TestRequireAccount(t *testing.T) {
	var got domain.Credentials
	r := credentialsRouter(&got)

	req, _ := http.NewRequest(http.MethodGet, "/scoped", nil)
	req.Header.Set("Authorization", "Bearer t.abc")
	w := serve(r, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Account-Id header required"}`, w.Body.String())

	req.Header.Set("Account-Id", "42")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGatewayTokenMiddleware(t *testing.T) {
	now := time.Now()
	issuer := utils.GatewayTokenIssuer
	valid := jwt.RegisteredClaims{Issuer: issuer, Subject: "client-1", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}
	expired := jwt.RegisteredClaims{Issuer: issuer, Subject: "client-1", ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour))}
	noSubject := jwt.RegisteredClaims{Issuer: issuer, ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}
	foreign := jwt.RegisteredClaims{Issuer: "other-service", Subject: "client-1", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}

	tests := []struct {
		name      string
		secret    string
		token     string
		wantCode  int
		wantError string
		wantID    string
	}{
		{name: "disabled without secret", secret: "", wantCode: http.StatusOK},
		{name: "missing header", secret: testSecret, wantCode: http.StatusUnauthorized, wantError: "X-Token header required"},
		{name: "garbage", secret: testSecret, token: "not-a-jwt", wantCode: http.StatusUnauthorized, wantError: "Invalid token"},
		{name: "expired", secret: testSecret, token: signToken(t, jwt.SigningMethodHS256, expired), wantCode: http.StatusUnauthorized, wantError: "Token has expired"},
		{name: "foreign issuer", secret: testSecret, token: signToken(t, jwt.SigningMethodHS256, foreign), wantCode: http.StatusUnauthorized, wantError: "Invalid token"},
		{name: "no subject", secret: testSecret, token: signToken(t, jwt.SigningMethodHS256, noSubject), wantCode: http.StatusUnauthorized, wantError: "Invalid token claims"},
		{name: "valid", secret: testSecret, token: signToken(t, jwt.SigningMethodHS256, valid), wantCode: http.StatusOK, wantID: "client-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var clientID string
			r := gin.New()
			r.GET("/", middleware.GatewayTokenMiddleware(tt.secret), func(c *gin.Context) {
				clientID, _ = middleware.GetClientIDFromContext(c)
				c.Status(http.StatusOK)
			})

			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				req.Header.Set("X-Token", tt.token)
			}
			w := serve(r, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantID, clientID)
			if tt.wantError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/ping", func(c *gin.Context) {
		assert.NotSame(t, slog.Default(), middleware.GetLoggerFromCtx(c.Request.Context()))
		assert.Same(t, middleware.GetLoggerFromContext(c), middleware.GetLoggerFromCtx(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := serve(r, req)

	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Request completed", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, float64(http.StatusNoContent), entry["status"])

	w = serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "a request id is generated when absent")
}

func TestRateLimit(t *testing.T) {
	rate := limiter.Rate{Period: time.Minute, Limit: 2}
	r := gin.New()
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestMetricsMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.MetricsMiddleware())
	r.GET("/orders/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/orders/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPosthogMiddleware_Disabled(t *testing.T) {
	r := gin.New()
	r.Use(middleware.PosthogMiddleware(nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
