package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/invest_gateway/internal/adapters/invest"
	"github.com/SscSPs/invest_gateway/internal/core/services"
	"github.com/SscSPs/invest_gateway/internal/handlers"
	"github.com/SscSPs/invest_gateway/internal/middleware"
	"github.com/SscSPs/invest_gateway/internal/platform/config"
	"github.com/SscSPs/invest_gateway/internal/platform/metrics"
	"github.com/SscSPs/invest_gateway/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Invest Gateway API
// @version 1.0
// @description REST facade over the Tinkoff Invest broker API.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the broker API token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	rateLimiter := limiter.New(memory.NewStore(), rate)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	metrics.Init()

	r := gin.New()

	// Global middleware
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(),
		cors.New(corsConfig(cfg)),
		middleware.RateLimit(rateLimiter),
		middleware.PosthogMiddleware(posthogClient),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dialer := invest.NewDialer(cfg.BrokerBaseURL,
		invest.WithTimeout(cfg.BrokerTimeout),
		invest.WithAppName(cfg.BrokerAppName),
		invest.WithLogger(logger),
	)
	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(dialer))

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("broker", cfg.BrokerBaseURL),
		slog.Bool("gateway_token_required", cfg.GatewayJWTSecret != ""),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Token", "Account-Id", "X-Token", "X-Request-ID"}
	corsCfg.ExposeHeaders = []string{"X-Next-Token", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	return corsCfg
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
