package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	// Upstream broker
	BrokerBaseURL string
	BrokerAppName string
	BrokerTimeout time.Duration

	// Inbound protection
	RateLimit          string // ulule/limiter format, e.g. "120-M"
	CORSAllowedOrigins []string
	GatewayJWTSecret   string // empty disables the X-Token check

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BROKER_BASE_URL", "https://invest-public-api.tinkoff.ru")
	v.SetDefault("BROKER_APP_NAME", "invest-gateway")
	v.SetDefault("BROKER_TIMEOUT", "30s")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("GATEWAY_JWT_SECRET", "")
	v.SetDefault("POSTHOG_API_KEY", "")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.LogLevel = strings.ToLower(v.GetString("LOG_LEVEL"))

	cfg.BrokerBaseURL = strings.TrimRight(v.GetString("BROKER_BASE_URL"), "/")
	cfg.BrokerAppName = v.GetString("BROKER_APP_NAME")

	timeoutStr := v.GetString("BROKER_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for BROKER_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.BrokerTimeout = timeout

	cfg.RateLimit = v.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.GatewayJWTSecret = v.GetString("GATEWAY_JWT_SECRET")
	if cfg.GatewayJWTSecret == "" && cfg.IsProduction {
		log.Println("Warning: GATEWAY_JWT_SECRET not set. The gateway accepts any caller holding a broker token.")
	}

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
