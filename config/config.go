package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	// Demo mode serves fixtures instead of calling the bank.
	UseMockData  bool
	FixturesPath string

	BankAPIBaseURL   string
	ExternalLoansURL string
	UpstreamTimeout  time.Duration

	// RedisAddr empty means the in-process cache is used.
	RedisAddr       string
	ProductCacheTTL time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	// TrustProxyHeaders keys the rate limiter on X-Forwarded-For / X-Real-IP.
	// Only enable it behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
}

// LoadDotEnv loads .env from the working directory, then from its parent.
// A missing file is not an error.
func LoadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		err = godotenv.Load("../.env")
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("error loading .env file, relying on OS environment", "error", err)
	}
}

// Load reads the configuration from the process environment.
func Load() Config {
	return Config{
		Port:             getEnvInt("PORT", 8080),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		UseMockData:      getEnvBool("USE_MOCK_DATA", false),
		FixturesPath:     getEnv("FIXTURES_PATH", ""),
		BankAPIBaseURL:   getEnv("BANK_API_BASE_URL", ""),
		ExternalLoansURL: getEnv("EXTERNAL_LOANS_URL", ""),
		UpstreamTimeout:  getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		ProductCacheTTL:  getEnvDuration("PRODUCT_CACHE_TTL", 5*time.Minute),
		RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 10),

		TrustProxyHeaders: getEnvBool("TRUST_PROXY_HEADERS", false),
	}
}

func (c Config) Validate() error {
	if !c.UseMockData && c.BankAPIBaseURL == "" {
		return errors.New("BANK_API_BASE_URL is required unless USE_MOCK_DATA is enabled")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		slog.Warn("invalid number in environment, using default", "key", key, "value", v)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v)
	}
	return fallback
}
