package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"refinance-agent/client"
	"refinance-agent/config"
	httpLayer "refinance-agent/http"
	"refinance-agent/logger"
	"refinance-agent/metrics"
	"refinance-agent/repository"
	"refinance-agent/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), config.Load())
		},
	}
}

func runServe(parent context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, os.Stdout)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		return err
	}

	m := metrics.New()
	checks := map[string]httpLayer.ReadinessCheck{}

	source, cleanup, err := buildDataSource(cfg, m, checks)
	if err != nil {
		log.Error("failed to build data source", "error", err)
		return err
	}
	defer cleanup()

	suggestionService := service.NewSuggestionService(source, m)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.RouterDeps{
		Suggestions: httpLayer.NewSuggestionHandler(suggestionService),
		Health:      httpLayer.NewHealthHandler(checks),
		RateLimiter: rateLimiter,
		Metrics:     m.Handler(),

		TrustProxyHeaders: cfg.TrustProxyHeaders,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15*time.Second + cfg.UpstreamTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("refinance API listening", "addr", server.Addr, "mock_data", cfg.UseMockData)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		log.Error("error starting server", "error", err)
		return err
	case <-ctx.Done():
		log.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("error during server shutdown", "error", err)
		return err
	}

	log.Info("server exited")
	return nil
}

// buildDataSource picks fixtures in demo mode and the bank API otherwise.
// Readiness checks for the chosen dependencies are added to checks.
func buildDataSource(
	cfg config.Config,
	m *metrics.Metrics,
	checks map[string]httpLayer.ReadinessCheck,
) (repository.DataSource, func(), error) {
	noop := func() {}

	if cfg.UseMockData {
		source, err := repository.LoadFixtureSource(cfg.FixturesPath)
		if err != nil {
			return nil, noop, err
		}
		return source, noop, nil
	}

	clientCfg := client.DefaultConfig()
	clientCfg.Timeout = cfg.UpstreamTimeout
	httpClient := client.NewHTTPClient(clientCfg)

	var cache repository.CacheRepository = repository.NewMemoryCache()
	cleanup := noop
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr)
		cache = redisCache
		checks["redis"] = redisCache.Ping
		cleanup = func() {
			if err := redisCache.Close(); err != nil {
				slog.Warn("error closing redis client", "error", err)
			}
		}
	}

	source := repository.NewUpstreamSource(
		client.NewBankClient(cfg.BankAPIBaseURL, httpClient),
		client.NewExternalLoansClient(cfg.ExternalLoansURL, httpClient),
		repository.WithProductCache(cache, cfg.ProductCacheTTL),
		repository.WithRecorder(m),
	)
	return source, cleanup, nil
}
