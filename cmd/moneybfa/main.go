package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"go.uber.org/zap"

	"github.com/boddenberg/money-bfa-go/internal/config"
	"github.com/boddenberg/money-bfa-go/internal/handler"
	"github.com/boddenberg/money-bfa-go/internal/infra/cache"
	"github.com/boddenberg/money-bfa-go/internal/infra/observability"
	"github.com/boddenberg/money-bfa-go/internal/infra/resilience"
	"github.com/boddenberg/money-bfa-go/internal/infra/static"
	"github.com/boddenberg/money-bfa-go/internal/infra/supabase"
	"github.com/boddenberg/money-bfa-go/internal/port"
	"github.com/boddenberg/money-bfa-go/internal/service"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("data_backend", cfg.DataBackend),
		zap.String("default_timezone", cfg.DefaultTimezone),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
		zap.Bool("auth_enabled", cfg.JWTSecret != ""),
	)

	// --- Tracing ---
	if cfg.TracingEnabled {
		shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "money-bfa")
		if err != nil {
			logger.Fatal("failed to init tracer", zap.Error(err))
		}
		defer shutdown(context.Background())
	}

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Cache ---
	summaryCache := cache.New[any](cfg.CacheTTL)

	// --- Data provider ---
	loc := cfg.Location()
	var store port.MoneyStore
	switch cfg.DataBackend {
	case config.BackendSupabase:
		logger.Info("using Supabase as data backend", zap.String("supabase_url", cfg.SupabaseURL))
		store = supabase.NewClient(
			&http.Client{Timeout: cfg.HTTPTimeout},
			cfg.SupabaseURL,
			cfg.SupabaseAnonKey,
			cfg.SupabaseServiceKey,
			resilience.NewCircuitBreaker("supabase", logger),
			resilience.Config{
				MaxRetries:     cfg.MaxRetries,
				InitialBackoff: cfg.InitialBackoff,
				MaxConcurrency: cfg.MaxConcurrency,
			},
			logger,
			supabase.WithLocation(loc),
		)
	default:
		logger.Info("using built-in demo data",
			zap.String("demo_dashboard", fmt.Sprintf("/v1/users/%s/money/dashboard", cfg.DemoUserID)),
		)
		store = static.New(static.WithLocation(loc))
	}

	// --- Services ---
	moneySvc := service.NewMoneyService(store, summaryCache, metrics, logger,
		service.WithDefaultLocation(loc),
	)
	verifier := service.NewTokenVerifier(cfg.JWTSecret)
	if !verifier.Enabled() {
		logger.Warn("JWT_SECRET not set, user routes are not authenticated")
	}

	// --- Router ---
	router := handler.NewRouter(moneySvc, verifier, metrics, cfg.AllowedOrigins, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
