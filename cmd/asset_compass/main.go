package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/asset_compass/internal/adapters/marketdata/alphavantage"
	"github.com/SscSPs/asset_compass/internal/adapters/notification"
	"github.com/SscSPs/asset_compass/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/asset_compass/internal/core/ports/repositories"
	"github.com/SscSPs/asset_compass/internal/core/services"
	"github.com/SscSPs/asset_compass/internal/handlers"
	"github.com/SscSPs/asset_compass/internal/middleware"
	"github.com/SscSPs/asset_compass/internal/platform/config"
	"github.com/SscSPs/asset_compass/internal/platform/metrics"
	"github.com/SscSPs/asset_compass/internal/platform/scheduler"
	"github.com/SscSPs/asset_compass/internal/repositories/database/pgsql"
	"github.com/SscSPs/asset_compass/internal/repositories/memory"
	"github.com/SscSPs/asset_compass/internal/repositories/redis"
	"github.com/SscSPs/asset_compass/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title AssetCompass API
// @version 1.0
// @description Trade execution and valuation of investment holdings.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, cleanup, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	// Trade confirmations are delivered off the request path
	var notifier providers.TradeNotifier = notification.LogNotifier{}
	if cfg.BrevoAPIKey != "" {
		notifier = notification.NewBrevoNotifier(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, notification.BrevoEndpoint)
		logger.Info("Trade confirmations will be sent through Brevo")
	}
	queue := services.NewNotificationQueue(notifier, cfg.NotifyQueueSize, cfg.NotifyWorkers)
	queue.Start()
	defer queue.Close()

	market := alphavantage.NewClient(
		cfg.AlphaVantageAPIKey,
		alphavantage.WithBaseURL(cfg.AlphaVantageBaseURL),
		alphavantage.WithCryptoSymbols(cfg.CryptoSymbols),
	)

	serviceContainer := services.NewServiceContainer(cfg, repos, services.Upstream{
		Market:   market,
		FX:       market,
		Notifier: queue,
	})

	if cfg.FXWarmSchedule != "" {
		currencies := cfg.FXWarmCurrencies
		if len(currencies) == 0 {
			currencies = []string{cfg.ReferenceCurrency}
		}
		sched := scheduler.New(logger)
		job := services.NewFXWarmJob(serviceContainer.Oracle, currencies, cfg.MarketFetchTimeout)
		if err := sched.AddJob(cfg.FXWarmSchedule, job); err != nil {
			logger.Error("Failed to schedule FX warm job", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if failed := sched.RunAll(); failed > 0 {
			logger.Warn("FX cache warm-up incomplete, serving seeded rates until the next run", slog.Int("failed_jobs", failed))
		}
		sched.Start()
		defer sched.Stop()
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), metrics.GinMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}

// setupRepositories builds the storage layer selected by STORAGE_DRIVER.
// The returned cleanup releases every connection that was opened.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var rateCache portsrepo.RateCache = memory.NewRateCache()
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, cleanup, err
		}
		closers = append(closers, func() {
			if err := client.Close(); err != nil {
				logger.Error("Error closing Redis client", slog.String("error", err.Error()))
			}
		})
		rateCache = redis.NewRateCache(client, rateCache)
		logger.Info("Exchange rates are shared through Redis")
	}

	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("Using in-memory storage")
		return memory.NewRepositoryProvider(rateCache), cleanup, nil
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		cleanup()
		return portsrepo.RepositoryProvider{}, func() {}, err
	}
	closers = append(closers, func() { database.ClosePgxPool(dbPool) })
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		cleanup()
		return portsrepo.RepositoryProvider{}, func() {}, err
	}

	return pgsql.NewRepositoryProvider(dbPool, rateCache), cleanup, nil
}
