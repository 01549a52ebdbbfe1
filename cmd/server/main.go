package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dukerupert/tradeline/internal"
	"github.com/dukerupert/tradeline/internal/aigateway"
	"github.com/dukerupert/tradeline/internal/billing"
	"github.com/dukerupert/tradeline/internal/bootstrap"
	"github.com/dukerupert/tradeline/internal/handler/api"
	"github.com/dukerupert/tradeline/internal/handler/webhook"
	"github.com/dukerupert/tradeline/internal/middleware"
	"github.com/dukerupert/tradeline/internal/repository"
	"github.com/dukerupert/tradeline/internal/router"
	"github.com/dukerupert/tradeline/internal/routes"
	"github.com/dukerupert/tradeline/internal/service"
	"github.com/dukerupert/tradeline/internal/storage"
	"github.com/dukerupert/tradeline/internal/telemetry"
	"github.com/stripe/stripe-go/v83"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Error tracking
	flushSentry, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:              cfg.Sentry.DSN,
		Enabled:          cfg.Sentry.Enabled,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		Debug:            cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return err
	}
	defer flushSentry()

	telemetry.InitBusinessMetrics("tradeline")

	// Database
	pool, err := bootstrap.OpenDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()
	store := repository.NewStore(pool)

	// Email
	mailer, err := bootstrap.NewMailer(cfg.Email, logger)
	if err != nil {
		return err
	}

	// Object storage for receipt archiving (optional)
	archive, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage configured", "provider", cfg.Storage.Provider)

	// AI model
	model := aigateway.Unconfigured()
	if cfg.AI.APIKey != "" {
		gemini, err := aigateway.NewGeminiModel(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			return err
		}
		model = gemini
		logger.Info("AI model configured", "model", cfg.AI.Model, "timeout", cfg.AI.Timeout)
	} else {
		logger.Warn("GEMINI_API_KEY not set, /api/ai requests will fail")
	}

	// Stripe
	stripe.Key = cfg.Stripe.SecretKey
	stripeConfig := billing.StripeConfig{
		SecretKey:            cfg.Stripe.SecretKey,
		WebhookSecret:        cfg.Stripe.WebhookSecret,
		ConnectWebhookSecret: cfg.Stripe.ConnectWebhookSecret,
		Prices: billing.PriceCatalog{
			Solo: cfg.Stripe.PriceSolo,
			Team: cfg.Stripe.PriceTeam,
			Seat: cfg.Stripe.PriceSeat,
		},
	}
	if err := stripeConfig.Validate(); err != nil {
		logger.Warn("Stripe webhooks will be rejected", "error", err)
	}
	logger.Info("Stripe configured", "test_mode", stripeConfig.IsTestMode())

	// Services
	subscriptionService := service.NewSubscriptionService(store, stripeConfig.Prices, logger.With("component", "subscription"))
	notificationService := service.NewNotificationService(store, mailer, logger.With("component", "notification"))
	runner := bootstrap.NewJobRunner(store, mailer, cfg, logger.With("component", "jobs"))
	gateway := aigateway.New(model, archive, cfg.AI.Timeout, logger.With("component", "aigateway"))

	// ==========================================================================
	// Build route dependencies
	// ==========================================================================

	webhookDeps := routes.WebhookDeps{
		StripeHandler: webhook.NewStripeHandler(
			billing.NewStripeVerifier(),
			subscriptionService,
			webhook.StripeWebhookConfig{
				WebhookSecret:        stripeConfig.WebhookSecret,
				ConnectWebhookSecret: stripeConfig.ConnectWebhookSecret,
			},
			logger,
		),
	}

	jobDeps := routes.JobDeps{
		Handler: api.NewJobsHandler(runner, logger),
		Auth:    middleware.RequireCronSecret(cfg.CronSecret),
	}

	aiLimiter := middleware.NewRateLimiter(middleware.AIRateLimiterConfig())
	defer aiLimiter.Stop()

	// Every model call gets cfg.AI.Timeout and is tried up to three times.
	aiRouteTimeout := 3*cfg.AI.Timeout + 10*time.Second

	apiDeps := routes.APIDeps{
		EmailHandler: api.NewEmailHandler(notificationService, logger),
		AIHandler:    api.NewAIHandler(gateway, logger),
		Auth:         middleware.RequireUser([]byte(cfg.JWTSecret)),
		EmailLimits: []router.Middleware{
			middleware.MaxBodySize(middleware.EmailMaxBodySize),
			middleware.Timeout(middleware.DefaultTimeout),
		},
		AILimits: []router.Middleware{
			aiLimiter.Middleware,
			middleware.Timeout(aiRouteTimeout),
		},
	}

	// ==========================================================================
	// Initialize middleware
	// ==========================================================================

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("tradeline")

	// ==========================================================================
	// Create routers and register routes
	// ==========================================================================

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		telemetry.SentryMiddleware(),
		metrics.Middleware,
		middleware.SecurityHeaders(middleware.APISecurityHeadersConfig()),
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
	)

	// Metrics endpoint (no auth required, but should be protected in production via firewall)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := pool.Ping(req.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.Storage.Provider == "local" {
		r.Static(strings.TrimSuffix(cfg.Storage.LocalURL, "/")+"/", cfg.Storage.LocalPath)
	}

	// Register route groups
	routes.RegisterWebhookRoutes(r.Group(
		middleware.MaxBodySize(middleware.WebhookMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
	), webhookDeps)

	routes.RegisterJobRoutes(r.Group(
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.JobTimeout),
	), jobDeps)

	routes.RegisterAPIRoutes(r, apiDeps)

	// CORS sits outside the mux so preflight requests never hit the
	// POST-only routes.
	handler := router.CORS([]string{cfg.SiteURL})(r)

	// ==========================================================================
	// Start server
	// ==========================================================================

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server stopped")

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
