// Package bootstrap builds the shared runtime dependencies used by both
// cmd/server and cmd/runjob.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dukerupert/tradeline/internal"
	"github.com/dukerupert/tradeline/internal/email"
	"github.com/dukerupert/tradeline/internal/jobs"
	"github.com/dukerupert/tradeline/internal/recurring"
	"github.com/dukerupert/tradeline/internal/reminder"
	"github.com/dukerupert/tradeline/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// OpenDatabase connects the pgx pool and, when enabled, applies pending
// goose migrations through a database/sql handle on the same pool.
func OpenDatabase(ctx context.Context, cfg *internal.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	logger.Info("Connecting to database...")
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	if !cfg.RunMigrations {
		logger.Info("Skipping database migrations (RUN_MIGRATIONS=false)")
		return pool, nil
	}

	logger.Info("Running database migrations...")
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()
	if err := internal.RunMigrations(sqlDB); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	return pool, nil
}

// NewEmailSender selects the delivery provider named by EMAIL_PROVIDER.
func NewEmailSender(cfg internal.EmailConfig, logger *slog.Logger) (email.Sender, error) {
	switch cfg.Provider {
	case "sendgrid":
		if cfg.SendGridAPIKey == "" {
			return nil, fmt.Errorf("SENDGRID_API_KEY is required for the sendgrid provider")
		}
		return email.NewSendGridSender(cfg.SendGridAPIKey, cfg.From, cfg.FromName), nil
	case "postmark":
		if cfg.PostmarkToken == "" {
			return nil, fmt.Errorf("POSTMARK_API_TOKEN is required for the postmark provider")
		}
		return email.NewPostmarkSender(cfg.PostmarkToken, cfg.From, cfg.FromName), nil
	case "smtp":
		return email.NewSMTPSender(&email.SMTPConfig{
			Host:     cfg.Host,
			Port:     int(cfg.Port),
			Username: cfg.Username,
			Password: cfg.Password,
			From:     cfg.From,
			FromName: cfg.FromName,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}

// NewMailer wraps the configured sender with the template renderer.
func NewMailer(cfg internal.EmailConfig, logger *slog.Logger) (*email.Service, error) {
	sender, err := NewEmailSender(cfg, logger)
	if err != nil {
		return nil, err
	}
	mailer, err := email.NewService(sender, cfg.From, cfg.FromName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email templates: %w", err)
	}
	logger.Info("Email provider configured", "provider", cfg.Provider)
	return mailer, nil
}

// NewJobRunner wires the recurring generator and reminder dispatchers.
func NewJobRunner(store repository.Store, mailer reminder.Mailer, cfg *internal.Config, logger *slog.Logger) *jobs.Runner {
	loc := cfg.Location()

	generator := recurring.NewGenerator(store, logger.With("component", "recurring"))
	dispatcher := reminder.NewDispatcher(store, mailer, reminder.Config{
		SiteURL:  cfg.SiteURL,
		Location: loc,
	}, logger.With("component", "reminder"))

	return jobs.NewRunner(generator, dispatcher, loc, logger)
}
