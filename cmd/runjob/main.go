// Command runjob runs one cron job to completion and exits. It is meant
// for system cron or a container scheduler:
//
//	runjob recurring
//	runjob appointment-reminders
//	runjob payment-reminders
//	runjob quote-followups
//
// appointment-reminders looks one hour either side of each user's reminder
// lead time, so it must run hourly; the other jobs run once a day:
//
//	0 * * * *   runjob appointment-reminders
//	0 6 * * *   runjob recurring
//
// The exit status is non-zero when the job could not run. Per-row failures
// are reported in the summary and do not fail the job.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dukerupert/tradeline/internal"
	"github.com/dukerupert/tradeline/internal/bootstrap"
	"github.com/dukerupert/tradeline/internal/jobs"
	"github.com/dukerupert/tradeline/internal/middleware"
	"github.com/dukerupert/tradeline/internal/repository"
	"github.com/dukerupert/tradeline/internal/telemetry"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s <job>\n\njobs:\n", os.Args[0])
	for _, name := range jobs.JobNames {
		fmt.Fprintf(flag.CommandLine.Output(), "  %s\n", name)
	}
}

func run() error {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	name, err := jobs.ParseJobName(flag.Arg(0))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, middleware.JobTimeout)
	defer cancel()

	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger := internal.NewLogger(os.Stderr, cfg.Env, cfg.LogLevel)

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

	pool, err := bootstrap.OpenDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	mailer, err := bootstrap.NewMailer(cfg.Email, logger)
	if err != nil {
		return err
	}

	runner := bootstrap.NewJobRunner(repository.NewStore(pool), mailer, cfg, logger)

	summary, err := runner.Run(ctx, name)
	if err != nil {
		return err
	}

	out := map[string]any{
		"job":         summary.Job,
		"duration_ms": summary.Duration.Milliseconds(),
		"counts":      summary.Counts,
	}
	return json.NewEncoder(os.Stdout).Encode(out)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
