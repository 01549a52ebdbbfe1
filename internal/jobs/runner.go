// Package jobs runs the scheduled batch jobs. Each job is triggered by
// name, either from the cron HTTP endpoints or from cmd/runjob.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/recurring"
	"github.com/dukerupert/tradeline/internal/reminder"
	"github.com/dukerupert/tradeline/internal/telemetry"
)

// JobName identifies a scheduled job.
type JobName string

const (
	JobRecurring            JobName = "recurring"
	JobAppointmentReminders JobName = "appointment-reminders"
	JobPaymentReminders     JobName = "payment-reminders"
	JobQuoteFollowups       JobName = "quote-followups"
)

// JobNames lists every job in the order cmd/runjob documents them.
var JobNames = []JobName{
	JobRecurring,
	JobAppointmentReminders,
	JobPaymentReminders,
	JobQuoteFollowups,
}

func ParseJobName(s string) (JobName, error) {
	for _, name := range JobNames {
		if string(name) == s {
			return name, nil
		}
	}
	return "", domain.Errorf(domain.ENOTFOUND, "jobs.ParseJobName", "unknown job: %s", s)
}

// Generator is satisfied by *recurring.Generator.
type Generator interface {
	Run(ctx context.Context, today time.Time) (recurring.Result, error)
}

// Reminders is satisfied by *reminder.Dispatcher.
type Reminders interface {
	Appointments(ctx context.Context) (reminder.Result, error)
	Payments(ctx context.Context) (reminder.Result, error)
	QuoteFollowups(ctx context.Context) (reminder.Result, error)
}

// Summary is the outcome of one job run. Counts holds the job's own
// counters (generated, sent, failed, ...).
type Summary struct {
	Job      JobName
	Duration time.Duration
	Counts   map[string]int
}

type Runner struct {
	generator Generator
	reminders Reminders
	loc       *time.Location
	logger    *slog.Logger

	now func() time.Time
}

// NewRunner wires the jobs. loc decides which calendar day "today" is for
// the recurring generator.
func NewRunner(generator Generator, reminders Reminders, loc *time.Location, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Runner{
		generator: generator,
		reminders: reminders,
		loc:       loc,
		logger:    logger,
		now:       time.Now,
	}
}

// Run executes one job to completion. Per-row failures are reported in the
// summary counts; an error means the job could not run at all.
func (r *Runner) Run(ctx context.Context, name JobName) (Summary, error) {
	start := time.Now()
	logger := r.logger.With("job", string(name))
	logger.Info("job started")

	counts, err := r.run(ctx, name)
	summary := Summary{Job: name, Duration: time.Since(start), Counts: counts}

	outcome := "success"
	if err != nil {
		outcome = "error"
		logger.Error("job failed", "error", err, "duration", summary.Duration)
		telemetry.CaptureError(err, map[string]interface{}{"job": string(name)})
	} else {
		logger.Info("job completed", "duration", summary.Duration)
	}
	telemetry.Business.RecordJob(string(name), outcome, summary.Duration)

	return summary, err
}

func (r *Runner) run(ctx context.Context, name JobName) (map[string]int, error) {
	switch name {
	case JobRecurring:
		res, err := r.generator.Run(ctx, r.now().In(r.loc))
		return map[string]int{
			"generated": res.Generated,
			"disabled":  res.Disabled,
			"skipped":   res.Skipped,
			"failed":    res.Failed,
		}, err
	case JobAppointmentReminders:
		return reminderCounts(r.reminders.Appointments(ctx))
	case JobPaymentReminders:
		return reminderCounts(r.reminders.Payments(ctx))
	case JobQuoteFollowups:
		return reminderCounts(r.reminders.QuoteFollowups(ctx))
	default:
		return nil, domain.Errorf(domain.ENOTFOUND, "jobs.Run", "unknown job: %s", name)
	}
}

func reminderCounts(res reminder.Result, err error) (map[string]int, error) {
	return map[string]int{
		"sent":    res.Sent,
		"failed":  res.Failed,
		"skipped": res.Skipped,
	}, err
}
