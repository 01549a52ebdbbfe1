// Package reminder sends the scheduled customer reminders: appointment
// reminders, overdue-invoice payment reminders and quote follow-ups.
//
// Every dispatcher follows the same pipeline. Opted-in preferences are
// loaded, then each user's candidates, and each candidate is claimed with a
// conditional write before the email goes out. Losing a claim means another
// run already handled the row.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/email"
	"github.com/dukerupert/tradeline/internal/repository"
	"github.com/dukerupert/tradeline/internal/telemetry"
	"github.com/jackc/pgx/v5/pgtype"
)

// Reminder kinds, used as metric labels.
const (
	KindAppointment = "appointment"
	KindPayment     = "payment"
	KindFollowup    = "quote_followup"
)

// Mailer renders and delivers email. *email.Service implements it.
type Mailer interface {
	Compose(to string, t email.Template) (*email.Email, error)
	Send(ctx context.Context, e *email.Email) (string, error)
}

// Result counts what one dispatcher run did. Skipped rows were claimed by
// another run.
type Result struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

type outcome int

const (
	outcomeSent outcome = iota
	outcomeSkipped
	outcomeFailed
	outcomeIgnored // not due for a reminder on this run
)

// Config carries the settings shared by all dispatchers.
type Config struct {
	SiteURL  string
	Location *time.Location
}

type Dispatcher struct {
	store   repository.Store
	mailer  Mailer
	siteURL string
	loc     *time.Location
	logger  *slog.Logger

	// now is replaceable in tests.
	now func() time.Time
}

func NewDispatcher(store repository.Store, mailer Mailer, cfg Config, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Dispatcher{
		store:   store,
		mailer:  mailer,
		siteURL: strings.TrimRight(cfg.SiteURL, "/"),
		loc:     loc,
		logger:  logger,
		now:     time.Now,
	}
}

// pipeline describes one reminder kind. T is the candidate row type.
type pipeline[T any] struct {
	kind        string
	preferences func(ctx context.Context) ([]repository.ReminderPreference, error)
	candidates  func(ctx context.Context, pref repository.ReminderPreference) ([]T, error)
	deliver     func(ctx context.Context, owner repository.Profile, pref repository.ReminderPreference, c T) (outcome, error)
}

// dispatch runs p for every opted-in user. A failing user or candidate is
// logged and counted; only a failure to load preferences aborts the run.
func dispatch[T any](ctx context.Context, d *Dispatcher, p pipeline[T]) (Result, error) {
	var result Result
	logger := d.logger.With("reminder", p.kind)

	prefs, err := p.preferences(ctx)
	if err != nil {
		return result, domain.Internal(err, "reminder."+p.kind, "failed to load reminder preferences")
	}

	for _, pref := range prefs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		userID := repository.UUIDFromPg(pref.UserID)
		userLogger := logger.With("user_id", userID)

		owner, err := d.store.GetProfile(ctx, pref.UserID)
		if err != nil {
			userLogger.Error("failed to load profile", "error", err)
			telemetry.CaptureErrorWithUser(err, userID.String(), map[string]interface{}{"reminder": p.kind})
			continue
		}

		rows, err := p.candidates(ctx, pref)
		if err != nil {
			userLogger.Error("failed to load reminder candidates", "error", err)
			telemetry.CaptureErrorWithUser(err, userID.String(), map[string]interface{}{"reminder": p.kind})
			continue
		}

		for _, row := range rows {
			out, err := p.deliver(ctx, owner, pref, row)
			switch out {
			case outcomeSent:
				result.Sent++
				telemetry.Business.RecordReminder(p.kind, true)
			case outcomeSkipped:
				result.Skipped++
			case outcomeFailed:
				result.Failed++
				telemetry.Business.RecordReminder(p.kind, false)
				userLogger.Error("failed to send reminder", "error", err)
				telemetry.CaptureErrorWithUser(err, userID.String(), map[string]interface{}{"reminder": p.kind})
			}
		}
	}

	logger.Info("reminder run complete",
		"users", len(prefs),
		"sent", result.Sent,
		"failed", result.Failed,
		"skipped", result.Skipped,
	)
	return result, nil
}

// brand sets the sender display name and reply address to the business.
func brand(msg *email.Email, owner repository.Profile) {
	if owner.BusinessName != "" {
		msg.FromName = owner.BusinessName
	}
	if owner.Email != "" {
		msg.ReplyTo = owner.Email
	}
}

func (d *Dispatcher) shareURL(prefix, token string) string {
	if token == "" || d.siteURL == "" {
		return ""
	}
	return d.siteURL + prefix + token
}

// sendLogged sends msg and moves the claimed email_log row to sent or
// failed.
func (d *Dispatcher) sendLogged(ctx context.Context, logID pgtype.UUID, msg *email.Email) (outcome, error) {
	messageID, sendErr := d.mailer.Send(ctx, msg)
	if sendErr != nil {
		if err := d.store.MarkEmailLogFailed(ctx, repository.MarkEmailLogFailedParams{
			ID:    logID,
			Error: repository.Text(sendErr.Error()),
		}); err != nil {
			d.logger.Error("failed to mark email log failed", "email_log_id", repository.UUIDFromPg(logID), "error", err)
		}
		return outcomeFailed, fmt.Errorf("send reminder: %w", sendErr)
	}

	if err := d.store.MarkEmailLogSent(ctx, repository.MarkEmailLogSentParams{
		ID:                logID,
		ProviderMessageID: repository.Text(messageID),
	}); err != nil {
		d.logger.Error("failed to mark email log sent", "email_log_id", repository.UUIDFromPg(logID), "error", err)
	}
	return outcomeSent, nil
}
