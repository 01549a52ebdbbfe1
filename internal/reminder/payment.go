package reminder

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/email"
	"github.com/dukerupert/tradeline/internal/repository"
	"github.com/jackc/pgx/v5"
)

// paymentReminderWindow suppresses a second payment reminder for the same
// invoice while a pending or sent one is younger than this.
const paymentReminderWindow = 24 * time.Hour

// Payments emails customers whose invoice is overdue by exactly one of the
// day counts the business configured. Days are counted in the configured
// time zone.
func (d *Dispatcher) Payments(ctx context.Context) (Result, error) {
	now := d.now()
	today := now.In(d.loc)

	return dispatch(ctx, d, pipeline[repository.ListOverdueInvoicesRow]{
		kind:        KindPayment,
		preferences: d.store.ListPaymentReminderPreferences,
		candidates: func(ctx context.Context, pref repository.ReminderPreference) ([]repository.ListOverdueInvoicesRow, error) {
			return d.store.ListOverdueInvoices(ctx, repository.ListOverdueInvoicesParams{
				UserID:  pref.UserID,
				DueDate: repository.Date(today),
			})
		},
		deliver: func(ctx context.Context, owner repository.Profile, pref repository.ReminderPreference, inv repository.ListOverdueInvoicesRow) (outcome, error) {
			return d.deliverPayment(ctx, now, today, owner, pref, inv)
		},
	})
}

// DaysOverdue counts calendar days from the due date to today.
func DaysOverdue(dueDate, today time.Time) int {
	return domain.DaysBetween(dueDate, today)
}

func (d *Dispatcher) deliverPayment(ctx context.Context, now, today time.Time, owner repository.Profile, pref repository.ReminderPreference, inv repository.ListOverdueInvoicesRow) (outcome, error) {
	daysOverdue := DaysOverdue(inv.DueDate.Time, today)
	if !slices.Contains(pref.PaymentReminderDays, int32(daysOverdue)) {
		return outcomeIgnored, nil
	}

	to := inv.CustomerEmail.String
	msg, err := d.mailer.Compose(to, email.PaymentReminderEmail{
		BusinessName:  owner.BusinessName,
		CustomerName:  inv.CustomerName,
		InvoiceNumber: inv.QuoteNumber,
		Total:         inv.Total,
		DueDate:       inv.DueDate.Time,
		DaysOverdue:   daysOverdue,
		InvoiceURL:    d.shareURL("/i/", inv.ShareToken.String),
	})
	if err != nil {
		return outcomeFailed, fmt.Errorf("render payment reminder: %w", err)
	}
	brand(msg, owner)

	logID, err := d.store.ClaimPaymentReminder(ctx, repository.ClaimPaymentReminderParams{
		UserID:         inv.UserID,
		QuoteID:        inv.ID,
		RecipientEmail: to,
		Subject:        msg.Subject,
		Since:          repository.Timestamptz(now.Add(-paymentReminderWindow)),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return outcomeSkipped, nil
	}
	if err != nil {
		return outcomeFailed, fmt.Errorf("claim payment reminder: %w", err)
	}

	return d.sendLogged(ctx, logID, msg)
}
