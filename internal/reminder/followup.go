package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dukerupert/tradeline/internal/email"
	"github.com/dukerupert/tradeline/internal/repository"
	"github.com/jackc/pgx/v5"
)

// QuoteFollowups nudges customers about quotes that have sat unanswered for
// longer than the business's follow-up delay. A quote is followed up at
// most once.
func (d *Dispatcher) QuoteFollowups(ctx context.Context) (Result, error) {
	now := d.now()

	return dispatch(ctx, d, pipeline[repository.ListStaleSentQuotesRow]{
		kind:        KindFollowup,
		preferences: d.store.ListQuoteFollowupPreferences,
		candidates: func(ctx context.Context, pref repository.ReminderPreference) ([]repository.ListStaleSentQuotesRow, error) {
			cutoff := now.Add(-time.Duration(pref.QuoteFollowupDays) * 24 * time.Hour)
			return d.store.ListStaleSentQuotes(ctx, repository.ListStaleSentQuotesParams{
				UserID:    pref.UserID,
				UpdatedAt: repository.Timestamptz(cutoff),
			})
		},
		deliver: d.deliverFollowup,
	})
}

func (d *Dispatcher) deliverFollowup(ctx context.Context, owner repository.Profile, _ repository.ReminderPreference, q repository.ListStaleSentQuotesRow) (outcome, error) {
	to := q.CustomerEmail.String
	msg, err := d.mailer.Compose(to, email.QuoteFollowupEmail{
		BusinessName: owner.BusinessName,
		CustomerName: q.CustomerName,
		QuoteNumber:  q.QuoteNumber,
		Title:        q.Title,
		Total:        q.Total,
		QuoteURL:     d.shareURL("/q/", q.ShareToken.String),
	})
	if err != nil {
		return outcomeFailed, fmt.Errorf("render quote follow-up: %w", err)
	}
	brand(msg, owner)

	logID, err := d.store.ClaimQuoteFollowup(ctx, repository.ClaimQuoteFollowupParams{
		UserID:         q.UserID,
		QuoteID:        q.ID,
		RecipientEmail: to,
		Subject:        msg.Subject,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return outcomeSkipped, nil
	}
	if err != nil {
		return outcomeFailed, fmt.Errorf("claim quote follow-up: %w", err)
	}

	return d.sendLogged(ctx, logID, msg)
}
