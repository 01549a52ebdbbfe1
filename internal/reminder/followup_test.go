package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/dukerupert/tradeline/internal/email"
	"github.com/dukerupert/tradeline/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func staleQuote(userID pgtype.UUID) repository.ListStaleSentQuotesRow {
	return repository.ListStaleSentQuotesRow{
		ID:            repository.UUID(uuid.New()),
		UserID:        userID,
		QuoteNumber:   "Q-0007",
		Title:         "Bathroom refit",
		Total:         decimal.RequireFromString("2400.00"),
		ShareToken:    pgtype.Text{String: "qtok", Valid: true},
		CustomerName:  "Jane",
		CustomerEmail: pgtype.Text{String: "jane@example.com", Valid: true},
	}
}

func followupPrefs(userID pgtype.UUID, days int32) []repository.ReminderPreference {
	return []repository.ReminderPreference{{
		UserID:               userID,
		QuoteFollowupEnabled: true,
		QuoteFollowupDays:    days,
	}}
}

func TestQuoteFollowups_SendsWithShareLink(t *testing.T) {
	mailer := &fakeMailer{}
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	d, store := newTestDispatcher(t, mailer, now)

	userID := repository.UUID(uuid.New())
	q := staleQuote(userID)
	logID := repository.UUID(uuid.New())

	store.EXPECT().ListQuoteFollowupPreferences(gomock.Any()).Return(followupPrefs(userID, 3), nil)
	store.EXPECT().GetProfile(gomock.Any(), userID).Return(owner(userID), nil)
	store.EXPECT().ListStaleSentQuotes(gomock.Any(), repository.ListStaleSentQuotesParams{
		UserID:    userID,
		UpdatedAt: repository.Timestamptz(now.Add(-72 * time.Hour)),
	}).Return([]repository.ListStaleSentQuotesRow{q}, nil)
	store.EXPECT().ClaimQuoteFollowup(gomock.Any(), repository.ClaimQuoteFollowupParams{
		UserID:         userID,
		QuoteID:        q.ID,
		RecipientEmail: "jane@example.com",
		Subject:        "Following up on quote Q-0007 from Smith Plumbing",
	}).Return(logID, nil)
	store.EXPECT().MarkEmailLogSent(gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.QuoteFollowups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Sent: 1}, result)

	tmpl := mailer.composed[0].(email.QuoteFollowupEmail)
	assert.Equal(t, "https://app.example.com/q/qtok", tmpl.QuoteURL)
}

func TestQuoteFollowups_AtMostOncePerQuote(t *testing.T) {
	mailer := &fakeMailer{}
	d, store := newTestDispatcher(t, mailer, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))

	userID := repository.UUID(uuid.New())
	q := staleQuote(userID)
	followedUp := map[pgtype.UUID]bool{}

	store.EXPECT().ListQuoteFollowupPreferences(gomock.Any()).Return(followupPrefs(userID, 3), nil).Times(3)
	store.EXPECT().GetProfile(gomock.Any(), userID).Return(owner(userID), nil).Times(3)
	store.EXPECT().ListStaleSentQuotes(gomock.Any(), gomock.Any()).Return([]repository.ListStaleSentQuotesRow{q}, nil).Times(3)
	store.EXPECT().ClaimQuoteFollowup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.ClaimQuoteFollowupParams) (pgtype.UUID, error) {
			if followedUp[arg.QuoteID] {
				return pgtype.UUID{}, pgx.ErrNoRows
			}
			followedUp[arg.QuoteID] = true
			return repository.UUID(uuid.New()), nil
		}).Times(3)
	store.EXPECT().MarkEmailLogSent(gomock.Any(), gomock.Any()).Return(nil)

	var total Result
	for i := 0; i < 3; i++ {
		result, err := d.QuoteFollowups(context.Background())
		require.NoError(t, err)
		total.Sent += result.Sent
		total.Skipped += result.Skipped
	}

	assert.Equal(t, Result{Sent: 1, Skipped: 2}, total)
	assert.Len(t, mailer.sent, 1)
}
