package reminder

import (
	"context"
	"errors"
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

func overdueInvoice(userID pgtype.UUID, due time.Time) repository.ListOverdueInvoicesRow {
	return repository.ListOverdueInvoicesRow{
		ID:            repository.UUID(uuid.New()),
		UserID:        userID,
		QuoteNumber:   "INV-0042",
		DueDate:       pgtype.Date{Time: due, Valid: true},
		Total:         decimal.RequireFromString("150.00"),
		ShareToken:    pgtype.Text{String: "tok42", Valid: true},
		CustomerName:  "Jane",
		CustomerEmail: pgtype.Text{String: "jane@example.com", Valid: true},
	}
}

func paymentPrefs(userID pgtype.UUID, days ...int32) []repository.ReminderPreference {
	return []repository.ReminderPreference{{
		UserID:                  userID,
		PaymentRemindersEnabled: true,
		PaymentReminderDays:     days,
	}}
}

func TestPayments_ExactThresholdSendsOnce(t *testing.T) {
	mailer := &fakeMailer{}
	now := time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)
	d, store := newTestDispatcher(t, mailer, now)

	userID := repository.UUID(uuid.New())
	inv := overdueInvoice(userID, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	logID := repository.UUID(uuid.New())

	store.EXPECT().ListPaymentReminderPreferences(gomock.Any()).Return(paymentPrefs(userID, 7, 14), nil)
	store.EXPECT().GetProfile(gomock.Any(), userID).Return(owner(userID), nil)
	store.EXPECT().ListOverdueInvoices(gomock.Any(), repository.ListOverdueInvoicesParams{
		UserID:  userID,
		DueDate: pgtype.Date{Time: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), Valid: true},
	}).Return([]repository.ListOverdueInvoicesRow{inv}, nil)
	store.EXPECT().ClaimPaymentReminder(gomock.Any(), repository.ClaimPaymentReminderParams{
		UserID:         userID,
		QuoteID:        inv.ID,
		RecipientEmail: "jane@example.com",
		Subject:        "Payment reminder: invoice INV-0042 is overdue",
		Since:          repository.Timestamptz(now.Add(-24 * time.Hour)),
	}).Return(logID, nil)
	store.EXPECT().MarkEmailLogSent(gomock.Any(), repository.MarkEmailLogSentParams{
		ID:                logID,
		ProviderMessageID: pgtype.Text{String: "msg_1", Valid: true},
	}).Return(nil)

	result, err := d.Payments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Sent: 1}, result)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Smith Plumbing", mailer.sent[0].FromName)
	assert.Equal(t, "owner@smithplumbing.test", mailer.sent[0].ReplyTo)

	tmpl, ok := mailer.composed[0].(email.PaymentReminderEmail)
	require.True(t, ok)
	assert.Equal(t, 7, tmpl.DaysOverdue)
	assert.Equal(t, "https://app.example.com/i/tok42", tmpl.InvoiceURL)
}

func TestPayments_NonThresholdDayIsIgnored(t *testing.T) {
	mailer := &fakeMailer{}
	d, store := newTestDispatcher(t, mailer, time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC))

	userID := repository.UUID(uuid.New())
	store.EXPECT().ListPaymentReminderPreferences(gomock.Any()).Return(paymentPrefs(userID, 7), nil)
	store.EXPECT().GetProfile(gomock.Any(), userID).Return(owner(userID), nil)
	store.EXPECT().ListOverdueInvoices(gomock.Any(), gomock.Any()).Return([]repository.ListOverdueInvoicesRow{
		overdueInvoice(userID, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)),
		overdueInvoice(userID, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)),
	}, nil)

	result, err := d.Payments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{}, result)
	assert.Empty(t, mailer.composed)
}

func TestPayments_SameDayRerunSendsNothing(t *testing.T) {
	mailer := &fakeMailer{}
	d, store := newTestDispatcher(t, mailer, time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC))

	userID := repository.UUID(uuid.New())
	inv := overdueInvoice(userID, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	claimed := map[pgtype.UUID]bool{}

	store.EXPECT().ListPaymentReminderPreferences(gomock.Any()).Return(paymentPrefs(userID, 7), nil).Times(2)
	store.EXPECT().GetProfile(gomock.Any(), userID).Return(owner(userID), nil).Times(2)
	store.EXPECT().ListOverdueInvoices(gomock.Any(), gomock.Any()).Return([]repository.ListOverdueInvoicesRow{inv}, nil).Times(2)
	store.EXPECT().ClaimPaymentReminder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.ClaimPaymentReminderParams) (pgtype.UUID, error) {
			if claimed[arg.QuoteID] {
				return pgtype.UUID{}, pgx.ErrNoRows
			}
			claimed[arg.QuoteID] = true
			return repository.UUID(uuid.New()), nil
		}).Times(2)
	store.EXPECT().MarkEmailLogSent(gomock.Any(), gomock.Any()).Return(nil)

	first, err := d.Payments(context.Background())
	require.NoError(t, err)
	second, err := d.Payments(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Result{Sent: 1}, first)
	assert.Equal(t, Result{Skipped: 1}, second)
	assert.Len(t, mailer.sent, 1)
}

func TestPayments_SendFailureMarksLogFailed(t *testing.T) {
	mailer := &fakeMailer{sendErr: errors.New("provider returned 500")}
	d, store := newTestDispatcher(t, mailer, time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC))

	userID := repository.UUID(uuid.New())
	logID := repository.UUID(uuid.New())

	store.EXPECT().ListPaymentReminderPreferences(gomock.Any()).Return(paymentPrefs(userID, 7), nil)
	store.EXPECT().GetProfile(gomock.Any(), userID).Return(owner(userID), nil)
	store.EXPECT().ListOverdueInvoices(gomock.Any(), gomock.Any()).Return([]repository.ListOverdueInvoicesRow{
		overdueInvoice(userID, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
	}, nil)
	store.EXPECT().ClaimPaymentReminder(gomock.Any(), gomock.Any()).Return(logID, nil)
	store.EXPECT().MarkEmailLogFailed(gomock.Any(), repository.MarkEmailLogFailedParams{
		ID:    logID,
		Error: pgtype.Text{String: "provider returned 500", Valid: true},
	}).Return(nil)

	result, err := d.Payments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Failed: 1}, result)
}

func TestPayments_DaysCountedInBusinessTimeZone(t *testing.T) {
	mailer := &fakeMailer{}
	// 23:30 UTC on 7 June is already 8 June in London (BST).
	now := time.Date(2025, 6, 7, 23, 30, 0, 0, time.UTC)
	d, store := newTestDispatcher(t, mailer, now)

	userID := repository.UUID(uuid.New())
	store.EXPECT().ListPaymentReminderPreferences(gomock.Any()).Return(paymentPrefs(userID, 7), nil)
	store.EXPECT().GetProfile(gomock.Any(), userID).Return(owner(userID), nil)
	store.EXPECT().ListOverdueInvoices(gomock.Any(), repository.ListOverdueInvoicesParams{
		UserID:  userID,
		DueDate: pgtype.Date{Time: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), Valid: true},
	}).Return([]repository.ListOverdueInvoicesRow{
		overdueInvoice(userID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	}, nil)
	store.EXPECT().ClaimPaymentReminder(gomock.Any(), gomock.Any()).Return(repository.UUID(uuid.New()), nil)
	store.EXPECT().MarkEmailLogSent(gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.Payments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Sent: 1}, result)
}

func TestDaysOverdue(t *testing.T) {
	tests := []struct {
		name  string
		due   time.Time
		today time.Time
		want  int
	}{
		{"one week", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 8, 18, 0, 0, 0, time.UTC), 7},
		{"across month end", time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 2, 9, 0, 0, 0, time.UTC), 3},
		{"due today", time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 8, 23, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysOverdue(tt.due, tt.today))
		})
	}
}
