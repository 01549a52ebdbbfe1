package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/recurring"
	"github.com/dukerupert/tradeline/internal/reminder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	today  time.Time
	result recurring.Result
	err    error
}

func (f *fakeGenerator) Run(ctx context.Context, today time.Time) (recurring.Result, error) {
	f.today = today
	return f.result, f.err
}

type fakeReminders struct {
	calls  []string
	result reminder.Result
	err    error
}

func (f *fakeReminders) Appointments(ctx context.Context) (reminder.Result, error) {
	f.calls = append(f.calls, "appointments")
	return f.result, f.err
}

func (f *fakeReminders) Payments(ctx context.Context) (reminder.Result, error) {
	f.calls = append(f.calls, "payments")
	return f.result, f.err
}

func (f *fakeReminders) QuoteFollowups(ctx context.Context) (reminder.Result, error) {
	f.calls = append(f.calls, "quote_followups")
	return f.result, f.err
}

func newTestRunner(gen *fakeGenerator, rem *fakeReminders, loc *time.Location) *Runner {
	return NewRunner(gen, rem, loc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRunner_Recurring(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	gen := &fakeGenerator{result: recurring.Result{Generated: 3, Disabled: 1, Failed: 1}}
	r := newTestRunner(gen, &fakeReminders{}, london)
	// 23:30 UTC in summer is already the next day in London.
	r.now = func() time.Time { return time.Date(2025, 6, 30, 23, 30, 0, 0, time.UTC) }

	summary, err := r.Run(context.Background(), JobRecurring)
	require.NoError(t, err)

	assert.Equal(t, JobRecurring, summary.Job)
	assert.Equal(t, map[string]int{"generated": 3, "disabled": 1, "skipped": 0, "failed": 1}, summary.Counts)
	assert.Equal(t, 1, gen.today.Day())
	assert.Equal(t, time.July, gen.today.Month())
}

func TestRunner_Reminders(t *testing.T) {
	tests := []struct {
		job  JobName
		call string
	}{
		{JobAppointmentReminders, "appointments"},
		{JobPaymentReminders, "payments"},
		{JobQuoteFollowups, "quote_followups"},
	}

	for _, tt := range tests {
		t.Run(string(tt.job), func(t *testing.T) {
			rem := &fakeReminders{result: reminder.Result{Sent: 2, Skipped: 1}}
			r := newTestRunner(&fakeGenerator{}, rem, nil)

			summary, err := r.Run(context.Background(), tt.job)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.call}, rem.calls)
			assert.Equal(t, map[string]int{"sent": 2, "failed": 0, "skipped": 1}, summary.Counts)
		})
	}
}

func TestRunner_JobError(t *testing.T) {
	rem := &fakeReminders{err: errors.New("preferences query failed")}
	r := newTestRunner(&fakeGenerator{}, rem, nil)

	_, err := r.Run(context.Background(), JobPaymentReminders)
	assert.Error(t, err)
}

func TestRunner_UnknownJob(t *testing.T) {
	r := newTestRunner(&fakeGenerator{}, &fakeReminders{}, nil)

	_, err := r.Run(context.Background(), JobName("cleanup"))
	assert.True(t, domain.IsCode(err, domain.ENOTFOUND))
}

func TestParseJobName(t *testing.T) {
	for _, name := range JobNames {
		got, err := ParseJobName(string(name))
		require.NoError(t, err)
		assert.Equal(t, name, got)
	}

	_, err := ParseJobName("invoices")
	assert.True(t, domain.IsCode(err, domain.ENOTFOUND))
}
