package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/jobs"
	"github.com/stretchr/testify/assert"
)

type fakeRunner struct {
	summary jobs.Summary
	err     error
	got     jobs.JobName
}

func (f *fakeRunner) Run(ctx context.Context, name jobs.JobName) (jobs.Summary, error) {
	f.got = name
	s := f.summary
	s.Job = name
	return s, f.err
}

func TestJobsHandler_Run(t *testing.T) {
	runner := &fakeRunner{summary: jobs.Summary{
		Duration: 1500 * time.Millisecond,
		Counts:   map[string]int{"sent": 3, "failed": 1, "skipped": 0},
	}}
	h := NewJobsHandler(runner, nil)

	rr := httptest.NewRecorder()
	h.Run(jobs.JobPaymentReminders)(rr, newRequest(t, "/jobs/payment-reminders", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, jobs.JobPaymentReminders, runner.got)

	body := decodeBody(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "payment-reminders", body["job"])
	assert.Equal(t, float64(3), body["sent"])
	assert.Equal(t, float64(1), body["failed"])
	assert.Equal(t, float64(1500), body["duration_ms"])
}

func TestJobsHandler_HardFailure(t *testing.T) {
	runner := &fakeRunner{err: domain.Internal(errors.New("connection refused"), "recurring.Run", "failed to list templates")}
	h := NewJobsHandler(runner, nil)

	rr := httptest.NewRecorder()
	h.Run(jobs.JobRecurring)(rr, newRequest(t, "/jobs/recurring", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeBody(t, rr)
	assert.NotContains(t, body["error"], "connection refused")
	assert.Nil(t, body["success"])
}
