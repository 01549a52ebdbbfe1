package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dukerupert/tradeline/internal/handler"
	"github.com/dukerupert/tradeline/internal/jobs"
)

// JobRunner runs one named cron job. *jobs.Runner implements it.
type JobRunner interface {
	Run(ctx context.Context, name jobs.JobName) (jobs.Summary, error)
}

// JobsHandler exposes the cron jobs as POST /jobs/{name}. Authentication
// is done by middleware.RequireCronSecret; the request body is ignored.
type JobsHandler struct {
	runner JobRunner
	logger *slog.Logger
}

func NewJobsHandler(runner JobRunner, logger *slog.Logger) *JobsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobsHandler{runner: runner, logger: logger}
}

// Run returns the handler for one job. The response carries the job's
// counters at the top level, e.g. {"success":true,"job":"recurring","generated":2,...}.
func (h *JobsHandler) Run(name jobs.JobName) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := h.runner.Run(r.Context(), name)
		if err != nil {
			handler.ErrorResponse(w, r, err)
			return
		}

		body := make(map[string]any, len(summary.Counts)+3)
		for k, v := range summary.Counts {
			body[k] = v
		}
		body["success"] = true
		body["job"] = string(summary.Job)
		body["duration_ms"] = summary.Duration.Milliseconds()

		handler.JSON(w, http.StatusOK, body)
	}
}
