package routes

import (
	"github.com/dukerupert/tradeline/internal/jobs"
	"github.com/dukerupert/tradeline/internal/router"
)

// RegisterJobRoutes registers POST /jobs/{name} for every cron job. The
// external scheduler authenticates with the cron secret.
func RegisterJobRoutes(r *router.Router, deps JobDeps) {
	cron := r.Group(deps.Auth)

	for _, name := range jobs.JobNames {
		cron.Post("/jobs/"+string(name), deps.Handler.Run(name))
	}
}
