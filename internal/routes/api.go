package routes

import (
	"github.com/dukerupert/tradeline/internal/router"
)

// RegisterAPIRoutes registers the user-facing API. Every route requires a
// valid access token.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	api := r.Group(deps.Auth)

	api.Post("/api/email/send", deps.EmailHandler.Send, deps.EmailLimits...)
	api.Post("/api/timesheets/notify", deps.EmailHandler.NotifyTimesheet, deps.EmailLimits...)
	api.Post("/api/ai", deps.AIHandler.Handle, deps.AILimits...)
}
