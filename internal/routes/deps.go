package routes

import (
	"github.com/dukerupert/tradeline/internal/handler/api"
	"github.com/dukerupert/tradeline/internal/handler/webhook"
	"github.com/dukerupert/tradeline/internal/router"
)

// WebhookDeps contains dependencies for webhook routes
type WebhookDeps struct {
	StripeHandler *webhook.StripeHandler
}

// JobDeps contains dependencies for the cron job routes
type JobDeps struct {
	Handler *api.JobsHandler

	// Auth checks the cron bearer secret.
	Auth router.Middleware
}

// APIDeps contains dependencies for authenticated user routes
type APIDeps struct {
	EmailHandler *api.EmailHandler
	AIHandler    *api.AIHandler

	// Auth verifies the caller's access token.
	Auth router.Middleware

	// EmailLimits wrap the email routes (body cap for attachments, timeout).
	EmailLimits []router.Middleware

	// AILimits wrap the AI route only. The handler enforces its own body cap.
	AILimits []router.Middleware
}
