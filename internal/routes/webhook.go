package routes

import (
	"github.com/dukerupert/tradeline/internal/router"
)

// RegisterWebhookRoutes registers all webhook routes.
//
// Note: Webhook routes do NOT have authentication middleware.
// Each webhook handler is responsible for verifying the request
// signature (e.g., Stripe signature verification).
func RegisterWebhookRoutes(r *router.Router, deps WebhookDeps) {
	r.Post("/webhooks/stripe", deps.StripeHandler.HandlePlatform)
	r.Post("/webhooks/stripe/connect", deps.StripeHandler.HandleConnect)
}
