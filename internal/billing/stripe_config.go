package billing

import (
	"errors"
	"strings"
)

// StripeConfig contains configuration for the Stripe webhook endpoints.
type StripeConfig struct {
	// SecretKey is the Stripe secret key (sk_test_... or sk_live_...)
	SecretKey string

	// WebhookSecret signs events for the platform account (/webhooks/stripe)
	WebhookSecret string

	// ConnectWebhookSecret signs events from connected accounts
	// (/webhooks/stripe/connect). Stripe issues a separate secret per endpoint.
	ConnectWebhookSecret string

	// Prices identifies the platform's subscription prices
	Prices PriceCatalog
}

// Validate checks that required configuration is present.
func (c *StripeConfig) Validate() error {
	if c.WebhookSecret == "" {
		return errors.New("stripe: webhook secret is required")
	}
	if c.ConnectWebhookSecret == "" {
		return errors.New("stripe: connect webhook secret is required")
	}
	return nil
}

// IsTestMode returns true if using test mode API keys.
func (c *StripeConfig) IsTestMode() bool {
	return strings.HasPrefix(c.SecretKey, "sk_test_")
}
