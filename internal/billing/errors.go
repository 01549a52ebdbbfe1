package billing

import (
	"errors"
)

var (
	// ErrMissingSignature is returned when the Stripe-Signature header is absent.
	ErrMissingSignature = errors.New("billing: missing webhook signature")

	// ErrInvalidWebhookSignature is returned when webhook signature verification fails.
	ErrInvalidWebhookSignature = errors.New("billing: invalid webhook signature")

	// ErrWebhookSecretNotConfigured is returned when an endpoint has no signing
	// secret. Events are never accepted unverified.
	ErrWebhookSecretNotConfigured = errors.New("billing: webhook secret not configured")
)
