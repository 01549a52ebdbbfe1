package billing

import (
	"time"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/webhook"
)

// WebhookVerifier authenticates a raw webhook body and decodes the event.
type WebhookVerifier interface {
	ConstructEvent(payload []byte, signature, secret string) (stripe.Event, error)
}

// StripeVerifier verifies Stripe-Signature headers with the Stripe SDK.
type StripeVerifier struct {
	// Tolerance is the maximum age of a signed payload. Zero uses the SDK
	// default of five minutes.
	Tolerance time.Duration
}

// NewStripeVerifier creates a verifier using the SDK's default tolerance.
func NewStripeVerifier() *StripeVerifier {
	return &StripeVerifier{}
}

// ConstructEvent checks the signature and returns the parsed event.
//
// The API version check is skipped: Connect events carry the connected
// account's pinned version, which need not match the SDK's.
func (v *StripeVerifier) ConstructEvent(payload []byte, signature, secret string) (stripe.Event, error) {
	if secret == "" {
		return stripe.Event{}, ErrWebhookSecretNotConfigured
	}
	if signature == "" {
		return stripe.Event{}, ErrMissingSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, secret, webhook.ConstructEventOptions{
		Tolerance:                v.Tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return stripe.Event{}, &VerificationError{Err: err}
	}
	return event, nil
}

// VerificationError wraps the SDK's reason for rejecting a payload.
type VerificationError struct {
	Err error
}

func (e *VerificationError) Error() string {
	return ErrInvalidWebhookSignature.Error() + ": " + e.Err.Error()
}

func (e *VerificationError) Is(target error) bool {
	return target == ErrInvalidWebhookSignature
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

var _ WebhookVerifier = (*StripeVerifier)(nil)
