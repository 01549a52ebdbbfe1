package billing

import (
	"github.com/stripe/stripe-go/v83"
)

// MockVerifier is a WebhookVerifier for handler tests. It returns Event
// unless VerifyFunc is set.
type MockVerifier struct {
	Event      stripe.Event
	VerifyFunc func(payload []byte, signature, secret string) (stripe.Event, error)

	Calls []MockVerifierCall
}

// MockVerifierCall records the arguments of one ConstructEvent call.
type MockVerifierCall struct {
	Signature string
	Secret    string
}

func (m *MockVerifier) ConstructEvent(payload []byte, signature, secret string) (stripe.Event, error) {
	m.Calls = append(m.Calls, MockVerifierCall{Signature: signature, Secret: secret})
	if m.VerifyFunc != nil {
		return m.VerifyFunc(payload, signature, secret)
	}
	return m.Event, nil
}

var _ WebhookVerifier = (*MockVerifier)(nil)
