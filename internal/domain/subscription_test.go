package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name            string
		from            SubscriptionStatus
		to              SubscriptionStatus
		newSubscription bool
		want            bool
	}{
		{"first event trialing", SubscriptionNone, SubscriptionTrialing, true, true},
		{"trial converts", SubscriptionTrialing, SubscriptionActive, false, true},
		{"active goes past due", SubscriptionActive, SubscriptionPastDue, false, true},
		{"past due recovers", SubscriptionPastDue, SubscriptionActive, false, true},
		{"past due cancels", SubscriptionPastDue, SubscriptionCancelled, false, true},
		{"active cancels", SubscriptionActive, SubscriptionCancelled, false, true},
		{"replay is allowed", SubscriptionActive, SubscriptionActive, false, true},
		{"active back to trial rejected", SubscriptionActive, SubscriptionTrialing, false, false},
		{"stale update after cancel rejected", SubscriptionCancelled, SubscriptionActive, false, false},
		{"stale past due after cancel rejected", SubscriptionCancelled, SubscriptionPastDue, true, false},
		{"resubscribe after cancel", SubscriptionCancelled, SubscriptionActive, true, true},
		{"resubscribe with trial", SubscriptionCancelled, SubscriptionTrialing, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to, tt.newSubscription))
		})
	}
}

func TestStatusFromStripe(t *testing.T) {
	tests := []struct {
		in     string
		want   SubscriptionStatus
		wantOK bool
	}{
		{"trialing", SubscriptionTrialing, true},
		{"active", SubscriptionActive, true},
		{"past_due", SubscriptionPastDue, true},
		{"unpaid", SubscriptionPastDue, true},
		{"canceled", SubscriptionCancelled, true},
		{"incomplete_expired", SubscriptionCancelled, true},
		{"incomplete", SubscriptionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := StatusFromStripe(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
