package domain

// SubscriptionStatus is the platform subscription state stored on a profile.
type SubscriptionStatus string

const (
	SubscriptionNone      SubscriptionStatus = ""
	SubscriptionTrialing  SubscriptionStatus = "trialing"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPastDue   SubscriptionStatus = "past_due"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// SubscriptionTier is derived from the subscription's base price.
type SubscriptionTier string

const (
	TierNone SubscriptionTier = ""
	TierSolo SubscriptionTier = "solo"
	TierTeam SubscriptionTier = "team"
)

// StatusFromStripe maps a Stripe subscription status onto the states the
// application tracks. ok is false for statuses that carry no state change
// (e.g. "incomplete" before the first payment).
func StatusFromStripe(status string) (SubscriptionStatus, bool) {
	switch status {
	case "trialing":
		return SubscriptionTrialing, true
	case "active":
		return SubscriptionActive, true
	case "past_due", "unpaid", "paused":
		return SubscriptionPastDue, true
	case "canceled", "incomplete_expired":
		return SubscriptionCancelled, true
	default:
		return SubscriptionNone, false
	}
}

var subscriptionTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	SubscriptionNone:     {SubscriptionTrialing, SubscriptionActive, SubscriptionPastDue, SubscriptionCancelled},
	SubscriptionTrialing: {SubscriptionActive, SubscriptionPastDue, SubscriptionCancelled},
	SubscriptionActive:   {SubscriptionPastDue, SubscriptionCancelled},
	SubscriptionPastDue:  {SubscriptionActive, SubscriptionCancelled},
}

// CanTransitionTo reports whether a profile in status s may move to next.
//
// Repeating the current status is always allowed so replayed events are
// harmless. A cancelled subscription only becomes live again when the
// event belongs to a different (newly created) subscription.
func (s SubscriptionStatus) CanTransitionTo(next SubscriptionStatus, newSubscription bool) bool {
	if s == next {
		return true
	}
	if s == SubscriptionCancelled {
		return newSubscription && (next == SubscriptionActive || next == SubscriptionTrialing)
	}
	for _, allowed := range subscriptionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
