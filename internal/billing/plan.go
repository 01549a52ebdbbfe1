package billing

import (
	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/stripe/stripe-go/v83"
)

// PriceCatalog maps the platform's Stripe price IDs onto plan components.
type PriceCatalog struct {
	Solo string
	Team string
	Seat string
}

// Plan is the tier and seat count derived from a subscription's items.
type Plan struct {
	Tier  domain.SubscriptionTier
	Seats int32
}

// PlanFromItems scans subscription line items for known prices. Unknown
// price IDs are ignored and a missing seat item means zero seats.
func (c PriceCatalog) PlanFromItems(items *stripe.SubscriptionItemList) Plan {
	var plan Plan
	if items == nil {
		return plan
	}

	for _, item := range items.Data {
		if item == nil || item.Price == nil || item.Price.ID == "" {
			continue
		}
		switch item.Price.ID {
		case c.Team:
			plan.Tier = domain.TierTeam
		case c.Solo:
			if plan.Tier == domain.TierNone {
				plan.Tier = domain.TierSolo
			}
		case c.Seat:
			plan.Seats += int32(item.Quantity)
		}
	}
	return plan
}
