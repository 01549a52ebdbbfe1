package service

import (
	"context"

	"github.com/stripe/stripe-go/v83"
)

// SubscriptionService applies Stripe webhook events to profiles and invoices.
//
// Every method is safe to call more than once for the same event. Stripe
// retries deliveries and does not guarantee ordering, so each update is a
// set (never an increment) and subscription status changes go through
// domain.SubscriptionStatus.CanTransitionTo.
type SubscriptionService interface {
	// CompleteCheckout handles checkout.session.completed.
	//
	// Sessions with metadata type "invoice_payment" mark the referenced
	// invoice paid and snapshot gross, platform fee and net amounts.
	// Any other session is a platform subscription checkout and links the
	// Stripe customer and subscription to metadata user_id.
	CompleteCheckout(ctx context.Context, session *stripe.CheckoutSession) error

	// SyncSubscription handles customer.subscription.created and .updated.
	// Status, tier and seat count are derived from the subscription.
	SyncSubscription(ctx context.Context, sub *stripe.Subscription) error

	// EndSubscription handles customer.subscription.deleted. The profile is
	// cancelled with zero seats and every non-owner team member is
	// deactivated in the same transaction.
	EndSubscription(ctx context.Context, sub *stripe.Subscription) error

	// RecordPaymentFailed handles invoice.payment_failed (moves to past_due).
	RecordPaymentFailed(ctx context.Context, invoice *stripe.Invoice) error

	// RecordPaymentSucceeded handles invoice.paid. Only a past_due profile
	// changes (back to active); other statuses are left to the
	// subscription events.
	RecordPaymentSucceeded(ctx context.Context, invoice *stripe.Invoice) error

	// SyncConnectAccount handles account.updated from connected accounts.
	SyncConnectAccount(ctx context.Context, account *stripe.Account) error
}

// CheckoutType values carried in checkout session metadata.
const (
	CheckoutInvoicePayment = "invoice_payment"
	CheckoutSubscription   = "subscription"
)
