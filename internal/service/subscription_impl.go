package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dukerupert/tradeline/internal/billing"
	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v83"
)

// subscriptionService implements SubscriptionService interface
type subscriptionService struct {
	store  repository.Store
	prices billing.PriceCatalog
	logger *slog.Logger
}

// NewSubscriptionService creates a new SubscriptionService instance
func NewSubscriptionService(store repository.Store, prices billing.PriceCatalog, logger *slog.Logger) SubscriptionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &subscriptionService{
		store:  store,
		prices: prices,
		logger: logger,
	}
}

// CompleteCheckout dispatches on the session's metadata type.
func (s *subscriptionService) CompleteCheckout(ctx context.Context, session *stripe.CheckoutSession) error {
	if session.Metadata["type"] == CheckoutInvoicePayment {
		return s.markInvoicePaid(ctx, session)
	}
	return s.linkCustomer(ctx, session)
}

// markInvoicePaid snapshots the amounts Stripe collected. A replay of the
// same session writes the same values again.
func (s *subscriptionService) markInvoicePaid(ctx context.Context, session *stripe.CheckoutSession) error {
	const op = "subscription.markInvoicePaid"

	if session.PaymentStatus == stripe.CheckoutSessionPaymentStatusUnpaid {
		s.logger.Info("checkout completed without payment, waiting for async payment",
			"session_id", session.ID)
		return nil
	}

	rawID := session.Metadata["invoice_id"]
	if rawID == "" {
		return ErrMissingInvoiceID
	}
	invoiceID, err := uuid.Parse(rawID)
	if err != nil {
		return ErrInvalidInvoiceID
	}

	gross := domain.PenceToPounds(session.AmountTotal)
	fee := decimal.Zero
	if raw := session.Metadata["platform_fee"]; raw != "" {
		pence, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || pence < 0 {
			s.logger.Warn("ignoring malformed platform_fee metadata",
				"session_id", session.ID, "platform_fee", raw)
		} else {
			fee = domain.PenceToPounds(pence)
		}
	}
	net := gross.Sub(fee)

	rows, err := s.store.MarkInvoicePaid(ctx, repository.MarkInvoicePaidParams{
		ID:                      repository.UUID(invoiceID),
		PaymentAmount:           decimal.NewNullDecimal(gross),
		PlatformFee:             decimal.NewNullDecimal(fee),
		NetAmount:               decimal.NewNullDecimal(net),
		StripeCheckoutSessionID: repository.Text(session.ID),
	})
	if err != nil {
		return domain.Internal(err, op, "failed to mark invoice paid")
	}
	if rows == 0 {
		// Deleted invoices stay deleted; retrying would not help.
		s.logger.Warn("paid invoice not found", "invoice_id", invoiceID, "session_id", session.ID)
		return nil
	}

	s.logger.Info("invoice paid",
		"invoice_id", invoiceID,
		"session_id", session.ID,
		"gross", gross.StringFixed(2),
		"platform_fee", fee.StringFixed(2),
		"net", net.StringFixed(2),
	)
	return nil
}

// linkCustomer records the Stripe customer created by a subscription
// checkout so later subscription events can find the profile.
func (s *subscriptionService) linkCustomer(ctx context.Context, session *stripe.CheckoutSession) error {
	const op = "subscription.linkCustomer"

	rawID := session.Metadata["user_id"]
	if rawID == "" {
		rawID = session.ClientReferenceID
	}
	if rawID == "" {
		return ErrMissingUserID
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return domain.Errorf(domain.EINVALID, op, "invalid user_id %q", rawID)
	}

	customerID := customerIDOf(session.Customer)
	if customerID == "" {
		return ErrMissingCustomer
	}

	var subscriptionID string
	if session.Subscription != nil {
		subscriptionID = session.Subscription.ID
	}

	rows, err := s.store.LinkStripeCustomer(ctx, repository.LinkStripeCustomerParams{
		ID:                   repository.UUID(userID),
		StripeCustomerID:     repository.Text(customerID),
		StripeSubscriptionID: repository.Text(subscriptionID),
	})
	if err != nil {
		return domain.Internal(err, op, "failed to link stripe customer")
	}
	if rows == 0 {
		return ErrProfileNotFound
	}

	s.logger.Info("linked stripe customer",
		"user_id", userID, "customer_id", customerID, "subscription_id", subscriptionID)
	return nil
}

func (s *subscriptionService) SyncSubscription(ctx context.Context, sub *stripe.Subscription) error {
	const op = "subscription.sync"

	next, ok := domain.StatusFromStripe(string(sub.Status))
	if !ok {
		s.logger.Info("ignoring subscription status", "subscription_id", sub.ID, "status", sub.Status)
		return nil
	}

	profile, err := s.profileFor(ctx, sub.Customer, sub.Metadata)
	if err != nil {
		return err
	}

	current := domain.SubscriptionStatus(profile.SubscriptionStatus)
	newSubscription := repository.StringFromPg(profile.StripeSubscriptionID) != sub.ID

	if newSubscription && isLive(current) && next == domain.SubscriptionCancelled {
		// A replaced subscription ending must not cancel its successor.
		s.logger.Info("ignoring cancellation of superseded subscription",
			"user_id", repository.UUIDFromPg(profile.ID), "subscription_id", sub.ID)
		return nil
	}
	if !current.CanTransitionTo(next, newSubscription) {
		s.logger.Info("ignoring out-of-order subscription event",
			"user_id", repository.UUIDFromPg(profile.ID),
			"subscription_id", sub.ID,
			"from", current,
			"to", next,
		)
		return nil
	}

	plan := s.prices.PlanFromItems(sub.Items)
	if err := s.store.UpdateSubscriptionState(ctx, repository.UpdateSubscriptionStateParams{
		ID:                   profile.ID,
		SubscriptionStatus:   string(next),
		SubscriptionTier:     string(plan.Tier),
		SeatCount:            plan.Seats,
		StripeSubscriptionID: repository.Text(sub.ID),
	}); err != nil {
		return domain.Internal(err, op, "failed to update subscription state")
	}

	s.logger.Info("subscription synced",
		"user_id", repository.UUIDFromPg(profile.ID),
		"subscription_id", sub.ID,
		"status", next,
		"tier", plan.Tier,
		"seats", plan.Seats,
	)
	return nil
}

func (s *subscriptionService) EndSubscription(ctx context.Context, sub *stripe.Subscription) error {
	const op = "subscription.end"

	profile, err := s.profileFor(ctx, sub.Customer, sub.Metadata)
	if err != nil {
		return err
	}

	if stored := repository.StringFromPg(profile.StripeSubscriptionID); stored != "" && stored != sub.ID {
		s.logger.Info("ignoring deletion of superseded subscription",
			"user_id", repository.UUIDFromPg(profile.ID), "subscription_id", sub.ID, "current_subscription_id", stored)
		return nil
	}

	var deactivated int64
	err = s.store.ExecTx(ctx, func(q repository.Querier) error {
		if err := q.UpdateSubscriptionState(ctx, repository.UpdateSubscriptionStateParams{
			ID:                   profile.ID,
			SubscriptionStatus:   string(domain.SubscriptionCancelled),
			SubscriptionTier:     profile.SubscriptionTier,
			SeatCount:            0,
			StripeSubscriptionID: repository.Text(sub.ID),
		}); err != nil {
			return fmt.Errorf("update subscription state: %w", err)
		}

		n, err := q.DeactivateNonOwnerTeamMembers(ctx, profile.ID)
		if err != nil {
			return fmt.Errorf("deactivate team members: %w", err)
		}
		deactivated = n
		return nil
	})
	if err != nil {
		return domain.Internal(err, op, "failed to cancel subscription")
	}

	s.logger.Info("subscription cancelled",
		"user_id", repository.UUIDFromPg(profile.ID),
		"subscription_id", sub.ID,
		"team_members_deactivated", deactivated,
	)
	return nil
}

func (s *subscriptionService) RecordPaymentFailed(ctx context.Context, invoice *stripe.Invoice) error {
	return s.applyInvoiceStatus(ctx, invoice, domain.SubscriptionPastDue, func(current domain.SubscriptionStatus) bool {
		return current.CanTransitionTo(domain.SubscriptionPastDue, false)
	})
}

func (s *subscriptionService) RecordPaymentSucceeded(ctx context.Context, invoice *stripe.Invoice) error {
	return s.applyInvoiceStatus(ctx, invoice, domain.SubscriptionActive, func(current domain.SubscriptionStatus) bool {
		return current == domain.SubscriptionPastDue
	})
}

// applyInvoiceStatus moves the subscriber behind a subscription invoice to
// next when allow accepts its current status. Tier and seats are kept.
func (s *subscriptionService) applyInvoiceStatus(
	ctx context.Context,
	invoice *stripe.Invoice,
	next domain.SubscriptionStatus,
	allow func(domain.SubscriptionStatus) bool,
) error {
	const op = "subscription.invoiceStatus"

	subscriptionID := subscriptionIDFromInvoice(invoice)
	if subscriptionID == "" {
		s.logger.Debug("invoice is not for a subscription", "invoice_id", invoice.ID)
		return nil
	}

	profile, err := s.profileFor(ctx, invoice.Customer, nil)
	if err != nil {
		return err
	}

	if stored := repository.StringFromPg(profile.StripeSubscriptionID); stored != "" && stored != subscriptionID {
		s.logger.Info("ignoring invoice for superseded subscription",
			"invoice_id", invoice.ID, "subscription_id", subscriptionID)
		return nil
	}

	current := domain.SubscriptionStatus(profile.SubscriptionStatus)
	if !allow(current) {
		s.logger.Debug("invoice event leaves subscription unchanged",
			"invoice_id", invoice.ID, "status", current, "target", next)
		return nil
	}

	if err := s.store.UpdateSubscriptionState(ctx, repository.UpdateSubscriptionStateParams{
		ID:                   profile.ID,
		SubscriptionStatus:   string(next),
		SubscriptionTier:     profile.SubscriptionTier,
		SeatCount:            profile.SeatCount,
		StripeSubscriptionID: repository.Text(subscriptionID),
	}); err != nil {
		return domain.Internal(err, op, "failed to update subscription status")
	}

	s.logger.Info("subscription status updated from invoice",
		"user_id", repository.UUIDFromPg(profile.ID),
		"invoice_id", invoice.ID,
		"from", current,
		"to", next,
	)
	return nil
}

func (s *subscriptionService) SyncConnectAccount(ctx context.Context, account *stripe.Account) error {
	const op = "subscription.syncConnectAccount"

	rows, err := s.store.UpdateConnectAccountStatus(ctx, repository.UpdateConnectAccountStatusParams{
		StripeConnectAccountID: repository.Text(account.ID),
		ConnectChargesEnabled:  account.ChargesEnabled,
		ConnectPayoutsEnabled:  account.PayoutsEnabled,
	})
	if err != nil {
		return domain.Internal(err, op, "failed to update connect account")
	}
	if rows == 0 {
		s.logger.Info("connect account not linked to a profile", "account_id", account.ID)
		return nil
	}

	s.logger.Info("connect account updated",
		"account_id", account.ID,
		"charges_enabled", account.ChargesEnabled,
		"payouts_enabled", account.PayoutsEnabled,
	)
	return nil
}

// profileFor finds the subscriber by Stripe customer, falling back to the
// user_id metadata set at checkout. The fallback covers subscription events
// that arrive before checkout.session.completed has linked the customer.
func (s *subscriptionService) profileFor(ctx context.Context, customer *stripe.Customer, metadata map[string]string) (repository.Profile, error) {
	const op = "subscription.profileFor"

	if customerID := customerIDOf(customer); customerID != "" {
		profile, err := s.store.GetProfileByStripeCustomerID(ctx, repository.Text(customerID))
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return repository.Profile{}, domain.Internal(err, op, "failed to load profile")
		}
	}

	if raw := metadata["user_id"]; raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return repository.Profile{}, domain.Errorf(domain.EINVALID, op, "invalid user_id %q", raw)
		}
		profile, err := s.store.GetProfile(ctx, repository.UUID(userID))
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return repository.Profile{}, domain.Internal(err, op, "failed to load profile")
		}
	}

	return repository.Profile{}, ErrProfileNotFound
}

func customerIDOf(c *stripe.Customer) string {
	if c == nil {
		return ""
	}
	return c.ID
}

func subscriptionIDFromInvoice(invoice *stripe.Invoice) string {
	if invoice.Parent == nil || invoice.Parent.SubscriptionDetails == nil || invoice.Parent.SubscriptionDetails.Subscription == nil {
		return ""
	}
	return invoice.Parent.SubscriptionDetails.Subscription.ID
}

func isLive(status domain.SubscriptionStatus) bool {
	switch status {
	case domain.SubscriptionTrialing, domain.SubscriptionActive, domain.SubscriptionPastDue:
		return true
	default:
		return false
	}
}
