package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dukerupert/tradeline/internal/billing"
	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v83"
	"go.uber.org/mock/gomock"
)

var testPrices = billing.PriceCatalog{Solo: "price_solo", Team: "price_team", Seat: "price_seat"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSubscriptionService(t *testing.T) (SubscriptionService, *repository.MockStore) {
	ctrl := gomock.NewController(t)
	store := repository.NewMockStore(ctrl)
	return NewSubscriptionService(store, testPrices, discardLogger()), store
}

func profile(id uuid.UUID, status domain.SubscriptionStatus, subscriptionID string) repository.Profile {
	return repository.Profile{
		ID:                   repository.UUID(id),
		SubscriptionStatus:   string(status),
		SubscriptionTier:     string(domain.TierTeam),
		SeatCount:            2,
		StripeCustomerID:     repository.Text("cus_123"),
		StripeSubscriptionID: repository.Text(subscriptionID),
	}
}

func teamSubscription(id string, status stripe.SubscriptionStatus) *stripe.Subscription {
	return &stripe.Subscription{
		ID:       id,
		Status:   status,
		Customer: &stripe.Customer{ID: "cus_123"},
		Items: &stripe.SubscriptionItemList{Data: []*stripe.SubscriptionItem{
			{Price: &stripe.Price{ID: "price_team"}, Quantity: 1},
			{Price: &stripe.Price{ID: "price_seat"}, Quantity: 4},
		}},
	}
}

// =============================================================================
// CHECKOUT
// =============================================================================

func TestCompleteCheckout_InvoicePayment(t *testing.T) {
	svc, store := newTestSubscriptionService(t)
	invoiceID := uuid.New()

	session := &stripe.CheckoutSession{
		ID:            "cs_test_1",
		AmountTotal:   12000,
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		Metadata: map[string]string{
			"type":         CheckoutInvoicePayment,
			"invoice_id":   invoiceID.String(),
			"platform_fee": "150",
		},
	}

	want := repository.MarkInvoicePaidParams{
		ID:                      repository.UUID(invoiceID),
		PaymentAmount:           decimal.NewNullDecimal(decimal.RequireFromString("120.00")),
		PlatformFee:             decimal.NewNullDecimal(decimal.RequireFromString("1.50")),
		NetAmount:               decimal.NewNullDecimal(decimal.RequireFromString("118.50")),
		StripeCheckoutSessionID: repository.Text("cs_test_1"),
	}

	var got []repository.MarkInvoicePaidParams
	store.EXPECT().MarkInvoicePaid(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.MarkInvoicePaidParams) (int64, error) {
			got = append(got, arg)
			return 1, nil
		}).Times(2)

	// Replaying the same event writes identical values.
	require.NoError(t, svc.CompleteCheckout(context.Background(), session))
	require.NoError(t, svc.CompleteCheckout(context.Background(), session))

	require.Len(t, got, 2)
	for _, arg := range got {
		assert.Equal(t, want.ID, arg.ID)
		assert.True(t, want.PaymentAmount.Decimal.Equal(arg.PaymentAmount.Decimal))
		assert.True(t, want.PlatformFee.Decimal.Equal(arg.PlatformFee.Decimal))
		assert.True(t, want.NetAmount.Decimal.Equal(arg.NetAmount.Decimal))
		assert.Equal(t, want.StripeCheckoutSessionID, arg.StripeCheckoutSessionID)
	}
	assert.Equal(t, got[0], got[1])
}

func TestCompleteCheckout_InvoicePaymentWithoutFee(t *testing.T) {
	svc, store := newTestSubscriptionService(t)

	store.EXPECT().MarkInvoicePaid(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.MarkInvoicePaidParams) (int64, error) {
			assert.True(t, arg.PlatformFee.Decimal.IsZero())
			assert.True(t, arg.NetAmount.Decimal.Equal(decimal.RequireFromString("45.99")))
			return 1, nil
		})

	err := svc.CompleteCheckout(context.Background(), &stripe.CheckoutSession{
		ID:          "cs_test_2",
		AmountTotal: 4599,
		Metadata:    map[string]string{"type": CheckoutInvoicePayment, "invoice_id": uuid.NewString(), "platform_fee": "oops"},
	})
	require.NoError(t, err)
}

func TestCompleteCheckout_InvoicePaymentErrors(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]string
		wantErr  error
	}{
		{"missing invoice id", map[string]string{"type": CheckoutInvoicePayment}, ErrMissingInvoiceID},
		{"malformed invoice id", map[string]string{"type": CheckoutInvoicePayment, "invoice_id": "INV-7"}, ErrInvalidInvoiceID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestSubscriptionService(t)
			err := svc.CompleteCheckout(context.Background(), &stripe.CheckoutSession{ID: "cs", Metadata: tt.metadata})
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestCompleteCheckout_UnpaidSessionIsDeferred(t *testing.T) {
	svc, _ := newTestSubscriptionService(t)

	err := svc.CompleteCheckout(context.Background(), &stripe.CheckoutSession{
		ID:            "cs_bacs",
		PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
		Metadata:      map[string]string{"type": CheckoutInvoicePayment, "invoice_id": uuid.NewString()},
	})
	assert.NoError(t, err)
}

func TestCompleteCheckout_SubscriptionLinksCustomer(t *testing.T) {
	svc, store := newTestSubscriptionService(t)
	userID := uuid.New()

	store.EXPECT().LinkStripeCustomer(gomock.Any(), repository.LinkStripeCustomerParams{
		ID:                   repository.UUID(userID),
		StripeCustomerID:     repository.Text("cus_new"),
		StripeSubscriptionID: repository.Text("sub_new"),
	}).Return(int64(1), nil)

	err := svc.CompleteCheckout(context.Background(), &stripe.CheckoutSession{
		ID:           "cs_sub",
		Customer:     &stripe.Customer{ID: "cus_new"},
		Subscription: &stripe.Subscription{ID: "sub_new"},
		Metadata:     map[string]string{"type": CheckoutSubscription, "user_id": userID.String()},
	})
	require.NoError(t, err)
}

func TestCompleteCheckout_SubscriptionUnknownProfile(t *testing.T) {
	svc, store := newTestSubscriptionService(t)

	store.EXPECT().LinkStripeCustomer(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	err := svc.CompleteCheckout(context.Background(), &stripe.CheckoutSession{
		Customer: &stripe.Customer{ID: "cus_new"},
		Metadata: map[string]string{"user_id": uuid.NewString()},
	})
	assert.True(t, domain.IsCode(err, domain.ENOTFOUND))
}

// =============================================================================
// SUBSCRIPTION STATE
// =============================================================================

func TestSyncSubscription(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		current    repository.Profile
		sub        *stripe.Subscription
		wantUpdate *repository.UpdateSubscriptionStateParams
	}{
		{
			name:    "trial converts to active with plan from items",
			current: profile(userID, domain.SubscriptionTrialing, "sub_1"),
			sub:     teamSubscription("sub_1", stripe.SubscriptionStatusActive),
			wantUpdate: &repository.UpdateSubscriptionStateParams{
				ID:                   repository.UUID(userID),
				SubscriptionStatus:   "active",
				SubscriptionTier:     "team",
				SeatCount:            4,
				StripeSubscriptionID: repository.Text("sub_1"),
			},
		},
		{
			name:    "stale update after cancellation is ignored",
			current: profile(userID, domain.SubscriptionCancelled, "sub_1"),
			sub:     teamSubscription("sub_1", stripe.SubscriptionStatusActive),
		},
		{
			name:    "resubscribe after cancellation",
			current: profile(userID, domain.SubscriptionCancelled, "sub_1"),
			sub:     teamSubscription("sub_2", stripe.SubscriptionStatusActive),
			wantUpdate: &repository.UpdateSubscriptionStateParams{
				ID:                   repository.UUID(userID),
				SubscriptionStatus:   "active",
				SubscriptionTier:     "team",
				SeatCount:            4,
				StripeSubscriptionID: repository.Text("sub_2"),
			},
		},
		{
			name:    "superseded subscription cancelling is ignored",
			current: profile(userID, domain.SubscriptionActive, "sub_2"),
			sub:     teamSubscription("sub_1", stripe.SubscriptionStatusCanceled),
		},
		{
			name:    "active cannot return to trial",
			current: profile(userID, domain.SubscriptionActive, "sub_1"),
			sub:     teamSubscription("sub_1", stripe.SubscriptionStatusTrialing),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestSubscriptionService(t)

			store.EXPECT().GetProfileByStripeCustomerID(gomock.Any(), repository.Text("cus_123")).Return(tt.current, nil)
			if tt.wantUpdate != nil {
				store.EXPECT().UpdateSubscriptionState(gomock.Any(), *tt.wantUpdate).Return(nil)
			}

			require.NoError(t, svc.SyncSubscription(context.Background(), tt.sub))
		})
	}
}

func TestSyncSubscription_IgnoresIncomplete(t *testing.T) {
	svc, _ := newTestSubscriptionService(t)
	require.NoError(t, svc.SyncSubscription(context.Background(), teamSubscription("sub_1", stripe.SubscriptionStatusIncomplete)))
}

func TestSyncSubscription_FallsBackToMetadataUser(t *testing.T) {
	svc, store := newTestSubscriptionService(t)
	userID := uuid.New()

	sub := teamSubscription("sub_1", stripe.SubscriptionStatusTrialing)
	sub.Metadata = map[string]string{"user_id": userID.String()}

	store.EXPECT().GetProfileByStripeCustomerID(gomock.Any(), gomock.Any()).Return(repository.Profile{}, pgx.ErrNoRows)
	store.EXPECT().GetProfile(gomock.Any(), repository.UUID(userID)).Return(repository.Profile{ID: repository.UUID(userID)}, nil)
	store.EXPECT().UpdateSubscriptionState(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.SyncSubscription(context.Background(), sub))
}

func TestSyncSubscription_UnknownCustomer(t *testing.T) {
	svc, store := newTestSubscriptionService(t)

	store.EXPECT().GetProfileByStripeCustomerID(gomock.Any(), gomock.Any()).Return(repository.Profile{}, pgx.ErrNoRows)

	err := svc.SyncSubscription(context.Background(), teamSubscription("sub_1", stripe.SubscriptionStatusActive))
	assert.Equal(t, ErrProfileNotFound, err)
}

func TestSyncSubscription_DatabaseError(t *testing.T) {
	svc, store := newTestSubscriptionService(t)

	store.EXPECT().GetProfileByStripeCustomerID(gomock.Any(), gomock.Any()).Return(repository.Profile{}, errors.New("connection reset"))

	err := svc.SyncSubscription(context.Background(), teamSubscription("sub_1", stripe.SubscriptionStatusActive))
	assert.True(t, domain.IsCode(err, domain.EINTERNAL))
}

func TestEndSubscription(t *testing.T) {
	svc, store := newTestSubscriptionService(t)
	userID := uuid.New()

	store.EXPECT().GetProfileByStripeCustomerID(gomock.Any(), gomock.Any()).Return(profile(userID, domain.SubscriptionActive, "sub_1"), nil)
	gomock.InOrder(
		store.EXPECT().UpdateSubscriptionState(gomock.Any(), repository.UpdateSubscriptionStateParams{
			ID:                   repository.UUID(userID),
			SubscriptionStatus:   "cancelled",
			SubscriptionTier:     "team",
			SeatCount:            0,
			StripeSubscriptionID: repository.Text("sub_1"),
		}).Return(nil),
		store.EXPECT().DeactivateNonOwnerTeamMembers(gomock.Any(), repository.UUID(userID)).Return(int64(3), nil),
	)

	require.NoError(t, svc.EndSubscription(context.Background(), teamSubscription("sub_1", stripe.SubscriptionStatusCanceled)))
	assert.Equal(t, 1, store.Transactions)
}

func TestEndSubscription_DeactivationFailureFails(t *testing.T) {
	svc, store := newTestSubscriptionService(t)
	userID := uuid.New()

	store.EXPECT().GetProfileByStripeCustomerID(gomock.Any(), gomock.Any()).Return(profile(userID, domain.SubscriptionActive, "sub_1"), nil)
	store.EXPECT().UpdateSubscriptionState(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().DeactivateNonOwnerTeamMembers(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("deadlock"))

	err := svc.EndSubscription(context.Background(), teamSubscription("sub_1", stripe.SubscriptionStatusCanceled))
	assert.True(t, domain.IsCode(err, domain.EINTERNAL))
}

func TestEndSubscription_SupersededIsIgnored(t *testing.T) {
	svc, store := newTestSubscriptionService(t)

	store.EXPECT().GetProfileByStripeCustomerID(gomock.Any(), gomock.Any()).Return(profile(uuid.New(), domain.SubscriptionActive, "sub_2"), nil)

	require.NoError(t, svc.EndSubscription(context.Background(), teamSubscription("sub_1", stripe.SubscriptionStatusCanceled)))
	assert.Equal(t, 0, store.Transactions)
}

// =============================================================================
// INVOICE EVENTS
// =============================================================================

func subscriptionInvoice(subscriptionID string) *stripe.Invoice {
	return &stripe.Invoice{
		ID:       "in_1",
		Customer: &stripe.Customer{ID: "cus_123"},
		Parent: &stripe.InvoiceParent{
			SubscriptionDetails: &stripe.InvoiceParentSubscriptionDetails{
				Subscription: &stripe.Subscription{ID: subscriptionID},
			},
		},
	}
}

func TestRecordPaymentFailed(t *testing.T) {
	svc, store := newTestSubscriptionService(t)
	userID := uuid.New()

	store.EXPECT().GetProfileByStripeCustomerID(gomock.Any(), gomock.Any()).Return(profile(userID, domain.SubscriptionActive, "sub_1"), nil)
	store.EXPECT().UpdateSubscriptionState(gomock.Any(), repository.UpdateSubscriptionStateParams{
		ID:                   repository.UUID(userID),
		SubscriptionStatus:   "past_due",
		SubscriptionTier:     "team",
		SeatCount:            2,
		StripeSubscriptionID: repository.Text("sub_1"),
	}).Return(nil)

	require.NoError(t, svc.RecordPaymentFailed(context.Background(), subscriptionInvoice("sub_1")))
}

func TestRecordPaymentSucceeded(t *testing.T) {
	tests := []struct {
		name       string
		current    domain.SubscriptionStatus
		wantUpdate bool
	}{
		{"past due recovers", domain.SubscriptionPastDue, true},
		{"active unchanged", domain.SubscriptionActive, false},
		{"trialing unchanged", domain.SubscriptionTrialing, false},
		{"cancelled unchanged", domain.SubscriptionCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestSubscriptionService(t)

			store.EXPECT().GetProfileByStripeCustomerID(gomock.Any(), gomock.Any()).Return(profile(uuid.New(), tt.current, "sub_1"), nil)
			if tt.wantUpdate {
				store.EXPECT().UpdateSubscriptionState(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg repository.UpdateSubscriptionStateParams) error {
						assert.Equal(t, "active", arg.SubscriptionStatus)
						assert.Equal(t, int32(2), arg.SeatCount)
						return nil
					})
			}

			require.NoError(t, svc.RecordPaymentSucceeded(context.Background(), subscriptionInvoice("sub_1")))
		})
	}
}

func TestRecordPayment_NonSubscriptionInvoice(t *testing.T) {
	svc, _ := newTestSubscriptionService(t)
	require.NoError(t, svc.RecordPaymentFailed(context.Background(), &stripe.Invoice{ID: "in_one_off"}))
}

// =============================================================================
// CONNECT
// =============================================================================

func TestSyncConnectAccount(t *testing.T) {
	svc, store := newTestSubscriptionService(t)

	store.EXPECT().UpdateConnectAccountStatus(gomock.Any(), repository.UpdateConnectAccountStatusParams{
		StripeConnectAccountID: repository.Text("acct_1"),
		ConnectChargesEnabled:  true,
		ConnectPayoutsEnabled:  false,
	}).Return(int64(1), nil)

	require.NoError(t, svc.SyncConnectAccount(context.Background(), &stripe.Account{ID: "acct_1", ChargesEnabled: true}))
}

func TestSyncConnectAccount_Unlinked(t *testing.T) {
	svc, store := newTestSubscriptionService(t)

	store.EXPECT().UpdateConnectAccountStatus(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	require.NoError(t, svc.SyncConnectAccount(context.Background(), &stripe.Account{ID: "acct_unknown"}))
}
