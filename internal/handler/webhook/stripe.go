package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/tradeline/internal/billing"
	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/handler"
	"github.com/dukerupert/tradeline/internal/middleware"
	"github.com/dukerupert/tradeline/internal/service"
	"github.com/dukerupert/tradeline/internal/telemetry"
	"github.com/stripe/stripe-go/v83"
)

// Endpoint labels used in logs and metrics.
const (
	EndpointPlatform = "platform"
	EndpointConnect  = "connect"
)

// StripeWebhookConfig holds the signing secrets for the two endpoints.
type StripeWebhookConfig struct {
	// WebhookSecret signs events from the platform account (checkout,
	// subscriptions, invoices).
	WebhookSecret string

	// ConnectWebhookSecret signs events from connected accounts.
	ConnectWebhookSecret string
}

// StripeHandler receives Stripe webhook events.
//
// Stripe retries any delivery that does not get a 2xx, so processing
// errors are always answered with 500 and never acknowledged. Events the
// service does not act on are acknowledged with 200.
type StripeHandler struct {
	verifier      billing.WebhookVerifier
	subscriptions service.SubscriptionService
	config        StripeWebhookConfig
	logger        *slog.Logger
}

func NewStripeHandler(verifier billing.WebhookVerifier, subscriptions service.SubscriptionService, config StripeWebhookConfig, logger *slog.Logger) *StripeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StripeHandler{
		verifier:      verifier,
		subscriptions: subscriptions,
		config:        config,
		logger:        logger,
	}
}

// HandlePlatform handles POST /webhooks/stripe.
func (h *StripeHandler) HandlePlatform(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, EndpointPlatform, h.config.WebhookSecret)
}

// HandleConnect handles POST /webhooks/stripe/connect.
func (h *StripeHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, EndpointConnect, h.config.ConnectWebhookSecret)
}

func (h *StripeHandler) handle(w http.ResponseWriter, r *http.Request, endpoint, secret string) {
	start := time.Now()
	logger := middleware.GetLogger(r.Context(), h.logger).With("endpoint", endpoint)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		handler.ErrorResponseWithStatus(w, r, http.StatusBadRequest,
			domain.WrapError(err, domain.EINVALID, "webhook.read", "Error reading request body"))
		return
	}

	event, err := h.verifier.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), secret)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrMissingSignature):
			handler.ErrorResponse(w, r, domain.WrapError(err, domain.EINVALID, "webhook.verify", "Missing signature"))
		case errors.Is(err, billing.ErrInvalidWebhookSignature):
			handler.ErrorResponse(w, r, domain.WrapError(err, domain.EINVALID, "webhook.verify", "Invalid signature"))
		default:
			handler.ErrorResponse(w, r, domain.Internal(err, "webhook.verify", "Webhook verification unavailable"))
		}
		return
	}

	eventType := string(event.Type)
	logger = logger.With("event_id", event.ID, "event_type", eventType)
	telemetry.Business.RecordWebhookReceived(endpoint, eventType)

	handled, err := h.dispatch(r.Context(), event)
	if err != nil {
		errorType := "processing_failed"
		status := http.StatusInternalServerError
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			errorType = "invalid_payload"
			status = http.StatusBadRequest
			err = domain.WrapError(err, domain.EINVALID, "webhook."+eventType, "Invalid event payload")
		}
		telemetry.Business.RecordWebhookResult(endpoint, eventType, errorType, time.Since(start))
		handler.ErrorResponseWithStatus(w, r, status, err)
		return
	}

	telemetry.Business.RecordWebhookResult(endpoint, eventType, "", time.Since(start))
	if handled {
		logger.Info("webhook processed", "duration", time.Since(start))
	} else {
		logger.Debug("webhook event ignored")
	}
	handler.JSON(w, http.StatusOK, map[string]bool{"received": true})
}

// dispatch applies one verified event. handled is false for event types
// that carry nothing for this service.
func (h *StripeHandler) dispatch(ctx context.Context, event stripe.Event) (handled bool, err error) {
	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return false, err
		}
		return true, h.subscriptions.CompleteCheckout(ctx, &session)

	case stripe.EventTypeCustomerSubscriptionCreated, stripe.EventTypeCustomerSubscriptionUpdated:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return false, err
		}
		return true, h.subscriptions.SyncSubscription(ctx, &sub)

	case stripe.EventTypeCustomerSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return false, err
		}
		return true, h.subscriptions.EndSubscription(ctx, &sub)

	case stripe.EventTypeInvoicePaymentFailed:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return false, err
		}
		return true, h.subscriptions.RecordPaymentFailed(ctx, &invoice)

	case stripe.EventTypeInvoicePaid:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return false, err
		}
		return true, h.subscriptions.RecordPaymentSucceeded(ctx, &invoice)

	case stripe.EventTypeAccountUpdated:
		var account stripe.Account
		if err := json.Unmarshal(event.Data.Raw, &account); err != nil {
			return false, err
		}
		return true, h.subscriptions.SyncConnectAccount(ctx, &account)

	default:
		return false, nil
	}
}
