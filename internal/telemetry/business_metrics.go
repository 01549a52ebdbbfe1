package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for the automation jobs,
// webhooks and the AI gateway. All methods are safe on a nil receiver so
// packages can record unconditionally when metrics are not initialised
// (tests, the runjob CLI without a metrics endpoint).
type BusinessMetrics struct {
	// Cron jobs
	JobsRun     *prometheus.CounterVec
	JobDuration *prometheus.HistogramVec

	// Recurring invoices
	RecurringTemplates *prometheus.CounterVec

	// Reminders
	RemindersSent   *prometheus.CounterVec
	RemindersFailed *prometheus.CounterVec

	// Webhooks
	WebhookReceived  *prometheus.CounterVec
	WebhookProcessed *prometheus.CounterVec
	WebhookFailed    *prometheus.CounterVec
	WebhookLatency   *prometheus.HistogramVec

	// AI gateway
	AIRequests *prometheus.CounterVec
	AIRetries  *prometheus.CounterVec
	AILatency  *prometheus.HistogramVec

	// Email delivery
	EmailSent   *prometheus.CounterVec
	EmailFailed *prometheus.CounterVec
}

// NewBusinessMetrics creates and registers all business metrics with the
// default registry.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "tradeline"
	}

	subsystem := "business"

	return &BusinessMetrics{
		JobsRun: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "jobs_run_total",
				Help:      "Total cron job runs by outcome",
			},
			[]string{"job", "outcome"}, // outcome: success, error
		),
		JobDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "job_duration_seconds",
				Help:      "Cron job execution duration",
				Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"job"},
		),
		RecurringTemplates: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "recurring_templates_total",
				Help:      "Recurring templates processed by outcome",
			},
			[]string{"outcome"}, // outcome: generated, disabled, skipped, failed
		),
		RemindersSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "reminders_sent_total",
				Help:      "Total reminder emails sent",
			},
			[]string{"kind"}, // kind: appointment, payment, quote_followup
		),
		RemindersFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "reminders_failed_total",
				Help:      "Total reminder emails that failed to send",
			},
			[]string{"kind"},
		),
		WebhookReceived: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "webhooks_received_total",
				Help:      "Total webhooks received",
			},
			[]string{"endpoint", "event_type"},
		),
		WebhookProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "webhooks_processed_total",
				Help:      "Total webhooks processed successfully",
			},
			[]string{"endpoint", "event_type"},
		),
		WebhookFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "webhooks_failed_total",
				Help:      "Total webhook processing failures",
			},
			[]string{"endpoint", "event_type", "error_type"},
		),
		WebhookLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "webhook_processing_seconds",
				Help:      "Webhook processing duration",
				Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"endpoint", "event_type"},
		),
		AIRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ai_requests_total",
				Help:      "Total AI gateway requests by action and outcome",
			},
			[]string{"action", "outcome"}, // outcome: success, invalid, upstream_error
		),
		AIRetries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ai_retries_total",
				Help:      "Model calls retried after a transient error",
			},
			[]string{"action"},
		),
		AILatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ai_request_duration_seconds",
				Help:      "AI gateway model call duration including retries",
				Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 40, 60},
			},
			[]string{"action"},
		),
		EmailSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "emails_sent_total",
				Help:      "Total emails sent by type",
			},
			[]string{"email_type"},
		),
		EmailFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "emails_failed_total",
				Help:      "Total email delivery failures",
			},
			[]string{"email_type", "error_type"},
		),
	}
}

// Global instance for easy access from jobs and handlers
var Business *BusinessMetrics

// InitBusinessMetrics initializes the global business metrics instance
func InitBusinessMetrics(namespace string) *BusinessMetrics {
	Business = NewBusinessMetrics(namespace)
	return Business
}

func (m *BusinessMetrics) RecordJob(job, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.JobsRun.WithLabelValues(job, outcome).Inc()
	m.JobDuration.WithLabelValues(job).Observe(d.Seconds())
}

func (m *BusinessMetrics) RecordRecurring(outcome string) {
	if m == nil {
		return
	}
	m.RecurringTemplates.WithLabelValues(outcome).Inc()
}

func (m *BusinessMetrics) RecordReminder(kind string, sent bool) {
	if m == nil {
		return
	}
	if sent {
		m.RemindersSent.WithLabelValues(kind).Inc()
		return
	}
	m.RemindersFailed.WithLabelValues(kind).Inc()
}

func (m *BusinessMetrics) RecordWebhookReceived(endpoint, eventType string) {
	if m == nil {
		return
	}
	m.WebhookReceived.WithLabelValues(endpoint, eventType).Inc()
}

// RecordWebhookResult records the outcome of processing one webhook event.
// errorType is empty on success.
func (m *BusinessMetrics) RecordWebhookResult(endpoint, eventType, errorType string, d time.Duration) {
	if m == nil {
		return
	}
	m.WebhookLatency.WithLabelValues(endpoint, eventType).Observe(d.Seconds())
	if errorType != "" {
		m.WebhookFailed.WithLabelValues(endpoint, eventType, errorType).Inc()
		return
	}
	m.WebhookProcessed.WithLabelValues(endpoint, eventType).Inc()
}

func (m *BusinessMetrics) RecordAIRequest(action, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.AIRequests.WithLabelValues(action, outcome).Inc()
	if d > 0 {
		m.AILatency.WithLabelValues(action).Observe(d.Seconds())
	}
}

func (m *BusinessMetrics) RecordAIRetry(action string) {
	if m == nil {
		return
	}
	m.AIRetries.WithLabelValues(action).Inc()
}

// RecordEmail records one email attempt. errorType is empty on success.
func (m *BusinessMetrics) RecordEmail(emailType, errorType string) {
	if m == nil {
		return
	}
	if errorType != "" {
		m.EmailFailed.WithLabelValues(emailType, errorType).Inc()
		return
	}
	m.EmailSent.WithLabelValues(emailType).Inc()
}
