package domain

import "github.com/shopspring/decimal"

// Document types stored in quotes.type.
const (
	DocumentQuote   = "quote"
	DocumentInvoice = "invoice"
)

// Quote and invoice statuses stored in quotes.status.
const (
	StatusDraft    = "draft"
	StatusSent     = "sent"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
	StatusPaid     = "paid"
)

// EmailTemplateType keys email_log rows. Reminder dedupe is keyed on
// (quote_id, template_type).
type EmailTemplateType string

const (
	TemplatePaymentReminder     EmailTemplateType = "payment_reminder"
	TemplateQuoteFollowup       EmailTemplateType = "quote_followup"
	TemplateAppointmentReminder EmailTemplateType = "appointment_reminder"
	TemplateTimesheetDecision   EmailTemplateType = "timesheet_decision"
	TemplateCustom              EmailTemplateType = "custom"
	TemplateQuote               EmailTemplateType = "quote"
	TemplateInvoice             EmailTemplateType = "invoice"
)

// Email log statuses. A pending row is a claim; failed rows never suppress
// a later attempt.
const (
	EmailPending = "pending"
	EmailSent    = "sent"
	EmailFailed  = "failed"
)

// PenceToPounds converts an integer minor-unit amount (as sent by Stripe)
// into a two-decimal pounds value.
func PenceToPounds(pence int64) decimal.Decimal {
	return decimal.New(pence, -2)
}
