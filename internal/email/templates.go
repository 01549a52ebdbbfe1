package email

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Template is the data for one rendered email. TemplateName names a file
// under templates/ that defines the "content" block.
type Template interface {
	Subject() string
	TemplateName() string
}

// PaymentReminderEmail is sent to a customer whose invoice is overdue.
type PaymentReminderEmail struct {
	BusinessName  string
	CustomerName  string
	InvoiceNumber string
	Total         decimal.Decimal
	DueDate       time.Time
	DaysOverdue   int
	InvoiceURL    string // Share link; omitted from the email when empty
}

func (e PaymentReminderEmail) Subject() string {
	return fmt.Sprintf("Payment reminder: invoice %s is overdue", e.InvoiceNumber)
}

func (e PaymentReminderEmail) TemplateName() string {
	return "payment_reminder.html"
}

// QuoteFollowupEmail nudges a customer about a quote they have not answered.
type QuoteFollowupEmail struct {
	BusinessName string
	CustomerName string
	QuoteNumber  string
	Title        string
	Total        decimal.Decimal
	QuoteURL     string
}

func (e QuoteFollowupEmail) Subject() string {
	return fmt.Sprintf("Following up on quote %s from %s", e.QuoteNumber, e.BusinessName)
}

func (e QuoteFollowupEmail) TemplateName() string {
	return "quote_followup.html"
}

// AppointmentReminderEmail is sent ahead of a scheduled visit. StartTime
// should already be in the business's time zone.
type AppointmentReminderEmail struct {
	BusinessName string
	CustomerName string
	Title        string
	Location     string
	StartTime    time.Time
}

func (e AppointmentReminderEmail) Subject() string {
	return fmt.Sprintf("Reminder: %s on %s", e.Title, e.StartTime.Format("Mon 2 Jan"))
}

func (e AppointmentReminderEmail) TemplateName() string {
	return "appointment_reminder.html"
}

// TimesheetDecisionEmail tells a team member whether their timesheet was
// approved.
type TimesheetDecisionEmail struct {
	BusinessName string
	MemberName   string
	WeekStart    time.Time
	TotalHours   decimal.Decimal
	Approved     bool
	Notes        string
}

func (e TimesheetDecisionEmail) Subject() string {
	outcome := "rejected"
	if e.Approved {
		outcome = "approved"
	}
	return fmt.Sprintf("Your timesheet for w/c %s was %s", e.WeekStart.Format("2 Jan"), outcome)
}

func (e TimesheetDecisionEmail) TemplateName() string {
	return "timesheet_decision.html"
}
