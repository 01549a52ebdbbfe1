package service

import (
	"github.com/dukerupert/tradeline/internal/domain"
)

// Profile and subscription errors
var (
	ErrProfileNotFound = domain.Errorf(domain.ENOTFOUND, "", "Profile not found")
	ErrMissingUserID   = domain.Errorf(domain.EINVALID, "", "Checkout session has no user_id metadata")
	ErrMissingCustomer = domain.Errorf(domain.EINVALID, "", "Stripe object has no customer")
)

// Invoice payment errors
var (
	ErrMissingInvoiceID = domain.Errorf(domain.EINVALID, "", "Checkout session has no invoice_id metadata")
	ErrInvalidInvoiceID = domain.Errorf(domain.EINVALID, "", "Checkout session invoice_id is not a valid id")
)

// Notification errors
var (
	ErrTimesheetNotFound      = domain.Errorf(domain.ENOTFOUND, "", "Timesheet not found")
	ErrInvalidTimesheetStatus = domain.Errorf(domain.EINVALID, "", "Status must be approved or rejected")
	ErrNoRecipientEmail       = domain.Errorf(domain.EINVALID, "", "Team member has no email address")
)
