package email

import (
	"errors"
	"fmt"
)

// Codes mirror domain error codes so the handler layer can map them to
// HTTP statuses without this package importing domain.
const (
	codeInvalid  = "invalid"
	codeUpstream = "upstream"
)

// EmailError represents an email-specific error with a code and message.
type EmailError struct {
	Code    string
	Message string
}

func (e *EmailError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *EmailError) ErrorCode() string {
	return e.Code
}

// ErrorMessage returns the user-facing message.
func (e *EmailError) ErrorMessage() string {
	return e.Message
}

func newEmailError(code, message string) *EmailError {
	return &EmailError{Code: code, Message: message}
}

var (
	// ErrInvalidFromAddress is returned when the from address is invalid.
	ErrInvalidFromAddress = newEmailError(codeInvalid, "Invalid from email address")

	// ErrInvalidToAddress is returned when the to address is invalid.
	ErrInvalidToAddress = newEmailError(codeInvalid, "Invalid to email address")

	// ErrNoRecipients is returned when an email has no To addresses.
	ErrNoRecipients = newEmailError(codeInvalid, "Email has no recipients")
)

// ProviderError is returned when the email provider answers with a status
// other than the one its API documents for an accepted message. Body holds
// the provider's response so callers can surface it.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *ProviderError) ErrorCode() string {
	return codeUpstream
}

// ErrorMessage returns the user-facing message.
func (e *ProviderError) ErrorMessage() string {
	return "Email provider rejected the message"
}

// AsProviderError unwraps err to a *ProviderError if it holds one.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// ErrTemplateNotFound creates a template not found error.
func ErrTemplateNotFound(templateName string) error {
	return &EmailError{
		Code:    codeInvalid,
		Message: fmt.Sprintf("Email template %s not found", templateName),
	}
}
