package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "message only",
			err:      &Error{Code: EINVALID, Message: "invalid input"},
			expected: "invalid input",
		},
		{
			name:     "with operation",
			err:      &Error{Code: EINVALID, Op: "ai.dispatch", Message: "unknown action"},
			expected: "ai.dispatch: unknown action",
		},
		{
			name: "with wrapped error",
			err: &Error{
				Code:    EINTERNAL,
				Op:      "recurring.generate",
				Message: "failed to insert invoice",
				Err:     errors.New("connection reset"),
			},
			expected: "recurring.generate: failed to insert invoice: connection reset",
		},
		{
			name: "wrapped error without op",
			err: &Error{
				Code:    EINTERNAL,
				Message: "failed to insert invoice",
				Err:     errors.New("connection reset"),
			},
			expected: "failed to insert invoice: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{Code: EINTERNAL, Message: "wrapped", Err: underlying}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Error.Unwrap() = %v, want %v", unwrapped, underlying)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"domain error", Invalid("op", "bad"), EINVALID},
		{"wrapped domain error", fmt.Errorf("outer: %w", Upstream(nil, "op", "down", "")), EUPSTREAM},
		{"plain error", errors.New("boom"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.want {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	generic := "An internal error occurred. Please try again later."

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"invalid shows message", Invalid("op", "text too long"), "text too long"},
		{"internal hides message", Internal(errors.New("db down"), "op", "failed to load"), generic},
		{"plain error hidden", errors.New("secret"), generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorDetails(t *testing.T) {
	err := Upstream(errors.New("status 400"), "email.send", "email provider rejected message", `{"errors":[{"message":"bad from"}]}`)

	if got := ErrorDetails(err); got != `{"errors":[{"message":"bad from"}]}` {
		t.Errorf("ErrorDetails() = %q", got)
	}
	if got := ErrorDetails(errors.New("plain")); got != "" {
		t.Errorf("ErrorDetails(plain) = %q, want empty", got)
	}
}

func TestErrorOp(t *testing.T) {
	if got := ErrorOp(Invalid("ai.formatAddress", "bad")); got != "ai.formatAddress" {
		t.Errorf("ErrorOp() = %q", got)
	}
	if got := ErrorOp(errors.New("plain")); got != "" {
		t.Errorf("ErrorOp(plain) = %q, want empty", got)
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, EINTERNAL, "op", "msg") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	underlying := errors.New("boom")
	err := WrapError(underlying, ECONFLICT, "recurring.advance", "template already advanced")
	if !IsCode(err, ECONFLICT) {
		t.Errorf("code = %q, want %q", ErrorCode(err), ECONFLICT)
	}
	if !errors.Is(err, underlying) {
		t.Error("wrapped error should unwrap to underlying")
	}
}

func TestConvenienceFunctions(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"NotFound", NotFound("op", "timesheet", "abc"), ENOTFOUND},
		{"Unauthorized", Unauthorized("op", "missing token"), EUNAUTHORIZED},
		{"Forbidden", Forbidden("op", "not owner"), EFORBIDDEN},
		{"Invalid", Invalid("op", "bad"), EINVALID},
		{"Conflict", Conflict("op", "stale"), ECONFLICT},
		{"TooLarge", TooLarge("op", "body too large"), ETOOLARGE},
		{"Upstream", Upstream(nil, "op", "provider down", ""), EUPSTREAM},
		{"Internal", Internal(nil, "op", "oops"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}
}
