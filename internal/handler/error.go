package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/middleware"
	"github.com/dukerupert/tradeline/internal/telemetry"
)

// ErrorBody is the JSON error shape returned by every endpoint.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	case domain.ETOOLARGE:
		return http.StatusRequestEntityTooLarge
	case domain.ERATELIMIT:
		return http.StatusTooManyRequests
	case domain.EUPSTREAM:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse logs err and writes it as JSON. Internal errors get a
// generic message; upstream errors carry the provider's details.
func ErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	ErrorResponseWithStatus(w, r, ErrorCodeToHTTPStatus(code), err)
}

// ErrorResponseWithStatus is ErrorResponse with an explicit status, for
// endpoints whose status contract does not follow the error code.
func ErrorResponseWithStatus(w http.ResponseWriter, r *http.Request, status int, err error) {
	logger := middleware.GetLogger(r.Context())
	attrs := []any{
		"error", err.Error(),
		"code", domain.ErrorCode(err),
		"op", domain.ErrorOp(err),
		"status", status,
	}
	if status >= 500 {
		logger.Error("request failed", attrs...)
		telemetry.CaptureErrorFromContext(r.Context(), err, map[string]interface{}{
			"op": domain.ErrorOp(err),
		})
	} else {
		logger.Info("request rejected", attrs...)
	}

	body := ErrorBody{Error: domain.ErrorMessage(err)}
	if domain.ErrorCode(err) == domain.EUPSTREAM {
		body.Details = domain.ErrorDetails(err)
	}
	JSON(w, status, body)
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// DecodeJSON reads a JSON request body into dst. Bodies cut off by
// MaxBodySize are reported as too large.
func DecodeJSON(r *http.Request, op string, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return domain.TooLarge(op, "Request body too large")
		case errors.Is(err, io.EOF):
			return domain.Invalid(op, "Request body is empty")
		default:
			return domain.Invalid(op, "Invalid JSON body")
		}
	}
	return nil
}
