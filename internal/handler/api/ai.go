package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dukerupert/tradeline/internal/aigateway"
	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/handler"
	"github.com/dukerupert/tradeline/internal/middleware"
	"github.com/google/uuid"
)

// AIGateway runs one AI parsing action. *aigateway.Gateway implements it.
type AIGateway interface {
	Handle(ctx context.Context, userID uuid.UUID, req aigateway.Request) (any, error)
}

type AIHandler struct {
	gateway AIGateway
	logger  *slog.Logger
}

func NewAIHandler(gateway AIGateway, logger *slog.Logger) *AIHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AIHandler{gateway: gateway, logger: logger}
}

// Handle handles POST /api/ai with a body of {action, data}.
func (h *AIHandler) Handle(w http.ResponseWriter, r *http.Request) {
	const op = "api.AI"

	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		handler.ErrorResponse(w, r, domain.Unauthorized(op, "Authentication required"))
		return
	}

	// Reject oversized uploads before reading them.
	if r.ContentLength > aigateway.MaxRequestBytes {
		handler.ErrorResponse(w, r, domain.Invalid(op, "Request too large. Maximum size is 15MB."))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, aigateway.MaxRequestBytes)

	var req aigateway.Request
	if err := handler.DecodeJSON(r, op, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	result, err := h.gateway.Handle(r.Context(), user.ID, req)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.JSON(w, http.StatusOK, result)
}
