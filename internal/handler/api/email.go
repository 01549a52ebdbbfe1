package api

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/email"
	"github.com/dukerupert/tradeline/internal/handler"
	"github.com/dukerupert/tradeline/internal/middleware"
	"github.com/dukerupert/tradeline/internal/service"
	"github.com/google/uuid"
)

// Notifier sends user-initiated email. *service.NotificationService
// implements it.
type Notifier interface {
	SendEmail(ctx context.Context, userID uuid.UUID, params service.SendEmailParams) (string, error)
	NotifyTimesheet(ctx context.Context, ownerID uuid.UUID, params service.NotifyTimesheetParams) (string, error)
}

// SendEmailRequest is the body of POST /api/email/send.
type SendEmailRequest struct {
	To                 string   `json:"to" validate:"required,email"`
	Subject            string   `json:"subject" validate:"required,max=998"`
	HTML               string   `json:"html" validate:"required"`
	FromName           string   `json:"from_name" validate:"max=100"`
	FromEmail          string   `json:"from_email" validate:"omitempty,email"`
	ReplyTo            string   `json:"reply_to" validate:"omitempty,email"`
	Tags               []string `json:"tags" validate:"max=10,dive,max=50"`
	AttachmentBase64   string   `json:"attachment_base64"`
	AttachmentFilename string   `json:"attachment_filename" validate:"required_with=AttachmentBase64,max=255"`
	AttachmentType     string   `json:"attachment_type" validate:"max=100"`

	// Reminder template types are reserved for the dispatchers; their log
	// rows drive dedupe.
	QuoteID      string `json:"quote_id" validate:"omitempty,uuid"`
	TemplateType string `json:"template_type" validate:"omitempty,oneof=quote invoice custom"`
}

// NotifyTimesheetRequest is the body of POST /api/timesheets/notify.
type NotifyTimesheetRequest struct {
	TimesheetID string `json:"timesheet_id" validate:"required,uuid"`
	Status      string `json:"status" validate:"required,oneof=approved rejected"`
	Notes       string `json:"notes" validate:"max=2000"`
}

type EmailHandler struct {
	notifier Notifier
	logger   *slog.Logger
}

func NewEmailHandler(notifier Notifier, logger *slog.Logger) *EmailHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmailHandler{notifier: notifier, logger: logger}
}

// Send handles POST /api/email/send.
func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	const op = "api.SendEmail"

	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		handler.ErrorResponse(w, r, domain.Unauthorized(op, "Authentication required"))
		return
	}

	var req SendEmailRequest
	if err := handler.DecodeJSON(r, op, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if err := validateRequest(op, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	params := service.SendEmailParams{
		To:           req.To,
		Subject:      req.Subject,
		HTML:         req.HTML,
		FromName:     req.FromName,
		FromEmail:    req.FromEmail,
		ReplyTo:      req.ReplyTo,
		Tags:         req.Tags,
		TemplateType: domain.EmailTemplateType(req.TemplateType),
	}
	if req.QuoteID != "" {
		params.QuoteID = uuid.MustParse(req.QuoteID)
	}
	if req.AttachmentBase64 != "" {
		content, err := base64.StdEncoding.DecodeString(req.AttachmentBase64)
		if err != nil {
			handler.ErrorResponse(w, r, domain.Invalid(op, "attachment_base64 is not valid base64"))
			return
		}
		contentType := req.AttachmentType
		if contentType == "" {
			contentType = "application/pdf"
		}
		params.Attachment = &email.Attachment{
			Filename:    req.AttachmentFilename,
			ContentType: contentType,
			Content:     content,
		}
	}

	messageID, err := h.notifier.SendEmail(r.Context(), user.ID, params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.JSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message_id": messageID,
	})
}

// NotifyTimesheet handles POST /api/timesheets/notify.
func (h *EmailHandler) NotifyTimesheet(w http.ResponseWriter, r *http.Request) {
	const op = "api.NotifyTimesheet"

	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		handler.ErrorResponse(w, r, domain.Unauthorized(op, "Authentication required"))
		return
	}

	var req NotifyTimesheetRequest
	if err := handler.DecodeJSON(r, op, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if err := validateRequest(op, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	messageID, err := h.notifier.NotifyTimesheet(r.Context(), user.ID, service.NotifyTimesheetParams{
		TimesheetID: uuid.MustParse(req.TimesheetID),
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.JSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message_id": messageID,
	})
}
