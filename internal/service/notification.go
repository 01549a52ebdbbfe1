package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/email"
	"github.com/dukerupert/tradeline/internal/repository"
	"github.com/dukerupert/tradeline/internal/telemetry"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Mailer renders and delivers email. *email.Service implements it.
type Mailer interface {
	Compose(to string, t email.Template) (*email.Email, error)
	Send(ctx context.Context, e *email.Email) (string, error)
}

// SendEmailParams is an ad-hoc email composed by the client (quote and
// invoice sends, custom messages).
type SendEmailParams struct {
	To         string
	Subject    string
	HTML       string
	FromName   string
	FromEmail  string
	ReplyTo    string
	Tags       []string
	Attachment *email.Attachment

	// QuoteID and TemplateType label the audit row. TemplateType defaults
	// to custom.
	QuoteID      uuid.UUID
	TemplateType domain.EmailTemplateType
}

// TimesheetDecision values accepted by NotifyTimesheet.
const (
	TimesheetApproved = "approved"
	TimesheetRejected = "rejected"
)

// NotifyTimesheetParams identifies the reviewed timesheet and the outcome.
type NotifyTimesheetParams struct {
	TimesheetID uuid.UUID
	Status      string
	Notes       string
}

// NotificationService sends user-initiated emails. Every attempt leaves an
// email_log row: pending before the provider call, then sent or failed.
type NotificationService struct {
	store  repository.Store
	mailer Mailer
	logger *slog.Logger
}

func NewNotificationService(store repository.Store, mailer Mailer, logger *slog.Logger) *NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{store: store, mailer: mailer, logger: logger}
}

// SendEmail delivers a client-composed email on behalf of userID and returns
// the provider's message id.
func (s *NotificationService) SendEmail(ctx context.Context, userID uuid.UUID, params SendEmailParams) (string, error) {
	templateType := params.TemplateType
	if templateType == "" {
		templateType = domain.TemplateCustom
	}

	msg := &email.Email{
		To:       []string{params.To},
		From:     params.FromEmail,
		FromName: params.FromName,
		ReplyTo:  params.ReplyTo,
		Subject:  params.Subject,
		HTMLBody: params.HTML,
		Tags:     params.Tags,
	}
	if params.Attachment != nil {
		msg.Attachments = []email.Attachment{*params.Attachment}
	}

	return s.deliver(ctx, repository.CreateEmailLogParams{
		UserID:         repository.UUID(userID),
		QuoteID:        repository.UUID(params.QuoteID),
		TemplateType:   string(templateType),
		RecipientEmail: params.To,
		Subject:        params.Subject,
	}, msg)
}

// NotifyTimesheet emails a team member the outcome of their timesheet
// review. Only the owner of the timesheet may send it.
func (s *NotificationService) NotifyTimesheet(ctx context.Context, ownerID uuid.UUID, params NotifyTimesheetParams) (string, error) {
	const op = "notification.NotifyTimesheet"

	if params.Status != TimesheetApproved && params.Status != TimesheetRejected {
		return "", ErrInvalidTimesheetStatus
	}

	sheet, err := s.store.GetTimesheetForOwner(ctx, repository.GetTimesheetForOwnerParams{
		ID:      repository.UUID(params.TimesheetID),
		OwnerID: repository.UUID(ownerID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrTimesheetNotFound
		}
		return "", domain.Internal(err, op, "failed to load timesheet")
	}
	if strings.TrimSpace(sheet.MemberEmail) == "" {
		return "", ErrNoRecipientEmail
	}

	owner, err := s.store.GetProfile(ctx, repository.UUID(ownerID))
	if err != nil {
		return "", domain.Internal(err, op, "failed to load profile")
	}

	msg, err := s.mailer.Compose(sheet.MemberEmail, email.TimesheetDecisionEmail{
		BusinessName: owner.BusinessName,
		MemberName:   sheet.MemberName,
		WeekStart:    sheet.WeekStart.Time,
		TotalHours:   sheet.TotalHours,
		Approved:     params.Status == TimesheetApproved,
		Notes:        params.Notes,
	})
	if err != nil {
		return "", domain.Internal(err, op, "failed to render email")
	}
	msg.FromName = owner.BusinessName
	msg.ReplyTo = owner.Email

	return s.deliver(ctx, repository.CreateEmailLogParams{
		UserID:         repository.UUID(ownerID),
		TemplateType:   string(domain.TemplateTimesheetDecision),
		RecipientEmail: sheet.MemberEmail,
		Subject:        msg.Subject,
	}, msg)
}

// deliver writes the pending log row, sends, and records the outcome.
func (s *NotificationService) deliver(ctx context.Context, logParams repository.CreateEmailLogParams, msg *email.Email) (string, error) {
	const op = "notification.deliver"

	entry, err := s.store.CreateEmailLog(ctx, logParams)
	if err != nil {
		return "", domain.Internal(err, op, "failed to record email")
	}

	messageID, sendErr := s.mailer.Send(ctx, msg)
	if sendErr != nil {
		telemetry.Business.RecordEmail(logParams.TemplateType, "send_failed")
		if err := s.store.MarkEmailLogFailed(ctx, repository.MarkEmailLogFailedParams{
			ID:    entry.ID,
			Error: repository.Text(sendErr.Error()),
		}); err != nil {
			s.logger.Error("failed to mark email log failed", "email_log_id", repository.UUIDFromPg(entry.ID), "error", err)
		}
		return "", sendFailure(op, sendErr)
	}

	telemetry.Business.RecordEmail(logParams.TemplateType, "")
	if err := s.store.MarkEmailLogSent(ctx, repository.MarkEmailLogSentParams{
		ID:                entry.ID,
		ProviderMessageID: repository.Text(messageID),
	}); err != nil {
		// The email is out; a stale pending row is preferable to reporting
		// a failure the caller would retry.
		s.logger.Error("failed to mark email log sent", "email_log_id", repository.UUIDFromPg(entry.ID), "error", err)
	}

	s.logger.Info("email sent",
		"template_type", logParams.TemplateType,
		"message_id", messageID,
	)
	return messageID, nil
}

// sendFailure maps a Sender error onto a domain error. Provider rejections
// carry the provider's response body as details.
func sendFailure(op string, err error) error {
	if pe, ok := email.AsProviderError(err); ok {
		return domain.Upstream(err, op, "Email provider rejected the message", pe.Body)
	}
	var ee *email.EmailError
	if errors.As(err, &ee) {
		return domain.Invalid(op, ee.Message)
	}
	return domain.Upstream(err, op, "Failed to send email", "")
}
