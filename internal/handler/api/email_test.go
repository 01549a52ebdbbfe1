package api

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	sendFunc   func(ctx context.Context, userID uuid.UUID, p service.SendEmailParams) (string, error)
	notifyFunc func(ctx context.Context, ownerID uuid.UUID, p service.NotifyTimesheetParams) (string, error)

	sent     []service.SendEmailParams
	notified []service.NotifyTimesheetParams
	userIDs  []uuid.UUID
}

func (f *fakeNotifier) SendEmail(ctx context.Context, userID uuid.UUID, p service.SendEmailParams) (string, error) {
	f.sent = append(f.sent, p)
	f.userIDs = append(f.userIDs, userID)
	if f.sendFunc != nil {
		return f.sendFunc(ctx, userID, p)
	}
	return "msg_123", nil
}

func (f *fakeNotifier) NotifyTimesheet(ctx context.Context, ownerID uuid.UUID, p service.NotifyTimesheetParams) (string, error) {
	f.notified = append(f.notified, p)
	f.userIDs = append(f.userIDs, ownerID)
	if f.notifyFunc != nil {
		return f.notifyFunc(ctx, ownerID, p)
	}
	return "msg_456", nil
}

func TestEmailHandler_Send(t *testing.T) {
	notifier := &fakeNotifier{}
	h := NewEmailHandler(notifier, nil)
	quoteID := uuid.New()

	rr := httptest.NewRecorder()
	h.Send(rr, newRequest(t, "/api/email/send", map[string]any{
		"to":                  "customer@example.com",
		"subject":             "Your quote",
		"html":                "<p>Quote attached</p>",
		"from_name":           "Smith Plumbing",
		"reply_to":            "dave@smithplumbing.co.uk",
		"tags":                []string{"quote"},
		"attachment_base64":   base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
		"attachment_filename": "Q-0001.pdf",
		"quote_id":            quoteID.String(),
		"template_type":       "quote",
	}))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := decodeBody(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "msg_123", body["message_id"])

	require.Len(t, notifier.sent, 1)
	p := notifier.sent[0]
	assert.Equal(t, testUserID, notifier.userIDs[0])
	assert.Equal(t, "customer@example.com", p.To)
	assert.Equal(t, "Smith Plumbing", p.FromName)
	assert.Equal(t, quoteID, p.QuoteID)
	assert.Equal(t, domain.TemplateQuote, p.TemplateType)
	require.NotNil(t, p.Attachment)
	assert.Equal(t, "Q-0001.pdf", p.Attachment.Filename)
	assert.Equal(t, "application/pdf", p.Attachment.ContentType)
	assert.Equal(t, []byte("%PDF-1.4"), p.Attachment.Content)
}

func TestEmailHandler_SendRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    any
		wantErr string
	}{
		{"invalid json", "{", "Invalid JSON body"},
		{"empty body", nil, "Request body is empty"},
		{"missing subject", map[string]any{"to": "a@b.co", "html": "x"}, "subject is required"},
		{"attachment without filename", map[string]any{
			"to": "a@b.co", "subject": "s", "html": "x", "attachment_base64": "JVBERg==",
		}, "attachment_filename is required"},
		{"attachment not base64", map[string]any{
			"to": "a@b.co", "subject": "s", "html": "x", "attachment_base64": "%%%", "attachment_filename": "a.pdf",
		}, "attachment_base64 is not valid base64"},
		{"reserved template type", map[string]any{
			"to": "a@b.co", "subject": "s", "html": "x", "template_type": "payment_reminder",
		}, "template_type must be one of: quote, invoice, custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &fakeNotifier{}
			h := NewEmailHandler(notifier, nil)

			rr := httptest.NewRecorder()
			h.Send(rr, newRequest(t, "/api/email/send", tt.body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.wantErr, decodeBody(t, rr)["error"])
			assert.Empty(t, notifier.sent)
		})
	}
}

func TestEmailHandler_ProviderRejection(t *testing.T) {
	notifier := &fakeNotifier{
		sendFunc: func(ctx context.Context, userID uuid.UUID, p service.SendEmailParams) (string, error) {
			return "", domain.Upstream(errors.New("sendgrid: status 400"), "notification.deliver",
				"Email provider rejected the message", `{"errors":[{"message":"bad from"}]}`)
		},
	}
	h := NewEmailHandler(notifier, nil)

	rr := httptest.NewRecorder()
	h.Send(rr, newRequest(t, "/api/email/send", map[string]any{
		"to": "a@b.co", "subject": "s", "html": "x",
	}))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Email provider rejected the message", body["error"])
	assert.Equal(t, `{"errors":[{"message":"bad from"}]}`, body["details"])
}

func TestEmailHandler_RequiresUser(t *testing.T) {
	h := NewEmailHandler(&fakeNotifier{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/email/send", nil)

	rr := httptest.NewRecorder()
	h.Send(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestEmailHandler_NotifyTimesheet(t *testing.T) {
	notifier := &fakeNotifier{}
	h := NewEmailHandler(notifier, nil)
	sheetID := uuid.New()

	rr := httptest.NewRecorder()
	h.NotifyTimesheet(rr, newRequest(t, "/api/timesheets/notify", map[string]any{
		"timesheet_id": sheetID.String(),
		"status":       "rejected",
		"notes":        "Tuesday is missing",
	}))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "msg_456", decodeBody(t, rr)["message_id"])
	require.Len(t, notifier.notified, 1)
	assert.Equal(t, service.NotifyTimesheetParams{
		TimesheetID: sheetID,
		Status:      service.TimesheetRejected,
		Notes:       "Tuesday is missing",
	}, notifier.notified[0])
	assert.Equal(t, testUserID, notifier.userIDs[0])
}

func TestEmailHandler_NotifyTimesheetNotFound(t *testing.T) {
	notifier := &fakeNotifier{
		notifyFunc: func(ctx context.Context, ownerID uuid.UUID, p service.NotifyTimesheetParams) (string, error) {
			return "", service.ErrTimesheetNotFound
		},
	}
	h := NewEmailHandler(notifier, nil)

	rr := httptest.NewRecorder()
	h.NotifyTimesheet(rr, newRequest(t, "/api/timesheets/notify", map[string]any{
		"timesheet_id": uuid.NewString(),
		"status":       "approved",
	}))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
