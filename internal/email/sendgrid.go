package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendGridClient is the subset of *sendgrid.Client used by SendGridSender.
type sendGridClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridSender implements Sender using the SendGrid v3 mail API.
// SendGrid answers 202 Accepted for a queued message; anything else is
// reported as a *ProviderError carrying the response body.
type SendGridSender struct {
	client   sendGridClient
	from     string
	fromName string
}

// NewSendGridSender creates a SendGrid sender with default from address.
func NewSendGridSender(apiKey, from, fromName string) *SendGridSender {
	return &SendGridSender{
		client:   sendgrid.NewSendClient(apiKey),
		from:     from,
		fromName: fromName,
	}
}

// Send sends an email via SendGrid.
func (s *SendGridSender) Send(ctx context.Context, email *Email) (string, error) {
	msg, err := s.buildMessage(email)
	if err != nil {
		return "", err
	}

	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode != http.StatusAccepted {
		return "", &ProviderError{Provider: "sendgrid", StatusCode: resp.StatusCode, Body: resp.Body}
	}

	return messageIDFromHeaders(resp.Headers), nil
}

func (s *SendGridSender) buildMessage(email *Email) (*mail.SGMailV3, error) {
	if len(email.To) == 0 {
		return nil, ErrNoRecipients
	}

	from, fromName := email.From, email.FromName
	if from == "" {
		from = s.from
	}
	if fromName == "" {
		fromName = s.fromName
	}
	if from == "" {
		return nil, ErrInvalidFromAddress
	}

	msg := mail.NewV3Mail()
	msg.SetFrom(mail.NewEmail(fromName, from))
	msg.Subject = email.Subject

	p := mail.NewPersonalization()
	for _, to := range email.To {
		if to == "" {
			return nil, ErrInvalidToAddress
		}
		p.AddTos(mail.NewEmail("", to))
	}
	msg.AddPersonalizations(p)

	// SendGrid requires text/plain to precede text/html.
	if email.TextBody != "" {
		msg.AddContent(mail.NewContent("text/plain", email.TextBody))
	}
	if email.HTMLBody != "" {
		msg.AddContent(mail.NewContent("text/html", email.HTMLBody))
	}

	if email.ReplyTo != "" {
		msg.SetReplyTo(mail.NewEmail("", email.ReplyTo))
	}
	if len(email.Tags) > 0 {
		msg.AddCategories(email.Tags...)
	}
	for name, value := range email.Headers {
		msg.SetHeader(name, value)
	}

	for _, att := range email.Attachments {
		a := mail.NewAttachment()
		a.SetContent(base64.StdEncoding.EncodeToString(att.Content))
		a.SetType(att.ContentType)
		a.SetFilename(att.Filename)
		a.SetDisposition("attachment")
		msg.AddAttachment(a)
	}

	return msg, nil
}

func messageIDFromHeaders(headers map[string][]string) string {
	for _, key := range []string{"X-Message-Id", "X-Message-ID"} {
		if v := headers[key]; len(v) > 0 {
			return v[0]
		}
	}
	return ""
}
