package bootstrap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/dukerupert/tradeline/internal"
	"github.com/dukerupert/tradeline/internal/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailSender(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     internal.EmailConfig
		want    email.Sender
		wantErr bool
	}{
		{"sendgrid", internal.EmailConfig{Provider: "sendgrid", SendGridAPIKey: "SG.key"}, &email.SendGridSender{}, false},
		{"sendgrid without key", internal.EmailConfig{Provider: "sendgrid"}, nil, true},
		{"postmark", internal.EmailConfig{Provider: "postmark", PostmarkToken: "pm"}, &email.PostmarkSender{}, false},
		{"postmark without token", internal.EmailConfig{Provider: "postmark"}, nil, true},
		{"smtp", internal.EmailConfig{Provider: "smtp", Host: "localhost", Port: 1025}, &email.SMTPSender{}, false},
		{"unknown", internal.EmailConfig{Provider: "pigeon"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewEmailSender(tt.cfg, logger)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestNewMailer_ParsesTemplates(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mailer, err := NewMailer(internal.EmailConfig{
		Provider: "smtp",
		Host:     "localhost",
		Port:     1025,
		From:     "noreply@tradeline.local",
		FromName: "Tradeline",
	}, logger)

	require.NoError(t, err)
	assert.NotNil(t, mailer)
}
