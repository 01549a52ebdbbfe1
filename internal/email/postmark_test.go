package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostmark(t *testing.T, handler http.HandlerFunc) *PostmarkSender {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewPostmarkSender("pm-token", "noreply@tradeline.test", "Tradeline")
	p.endpoint = srv.URL
	return p
}

func TestPostmarkSender_Send(t *testing.T) {
	var got postmarkEmail
	p := newTestPostmark(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pm-token", r.Header.Get("X-Postmark-Server-Token"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(postmarkResponse{MessageID: "pm-1"})
	})

	id, err := p.Send(context.Background(), &Email{
		To:       []string{"a@example.com", "b@example.com"},
		Subject:  "Hello",
		HTMLBody: "<p>Hi</p>",
		Tags:     []string{"quote_followup", "ignored"},
	})
	require.NoError(t, err)

	assert.Equal(t, "pm-1", id)
	assert.Equal(t, "Tradeline <noreply@tradeline.test>", got.From)
	assert.Equal(t, "a@example.com,b@example.com", got.To)
	assert.Equal(t, "quote_followup", got.Tag)
}

func TestPostmarkSender_ErrorStatus(t *testing.T) {
	p := newTestPostmark(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"ErrorCode":300,"Message":"Invalid email request"}`))
	})

	_, err := p.Send(context.Background(), &Email{To: []string{"a@example.com"}, Subject: "x", TextBody: "y"})

	pe, ok := AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, "postmark", pe.Provider)
	assert.Equal(t, http.StatusUnprocessableEntity, pe.StatusCode)
}
