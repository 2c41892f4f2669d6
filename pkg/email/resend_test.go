package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aluxim-mail-relay/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Path          string
	Authorization string
	Body          map[string]any
}

func newResendStub(t *testing.T, status int, response string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Path = r.URL.Path
		captured.Authorization = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&captured.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestResendSenderSend(t *testing.T) {
	srv, captured := newResendStub(t, http.StatusOK, `{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`)

	sender, err := NewResendSender(&config.Config{ResendAPIKey: "re_test", ResendBaseURL: srv.URL})
	require.NoError(t, err)

	err = sender.Send(context.Background(), Message{
		From:    "Aluxim Contact <onboarding@resend.dev>",
		To:      []string{"admin@example.com"},
		Subject: "New Contact Message: Hi",
		HTML:    "<p>Hi</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "/emails", captured.Path)
	assert.Equal(t, "Bearer re_test", captured.Authorization)
	assert.Equal(t, "New Contact Message: Hi", captured.Body["subject"])
	assert.Equal(t, "<p>Hi</p>", captured.Body["html"])
	assert.Equal(t, []any{"admin@example.com"}, captured.Body["to"])
}

func TestResendSenderGatewayError(t *testing.T) {
	srv, _ := newResendStub(t, http.StatusUnauthorized, `{"statusCode":401,"name":"validation_error","message":"API key is invalid"}`)

	sender, err := NewResendSender(&config.Config{ResendAPIKey: "re_bad", ResendBaseURL: srv.URL})
	require.NoError(t, err)

	err = sender.Send(context.Background(), Message{To: []string{"admin@example.com"}})
	assert.Error(t, err)
}

func TestResendSenderWithoutKey(t *testing.T) {
	sender, err := NewResendSender(&config.Config{})
	require.NoError(t, err)

	assert.False(t, sender.IsConfigured())
	assert.ErrorIs(t, sender.Send(context.Background(), Message{}), ErrNotConfigured)
}
