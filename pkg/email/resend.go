package email

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"aluxim-mail-relay/config"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers mail through the Resend transactional API.
type ResendSender struct {
	client *resend.Client
	apiKey string
}

// NewResendSender builds a Resend client from config. A custom base URL is
// only used for pointing the client at a local stub.
func NewResendSender(cfg *config.Config) (*ResendSender, error) {
	client := resend.NewClient(cfg.ResendAPIKey)

	if cfg.ResendBaseURL != "" {
		base, err := url.Parse(strings.TrimRight(cfg.ResendBaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid RESEND_BASE_URL: %w", err)
		}
		client.BaseURL = base
	}

	return &ResendSender{
		client: client,
		apiKey: cfg.ResendAPIKey,
	}, nil
}

// Send sends one email. Retries are left to the caller; the relay does none.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks that an API key is present
func (s *ResendSender) IsConfigured() bool {
	return s.apiKey != ""
}
