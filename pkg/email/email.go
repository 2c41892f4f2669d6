package email

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by a Sender whose credentials are missing.
var ErrNotConfigured = errors.New("email service is not configured")

// Sender delivers a single email through an external gateway.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a fully rendered outbound email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}
