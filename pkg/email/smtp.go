package email

import (
	"context"
	"fmt"
	"net/smtp"

	"aluxim-mail-relay/config"

	jwemail "github.com/jordan-wright/email"
)

// SMTPSender delivers mail through a plain SMTP relay (Brevo by default).
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

// Send sends one email. net/smtp has no context support, so ctx is only
// checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := buildEmail(msg).Send(addr, auth); err != nil {
		return fmt.Errorf("smtp: failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

func buildEmail(msg Message) *jwemail.Email {
	e := jwemail.NewEmail()
	e.From = msg.From
	e.To = msg.To
	e.Subject = msg.Subject
	e.HTML = []byte(msg.HTML)
	return e
}
