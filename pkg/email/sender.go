package email

import (
	"fmt"

	"aluxim-mail-relay/config"
)

// NewSender picks the gateway named by EMAIL_PROVIDER.
func NewSender(cfg *config.Config) (Sender, error) {
	switch cfg.EmailProvider {
	case config.ProviderResend, "":
		return NewResendSender(cfg)
	case config.ProviderSMTP:
		return NewSMTPSender(cfg), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.EmailProvider)
	}
}
