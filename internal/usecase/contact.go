package usecase

import (
	"aluxim-mail-relay/config"
	"aluxim-mail-relay/internal/domain"
	"aluxim-mail-relay/pkg/apperror"
	"aluxim-mail-relay/pkg/email"
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	MsgContactFieldsRequired = "All fields required."
	MsgContactSendFailed     = "Failed to send message."
)

type contactUsecase struct {
	sender   email.Sender
	validate *validator.Validate
	from     string
	to       string
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender email.Sender, validate *validator.Validate, cfg *config.Config) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		validate: validate,
		from:     cfg.ContactFrom,
		to:       cfg.AdminEmailTo,
	}
}

// SendContactMessage validates the contact message and sends one email to the admin inbox
func (uc *contactUsecase) SendContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	if err := uc.validate.Struct(msg); err != nil {
		return apperror.Validation(MsgContactFieldsRequired, err)
	}

	html, err := email.RenderContact(email.ContactEmailData{
		Name:    msg.Name.String(),
		Email:   msg.Email.String(),
		Subject: msg.Subject.String(),
		Message: msg.Message.String(),
	})
	if err != nil {
		return apperror.Delivery(MsgContactSendFailed, err)
	}

	err = uc.sender.Send(ctx, email.Message{
		From:    uc.from,
		To:      []string{uc.to},
		Subject: email.ContactSubject(msg.Subject.String()),
		HTML:    html,
	})
	if err != nil {
		return apperror.Delivery(MsgContactSendFailed, fmt.Errorf("failed to send contact email: %w", err))
	}

	return nil
}
