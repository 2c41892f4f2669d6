package usecase

import (
	"aluxim-mail-relay/config"
	"aluxim-mail-relay/internal/domain"
	"aluxim-mail-relay/pkg/apperror"
	"aluxim-mail-relay/pkg/email"
	"aluxim-mail-relay/pkg/logger"
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	MsgApplicationFieldsRequired = "Missing required fields."
	MsgApplicationSendFailed     = "Failed to send application."
)

type applicationUsecase struct {
	sender       email.Sender
	validate     *validator.Validate
	from         string
	adminTo      string
	organization string
	team         string
}

// NewApplicationUsecase creates a new job application usecase
func NewApplicationUsecase(sender email.Sender, validate *validator.Validate, cfg *config.Config) domain.ApplicationUsecase {
	return &applicationUsecase{
		sender:       sender,
		validate:     validate,
		from:         cfg.CareersFrom,
		adminTo:      cfg.AdminEmailTo,
		organization: cfg.OrganizationName,
		team:         cfg.TeamSignature,
	}
}

func (uc *applicationUsecase) SubmitApplication(ctx context.Context, app *domain.JobApplication) error {
	if err := uc.validate.Struct(app); err != nil {
		return apperror.Validation(MsgApplicationFieldsRequired, err)
	}

	data := email.ApplicationEmailData{
		Name:         app.Name.String(),
		Email:        app.Email.String(),
		Position:     app.Position.String(),
		Message:      app.Message.String(),
		ResumeURL:    app.ResumeURL.String(),
		Organization: uc.organization,
		Team:         uc.team,
	}

	adminHTML, err := email.RenderApplicationAdmin(data)
	if err != nil {
		return apperror.Delivery(MsgApplicationSendFailed, err)
	}
	ackHTML, err := email.RenderApplicationAck(data)
	if err != nil {
		return apperror.Delivery(MsgApplicationSendFailed, err)
	}

	// 1. Admin notification
	err = uc.sender.Send(ctx, email.Message{
		From:    uc.from,
		To:      []string{uc.adminTo},
		Subject: email.ApplicationAdminSubject(data.Position),
		HTML:    adminHTML,
	})
	if err != nil {
		return apperror.Delivery(MsgApplicationSendFailed, fmt.Errorf("failed to notify admin: %w", err))
	}

	// 2. Applicant acknowledgment. The admin has already been notified if this fails.
	err = uc.sender.Send(ctx, email.Message{
		From:    uc.from,
		To:      []string{data.Email},
		Subject: email.ApplicationAckSubject(data.Position),
		HTML:    ackHTML,
	})
	if err != nil {
		return apperror.Delivery(MsgApplicationSendFailed, fmt.Errorf("failed to acknowledge applicant: %w", err))
	}

	logger.Log.Info("Job application received", "position", data.Position)
	return nil
}
