package domain

import "context"

// ContactMessage represents a contact form submission
type ContactMessage struct {
	Name    FormValue `json:"name" validate:"required"`
	Email   FormValue `json:"email" validate:"required"`
	Subject FormValue `json:"subject" validate:"required"`
	Message FormValue `json:"message" validate:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and forwards it to the admin inbox
	SendContactMessage(ctx context.Context, msg *ContactMessage) error
}
