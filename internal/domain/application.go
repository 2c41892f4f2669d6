package domain

import "context"

// JobApplication represents a submission from the careers page.
// Message and ResumeURL are optional.
type JobApplication struct {
	Name      FormValue `json:"name" validate:"required"`
	Email     FormValue `json:"email" validate:"required"`
	Position  FormValue `json:"position" validate:"required"`
	Message   FormValue `json:"message"`
	ResumeURL FormValue `json:"resumeUrl"`
}

// ApplicationUsecase defines business logic for job applications
type ApplicationUsecase interface {
	// SubmitApplication notifies the admin inbox, then acknowledges the applicant.
	// The two sends are not atomic: a failed acknowledgment still fails the call.
	SubmitApplication(ctx context.Context, app *JobApplication) error
}
