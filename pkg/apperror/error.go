package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation reports missing or empty required fields. err carries the
// field-level detail for logs only.
func Validation(message string, err error) *AppError {
	return New(http.StatusBadRequest, message, err)
}

// Delivery reports a failed call to the email gateway.
func Delivery(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
