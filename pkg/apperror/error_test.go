package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryWrapsCause(t *testing.T) {
	cause := errors.New("401 invalid api key")
	err := Delivery("Failed to send message.", cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, "Failed to send message.", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestValidationIsBadRequest(t *testing.T) {
	err := Validation("All fields required.", nil)
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Nil(t, err.Unwrap())
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("template: nil pointer")
	err := Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, "Internal Server Error", err.Error())
	assert.ErrorIs(t, err, cause)
}
