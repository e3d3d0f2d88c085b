package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := ValidationError("invalid input")

	assert.Equal(t, TypeValidation, err.Type)
	assert.Equal(t, "invalid input", err.Message)
	assert.Nil(t, err.Cause)
	assert.NotNil(t, err.Context)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.Contains(t, err.Error(), "validation")
	assert.Contains(t, err.Error(), "invalid input")
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("submission not found")

	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus())
	assert.Contains(t, err.Error(), "not_found")
}

func TestConflictError(t *testing.T) {
	err := ConflictError("already submitted")

	assert.Equal(t, TypeConflict, err.Type)
	assert.Equal(t, http.StatusConflict, err.HTTPStatus())
	assert.Contains(t, err.Error(), "conflict")
}

func TestInternalError(t *testing.T) {
	cause := fmt.Errorf("database connection failed")
	err := InternalError("failed to save submission", cause)

	assert.Equal(t, TypeInternal, err.Type)
	assert.Equal(t, "failed to save submission", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
	assert.Contains(t, err.Error(), "internal")
	assert.Contains(t, err.Error(), "database connection failed")
}

func TestInternalErrorWithoutCause(t *testing.T) {
	err := InternalError("something went wrong", nil)

	assert.Nil(t, err.Cause)
	assert.NotContains(t, err.Error(), "<nil>")
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := InternalError("wrapper", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestWithField(t *testing.T) {
	err := ValidationError("bad mood").
		WithField("mood", "ECSTATIC").
		WithField("user_id", "abc")

	assert.Equal(t, "ECSTATIC", err.Context["mood"])
	assert.Equal(t, "abc", err.Context["user_id"])
}

func TestAsStructuredError_PassThrough(t *testing.T) {
	original := NotFoundError("missing")
	structured := AsStructuredError(original)
	assert.Same(t, original, structured)
}

func TestAsStructuredError_WrapsUnknown(t *testing.T) {
	plain := fmt.Errorf("boom")
	structured := AsStructuredError(plain)

	require.NotNil(t, structured)
	assert.Equal(t, TypeInternal, structured.Type)
	assert.ErrorIs(t, structured, plain)
}

func TestAsStructuredError_Nil(t *testing.T) {
	assert.Nil(t, AsStructuredError(nil))
}

func TestToResponse(t *testing.T) {
	err := ValidationError("bad input").WithField("field", "comment")
	resp := err.ToResponse()

	assert.Equal(t, "bad input", resp.Error)
	assert.Equal(t, TypeValidation, resp.Type)
	assert.Equal(t, "comment", resp.Context["field"])
}
