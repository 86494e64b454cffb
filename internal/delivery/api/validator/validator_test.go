package validator

import (
	"testing"

	domainerrors "inspection/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Handle string `json:"handle" validate:"required,max=8"`
	Secret string `json:"secret,omitempty" validate:"required"`
}

func TestValidate_Passes(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{Handle: "root", Secret: "x"}))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&sample{Handle: "much-too-long"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "handle: max=8; secret: required", appErr.Details())
}

func TestValidate_NonStruct(t *testing.T) {
	err := New().Validate("not a struct")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}
