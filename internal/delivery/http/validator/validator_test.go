package validator

import (
	"testing"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUp struct {
	Email    string `json:"email" validate:"required,email"`
	Quantity int    `json:"quantity" validate:"min=1"`
	Status   string `json:"status" validate:"omitempty,oneof=active suspended"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signUp{Email: "ana@example.com", Quantity: 1}))

	err := v.Validate(&signUp{Email: "nope", Quantity: 0, Status: "gone"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "email must be a valid email")
	assert.Contains(t, err.Error(), "quantity must be at least 1")
	assert.Contains(t, err.Error(), "status must be one of [active suspended]")
}
