package errors

import (
	"context"
	"net/http"
	"testing"

	pkgerrors "marketplace/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "api error keeps backend message", err: NewAPIError(http.StatusBadRequest, "", "Out of stock", "/api/v1/cart/items"), want: "Out of stock"},
		{name: "api error falls back to status text", err: NewAPIError(http.StatusNotFound, "", "", "/api/v1/orders/1"), want: "Not Found"},
		{name: "wrapped base error", err: pkgerrors.Wrap(ErrStockExceeded, "update cart item"), want: ErrStockExceeded.Message()},
		{name: "network timeout", err: NewNetworkError(context.DeadlineExceeded, "/api/v1/cart"), want: "The server took too long to respond"},
		{name: "cancelled", err: context.Canceled, want: "Request was cancelled"},
		{name: "plain error", err: pkgerrors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestBaseError_IsMatchesDetailedCopies(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("first_name is required")

	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.NotErrorIs(t, detailed, ErrStockExceeded)
	assert.Equal(t, "first_name is required", detailed.Details())
}

func TestBackendErrorBody(t *testing.T) {
	body := BackendErrorBody{}
	body.Error = &struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}{Message: "nested", Code: "NESTED"}

	assert.Equal(t, "nested", body.Text())
	assert.Equal(t, "NESTED", body.BusinessCode())

	body.Message = "top"
	assert.Equal(t, "top", body.Text())
}
