// Package response writes the unified JSON envelope of the view API.
package response

import (
	"net/http"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Page is a list payload with optional pagination.
type Page[T any] struct {
	Items      []T                `json:"items"`
	Pagination *entity.Pagination `json:"pagination,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// OK is Success with 200 and the default message.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data, "")
}

// List writes items, never null, with their pagination.
func List[T any](c echo.Context, items []T, pagination *entity.Pagination) error {
	if items == nil {
		items = []T{}
	}

	return OK(c, Page[T]{Items: items, Pagination: pagination})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, "")
}
