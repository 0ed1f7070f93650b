package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"

	"github.com/labstack/echo/v4"
)

// statusClientClosed is written when the caller went away before the handler finished.
const statusClientClosed = 499

// ErrorMiddleware turns handler errors into the response envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if writeErr := m.write(err, c); writeErr != nil {
		m.logger.Warn("Failed to write error response", slog.Any("error", writeErr))
	}
}

func (m *ErrorMiddleware) write(err error, c echo.Context) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	// Geolocation failures keep their own user-facing text per code.
	if posErr, ok := errors.AsType[*entity.PositionError](err); ok {
		return response.Error(c, http.StatusUnprocessableEntity,
			fmt.Sprintf("POSITION_ERROR_%d", posErr.Code), posErr.Error(), "")
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := fmt.Sprint(httpErr.Message)

		return response.Error(c, httpErr.Code, "HTTP_ERROR", message, message)
	}

	if errors.Is(err, context.Canceled) {
		return response.Error(c, statusClientClosed, "REQUEST_CANCELLED", domainerrors.Message(err), "")
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	details := ""
	if m.debug {
		details = err.Error()
	}

	return response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", details)
}
