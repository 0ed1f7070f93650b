// Package handler contains the view API handlers.
package handler

import (
	"net/http"
	"strconv"

	"marketplace/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// bindAndValidate binds the request into v and runs the echo validator on it.
func bindAndValidate(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return response.BindingError(c, "Invalid request body")
	}

	return c.Validate(v)
}

// pageParams reads page and limit, falling back to defaults on bad input.
func pageParams(c echo.Context) (page, limit int) {
	page = queryInt(c, "page", defaultPage)
	if page < 1 {
		page = defaultPage
	}

	limit = queryInt(c, "limit", defaultLimit)
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}

	return page, limit
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return n
}
