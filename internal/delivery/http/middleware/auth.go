package middleware

import (
	"slices"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates routes on the session held by the auth slice.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate requires a stored, unexpired session and exposes its roles to later handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		roles := m.auth.Roles()
		if len(roles) == 0 {
			return domainerrors.ErrNotAuthenticated
		}

		deliverycontext.SetRoles(c, roles)

		return next(c)
	}
}

// RequireRole must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(required ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles := deliverycontext.GetRoles(c)
			if !slices.ContainsFunc(required, roles.Contains) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + string(required[0]))
			}

			return next(c)
		}
	}
}
