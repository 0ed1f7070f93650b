package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves sign-in, sign-out and the current user.
type AuthHandler struct {
	auth usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(auth usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles email and password sign-in.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	session, err := h.auth.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session.User, "Login successful")
}

// GoogleLogin returns the Google authorization URL, or redirects to it when redirect=true.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	authURL, state := h.auth.BeginGoogleSignIn()

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, authURL)
	}

	return response.OK(c, map[string]string{
		"url":   authURL,
		"state": state,
	})
}

// GoogleCallback completes Google sign-in with the returned state and credential.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	var input usecase.GoogleSignInInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	session, err := h.auth.GoogleSignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session.User, "Google sign-in successful")
}

// Logout always clears local state.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Me refreshes and returns the signed-in user with its roles.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.auth.Me(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{
		"user":  user,
		"roles": h.auth.Roles(),
	})
}
