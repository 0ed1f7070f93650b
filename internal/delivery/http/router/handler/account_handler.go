package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler serves the address book and signed-in devices.
type AccountHandler struct {
	addresses usecase.AddressUsecase
	sessions  usecase.DeviceSessionUsecase
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(addresses usecase.AddressUsecase, sessions usecase.DeviceSessionUsecase) *AccountHandler {
	return &AccountHandler{addresses: addresses, sessions: sessions}
}

// ListAddresses returns the address book.
func (h *AccountHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.addresses.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, addresses, nil)
}

// CreateAddress adds an address.
func (h *AccountHandler) CreateAddress(c echo.Context) error {
	var input entity.Address
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid address")
	}

	address, err := h.addresses.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address saved")
}

// UpdateAddress replaces an address.
func (h *AccountHandler) UpdateAddress(c echo.Context) error {
	var input entity.Address
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid address")
	}

	address, err := h.addresses.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, address)
}

// DeleteAddress removes an address.
func (h *AccountHandler) DeleteAddress(c echo.Context) error {
	if err := h.addresses.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted")
}

// SetDefaultAddress marks an address as default.
func (h *AccountHandler) SetDefaultAddress(c echo.Context) error {
	address, err := h.addresses.SetDefault(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, address)
}

// ListSessions returns the signed-in devices.
func (h *AccountHandler) ListSessions(c echo.Context) error {
	sessions, err := h.sessions.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, sessions, nil)
}

// RevokeSession signs one device out.
func (h *AccountHandler) RevokeSession(c echo.Context) error {
	if err := h.sessions.Revoke(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Session revoked")
}

// RevokeOtherSessions signs out every device except this one.
func (h *AccountHandler) RevokeOtherSessions(c echo.Context) error {
	if err := h.sessions.RevokeOthers(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Other sessions revoked")
}
