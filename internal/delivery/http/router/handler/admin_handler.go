package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler serves the admin console.
type AdminHandler struct {
	dashboard usecase.DashboardUsecase
	users     usecase.UserAdminUsecase
	vendors   usecase.VendorDirectoryUsecase
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(
	dashboard usecase.DashboardUsecase,
	users usecase.UserAdminUsecase,
	vendors usecase.VendorDirectoryUsecase,
) *AdminHandler {
	return &AdminHandler{
		dashboard: dashboard,
		users:     users,
		vendors:   vendors,
	}
}

// Dashboard returns the platform summary.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, stats)
}

// ListUsers lists accounts filtered by role, status and search.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, limit := pageParams(c)

	users, err := h.users.List(c.Request().Context(), entity.UserFilter{
		Role:   entity.Role(c.QueryParam("role")),
		Status: entity.AccountStatus(c.QueryParam("status")),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, users, nil)
}

// GetUser returns one account.
func (h *AdminHandler) GetUser(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// UpdateUserStatus moderates an account.
func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	var input usecase.UpdateUserStatusInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := h.users.UpdateStatus(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// Vendors loads a page of vendors and returns the filtered directory.
// Stats always cover every loaded vendor.
func (h *AdminHandler) Vendors(c echo.Context) error {
	var query usecase.VendorQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid vendor query")
	}

	page, limit := pageParams(c)
	if _, err := h.vendors.Load(c.Request().Context(), page, limit); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.vendors.Directory(query))
}

// UpdateVendorStatus moderates a vendor profile.
func (h *AdminHandler) UpdateVendorStatus(c echo.Context) error {
	var input usecase.UpdateVendorStatusInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	vendor, err := h.vendors.UpdateStatus(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, vendor)
}

// VendorQR renders the vendor storefront QR code as PNG.
func (h *AdminHandler) VendorQR(c echo.Context) error {
	qr, err := h.vendors.StorefrontQR(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("X-Storefront-Url", qr.URL)

	return c.Blob(http.StatusOK, "image/png", qr.PNG)
}
