package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminHandlerFixtures struct {
	dashboard *mockUsecase.MockDashboardUsecase
	users     *mockUsecase.MockUserAdminUsecase
	vendors   *mockUsecase.MockVendorDirectoryUsecase
}

func createTestAdminHandler(t *testing.T) (*AdminHandler, *adminHandlerFixtures) {
	fx := &adminHandlerFixtures{
		dashboard: mockUsecase.NewMockDashboardUsecase(t),
		users:     mockUsecase.NewMockUserAdminUsecase(t),
		vendors:   mockUsecase.NewMockVendorDirectoryUsecase(t),
	}

	return NewAdminHandler(fx.dashboard, fx.users, fx.vendors), fx
}

func TestAdminHandler_Vendors(t *testing.T) {
	h, fx := createTestAdminHandler(t)
	c, rec := newTestContext(t, http.MethodGet,
		"/admin/vendors?page=2&limit=10&search=tea&status=active&status=pending&tab=kyc", "")

	query := usecase.VendorQuery{
		Search:   "tea",
		Statuses: []entity.VendorStatus{entity.VendorStatusActive, entity.VendorStatusPending},
		Tab:      "kyc",
	}
	fx.vendors.EXPECT().Load(mock.Anything, 2, 10).Return(nil, nil)
	fx.vendors.EXPECT().Directory(query).Return(usecase.VendorDirectory{
		Vendors: []entity.CombinedVendor{{ID: "v1"}},
		Stats:   entity.CombinedVendorStats{Total: 3},
	})

	require.NoError(t, h.Vendors(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeResponse(t, rec).Data.(map[string]any)
	assert.Len(t, data["vendors"], 1)
}

func TestAdminHandler_Vendors_LoadFails(t *testing.T) {
	h, fx := createTestAdminHandler(t)
	c, _ := newTestContext(t, http.MethodGet, "/admin/vendors", "")

	fx.vendors.EXPECT().Load(mock.Anything, defaultPage, defaultLimit).
		Return(nil, domainerrors.NewAPIError(http.StatusServiceUnavailable, "", "", "/api/v1/users"))

	err := h.Vendors(c)
	require.Error(t, err)
	fx.vendors.AssertNotCalled(t, "Directory", mock.Anything)
}

func TestAdminHandler_UpdateVendorStatus_RejectsUnknownStatus(t *testing.T) {
	h, fx := createTestAdminHandler(t)
	c, _ := newTestContext(t, http.MethodPatch, "/admin/vendors/v1/status", `{"status":"banned"}`)
	c.SetParamNames("id")
	c.SetParamValues("v1")

	require.ErrorIs(t, h.UpdateVendorStatus(c), domainerrors.ErrValidationFailed)
	fx.vendors.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminHandler_VendorQR(t *testing.T) {
	h, fx := createTestAdminHandler(t)
	c, rec := newTestContext(t, http.MethodGet, "/admin/vendors/v1/qr", "")
	c.SetParamNames("id")
	c.SetParamValues("v1")

	png := []byte{0x89, 'P', 'N', 'G'}
	fx.vendors.EXPECT().StorefrontQR("v1").Return(&usecase.StorefrontQR{URL: "https://shop.example/vendors/v1", PNG: png}, nil)

	require.NoError(t, h.VendorQR(c))
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "https://shop.example/vendors/v1", rec.Header().Get("X-Storefront-Url"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestAdminHandler_ListUsers(t *testing.T) {
	h, fx := createTestAdminHandler(t)
	c, _ := newTestContext(t, http.MethodGet, "/admin/users?role=vendor&limit=500", "")

	fx.users.EXPECT().List(mock.Anything, entity.UserFilter{
		Role:  entity.RoleVendor,
		Page:  defaultPage,
		Limit: defaultLimit,
	}).Return([]entity.User{{ID: "u1"}}, nil)

	require.NoError(t, h.ListUsers(c))
}
