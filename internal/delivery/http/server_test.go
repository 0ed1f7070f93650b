package http

import (
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router"
	"marketplace/internal/delivery/http/router/handler"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type nopPublisher struct{}

func (nopPublisher) PublishReading(entity.PositionReading) int { return 0 }
func (nopPublisher) PublishError(entity.PositionError) int     { return 0 }

type serverFixtures struct {
	auth      *mockUsecase.MockAuthUsecase
	cart      *mockUsecase.MockCartUsecase
	dashboard *mockUsecase.MockDashboardUsecase
}

func createTestEcho(t *testing.T) (*echo.Echo, *serverFixtures) {
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fx := &serverFixtures{
		auth:      mockUsecase.NewMockAuthUsecase(t),
		cart:      mockUsecase.NewMockCartUsecase(t),
		dashboard: mockUsecase.NewMockDashboardUsecase(t),
	}

	e := NewEcho(HTTPParams{
		Config:          cfg,
		Logger:          logger,
		RequestID:       middleware.NewRequestIDMiddleware(logger),
		RequestLogger:   middleware.NewLoggerMiddleware(logger, cfg),
		ErrorMiddleware: middleware.NewErrorMiddleware(logger, cfg),
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(fx.auth),
			CartHandler: handler.NewCartHandler(fx.cart, mockUsecase.NewMockWishlistUsecase(t)),
			CatalogHandler: handler.NewCatalogHandler(
				mockUsecase.NewMockCategoryUsecase(t),
				mockUsecase.NewMockProductUsecase(t),
				mockUsecase.NewMockSearchHistoryUsecase(t),
			),
			OrderHandler: handler.NewOrderHandler(mockUsecase.NewMockOrderUsecase(t)),
			AccountHandler: handler.NewAccountHandler(
				mockUsecase.NewMockAddressUsecase(t),
				mockUsecase.NewMockDeviceSessionUsecase(t),
			),
			MessagingHandler: handler.NewMessagingHandler(
				mockUsecase.NewMockInboxUsecase(t),
				mockUsecase.NewMockNotificationUsecase(t),
			),
			KYCHandler: handler.NewKYCHandler(mockUsecase.NewMockKYCUsecase(t), nopPublisher{}, store.NewStore(nil, logger)),
			AdminHandler: handler.NewAdminHandler(
				fx.dashboard,
				mockUsecase.NewMockUserAdminUsecase(t),
				mockUsecase.NewMockVendorDirectoryUsecase(t),
			),
			AuthMiddleware: middleware.NewAuthMiddleware(fx.auth),
		},
	})

	return e, fx
}

func serve(e *echo.Echo, method, target string) (*httptest.ResponseRecorder, domainerrors.Response) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp domainerrors.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

func TestServer_Health(t *testing.T) {
	e, _ := createTestEcho(t)

	rec, resp := serve(e, nethttp.MethodGet, "/health")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_KeepsCallerRequestID(t *testing.T) {
	e, _ := createTestEcho(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_SignedOutCannotReadCart(t *testing.T) {
	e, fx := createTestEcho(t)
	fx.auth.EXPECT().Roles().Return(nil)

	rec, resp := serve(e, nethttp.MethodGet, "/cart")
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_AUTHENTICATED", resp.Error.Code)
	fx.cart.AssertNotCalled(t, "Fetch", mock.Anything)
}

func TestServer_AdminRoutesRequireAdmin(t *testing.T) {
	e, fx := createTestEcho(t)
	fx.auth.EXPECT().Roles().Return(entity.Roles{entity.RoleCustomer, entity.RoleVendor})

	rec, resp := serve(e, nethttp.MethodGet, "/admin/dashboard")
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)
}

func TestServer_AdminDashboard(t *testing.T) {
	e, fx := createTestEcho(t)
	fx.auth.EXPECT().Roles().Return(entity.Roles{entity.RoleAdmin})
	fx.dashboard.EXPECT().Stats(mock.Anything).Return(&entity.DashboardStats{TotalCustomers: 7}, nil)

	rec, resp := serve(e, nethttp.MethodGet, "/admin/dashboard")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.EqualValues(t, 7, resp.Data.(map[string]any)["totalCustomers"])
}

func TestServer_BackendErrorEnvelope(t *testing.T) {
	e, fx := createTestEcho(t)
	fx.auth.EXPECT().Roles().Return(entity.Roles{entity.RoleAdmin})
	fx.dashboard.EXPECT().Stats(mock.Anything).
		Return(nil, domainerrors.NewAPIError(nethttp.StatusServiceUnavailable, "", "Maintenance window", "/api/v1/admin/stats"))

	rec, resp := serve(e, nethttp.MethodGet, "/admin/dashboard")
	assert.Equal(t, nethttp.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Maintenance window", resp.Message)
	assert.Equal(t, "API_ERROR", resp.Error.Code)
}
