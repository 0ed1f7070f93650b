package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/store"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vendorServiceFixtures struct {
	service    usecase.VendorDirectoryUsecase
	userRepo   *mockRepo.MockUserRepository
	vendorRepo *mockRepo.MockVendorRepository
	qrCode     *mockService.MockQRCodeService
	state      *store.Store
}

func createTestVendorService(t *testing.T) vendorServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	qrCode := mockService.NewMockQRCodeService(t)
	state := newTestStore(t)

	return vendorServiceFixtures{
		service:    NewVendorDirectoryService(userRepo, vendorRepo, qrCode, state, newTestLogger()),
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		qrCode:     qrCode,
		state:      state,
	}
}

func TestVendorDirectoryService_Load_FetchesExactlyTheListedProfiles(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	users := []entity.User{
		{ID: "u1", FirstName: "Ana", Role: entity.RoleVendor, AccountStatus: entity.AccountStatusActive},
		{ID: "u2", FirstName: "Ben", Role: entity.RoleVendor, AccountStatus: entity.AccountStatusSuspended},
	}
	pagination := &entity.Pagination{Page: 1, Limit: 20, Total: 2}

	fx.userRepo.EXPECT().
		List(ctx, entity.UserFilter{Role: entity.RoleVendor, Page: 1, Limit: 20}).
		Return(users, pagination, nil)
	fx.vendorRepo.EXPECT().
		FindByIDs(ctx, []string{"u1", "u2"}).
		Return([]entity.VendorProfile{{ID: "u1", BusinessName: "Ana Bakes", Status: entity.VendorStatusActive, Rating: 4}}, nil).
		Once()

	combined, err := fx.service.Load(ctx, 1, 20)
	require.NoError(t, err)
	require.Len(t, combined, 2)

	assert.Equal(t, "Ana Bakes", combined[0].BusinessName)
	assert.True(t, combined[0].HasVendorProfile)
	assert.Equal(t, "Ben's Store", combined[1].BusinessName)
	assert.Equal(t, entity.VendorStatusSuspended, combined[1].Status)
	assert.False(t, combined[1].HasVendorProfile)

	assert.Equal(t, pagination, fx.state.Vendors.Snapshot().Pagination)
}

func TestVendorDirectoryService_Load_NoUsersSkipsProfileRequest(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx, mock.Anything).Return([]entity.User{}, nil, nil)

	combined, err := fx.service.Load(ctx, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, combined)
	fx.vendorRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}

func TestVendorDirectoryService_Directory(t *testing.T) {
	fx := createTestVendorService(t)

	fx.state.Vendors.SetItems([]entity.CombinedVendor{
		{ID: "1", BusinessName: "Green Grocer", Status: entity.VendorStatusActive, Rating: 4.5},
		{ID: "2", BusinessName: "Blue Books", Status: entity.VendorStatusPending, Rating: 3},
		{ID: "3", BusinessName: "Green Garden", Status: entity.VendorStatusSuspended},
	}, nil)

	all := fx.service.Directory(usecase.VendorQuery{})
	assert.Len(t, all.Vendors, 3)

	filtered := fx.service.Directory(usecase.VendorQuery{Search: "green", Tab: string(entity.VendorStatusActive)})
	require.Len(t, filtered.Vendors, 1)
	assert.Equal(t, "1", filtered.Vendors[0].ID)

	// Stats describe the whole loaded list, not the filtered view.
	assert.Equal(t, 3, filtered.Stats.Total)
	assert.Equal(t, 1, filtered.Stats.ByStatus[entity.VendorStatusPending])
	assert.InDelta(t, 2.5, filtered.Stats.AverageRating, 0.001)
}

func TestVendorDirectoryService_UpdateStatus(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	fx.state.Vendors.SetItems([]entity.CombinedVendor{
		{ID: "1", FullName: "Ana Lee", BusinessName: "Ana Bakes", Status: entity.VendorStatusPending},
	}, nil)

	fx.vendorRepo.EXPECT().
		UpdateStatus(ctx, "1", entity.VendorStatusActive, "documents ok").
		Return(&entity.VendorProfile{ID: "1", BusinessName: "Ana Bakes", Status: entity.VendorStatusActive}, nil)

	updated, err := fx.service.UpdateStatus(ctx, "1", usecase.UpdateVendorStatusInput{
		Status: entity.VendorStatusActive,
		Reason: " documents ok ",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusActive, updated.Status)
	assert.Equal(t, "Ana Lee", updated.FullName)
	assert.Equal(t, entity.VendorStatusActive, fx.state.Vendors.Items()[0].Status)
}

func TestVendorDirectoryService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestVendorService(t)

	_, err := fx.service.UpdateStatus(context.Background(), "1", usecase.UpdateVendorStatusInput{Status: "closed"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVendorDirectoryService_StorefrontQR(t *testing.T) {
	fx := createTestVendorService(t)

	fx.qrCode.EXPECT().GenerateStorefrontQR("v1").Return([]byte{0x89, 'P', 'N', 'G'}, nil)
	fx.qrCode.EXPECT().StorefrontURL("v1").Return("https://shop.example/store/v1")

	qr, err := fx.service.StorefrontQR("v1")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/store/v1", qr.URL)
	assert.NotEmpty(t, qr.PNG)
}
