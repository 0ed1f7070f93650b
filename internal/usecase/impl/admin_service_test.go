package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAdminService_UpdateStatus(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	state := newTestStore(t)
	srv := NewUserAdminService(userRepo, state, newTestLogger())
	ctx := context.Background()

	filter := entity.UserFilter{Role: entity.RoleCustomer, Page: 1, Limit: 20}
	userRepo.EXPECT().List(ctx, filter).Return([]entity.User{
		{ID: "u1", AccountStatus: entity.AccountStatusActive},
	}, nil, nil)
	userRepo.EXPECT().UpdateStatus(ctx, "u1", entity.AccountStatusSuspended, "fraud").
		Return(&entity.User{ID: "u1", AccountStatus: entity.AccountStatusSuspended}, nil)

	_, err := srv.List(ctx, filter)
	require.NoError(t, err)

	user, err := srv.UpdateStatus(ctx, "u1", usecase.UpdateUserStatusInput{Status: entity.AccountStatusSuspended, Reason: "fraud"})
	require.NoError(t, err)
	assert.Equal(t, entity.AccountStatusSuspended, user.AccountStatus)
	assert.Equal(t, entity.AccountStatusSuspended, state.Users.Items()[0].AccountStatus)
}

func TestUserAdminService_UpdateStatus_Unknown(t *testing.T) {
	srv := NewUserAdminService(mockRepo.NewMockUserRepository(t), newTestStore(t), newTestLogger())

	_, err := srv.UpdateStatus(context.Background(), "u1", usecase.UpdateUserStatusInput{Status: "banned"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDashboardService_Stats(t *testing.T) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	state := newTestStore(t)
	srv := NewDashboardService(adminRepo, state)
	ctx := context.Background()

	stats := &entity.DashboardStats{TotalCustomers: 10, TotalVendors: 3, TotalRevenue: decimal.RequireFromString("99.90")}
	adminRepo.EXPECT().DashboardStats(ctx).Return(stats, nil)

	got, err := srv.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, got.TotalCustomers)
	assert.Equal(t, 3, state.AdminStats.Get().TotalVendors)
}
