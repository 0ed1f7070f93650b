package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func homeAddress(id string, isDefault bool) entity.Address {
	return entity.Address{
		ID:        id,
		FullName:  "Ana Lee",
		Phone:     "+15550100",
		Street:    "1 Main St",
		City:      "Springfield",
		Country:   "US",
		IsDefault: isDefault,
	}
}

func TestAddressService_SetDefaultKeepsSingleDefault(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	state := newTestStore(t)
	srv := NewAddressService(addressRepo, state, newTestLogger())
	ctx := context.Background()

	state.Addresses.SetItems([]entity.Address{homeAddress("a1", true), homeAddress("a2", false)}, nil)

	updated := homeAddress("a2", true)
	addressRepo.EXPECT().SetDefault(ctx, "a2").Return(&updated, nil)

	_, err := srv.SetDefault(ctx, "a2")
	require.NoError(t, err)

	items := state.Addresses.Items()
	assert.False(t, items[0].IsDefault)
	assert.True(t, items[1].IsDefault)
}

func TestAddressService_CreateValidates(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	srv := NewAddressService(addressRepo, newTestStore(t), newTestLogger())

	_, err := srv.Create(context.Background(), entity.Address{FullName: "Ana", City: "Springfield"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "street, country")
	addressRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddressService_CreateAndDelete(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	state := newTestStore(t)
	srv := NewAddressService(addressRepo, state, newTestLogger())
	ctx := context.Background()

	input := homeAddress("", false)
	created := homeAddress("a1", false)
	addressRepo.EXPECT().Create(ctx, input).Return(&created, nil)
	addressRepo.EXPECT().Delete(ctx, "a1").Return(nil)

	_, err := srv.Create(ctx, input)
	require.NoError(t, err)
	assert.Len(t, state.Addresses.Items(), 1)

	require.NoError(t, srv.Delete(ctx, "a1"))
	assert.Empty(t, state.Addresses.Items())
}

func TestDeviceSessionService_RevokeOthersKeepsCurrent(t *testing.T) {
	sessionRepo := mockRepo.NewMockDeviceSessionRepository(t)
	state := newTestStore(t)
	srv := NewDeviceSessionService(sessionRepo, state, newTestLogger())
	ctx := context.Background()

	state.Sessions.SetItems([]entity.DeviceSession{
		{ID: "d1", IsCurrent: true},
		{ID: "d2"},
		{ID: "d3"},
	}, nil)
	sessionRepo.EXPECT().RevokeOthers(ctx).Return(nil)

	require.NoError(t, srv.RevokeOthers(ctx))

	items := state.Sessions.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "d1", items[0].ID)
}

func TestDeviceSessionService_Revoke(t *testing.T) {
	sessionRepo := mockRepo.NewMockDeviceSessionRepository(t)
	state := newTestStore(t)
	srv := NewDeviceSessionService(sessionRepo, state, newTestLogger())
	ctx := context.Background()

	sessionRepo.EXPECT().List(ctx).Return([]entity.DeviceSession{{ID: "d1", IsCurrent: true}, {ID: "d2"}}, nil)
	sessionRepo.EXPECT().Revoke(ctx, "d2").Return(nil)

	_, err := srv.List(ctx)
	require.NoError(t, err)
	require.NoError(t, srv.Revoke(ctx, "d2"))
	assert.Len(t, state.Sessions.Items(), 1)
}
