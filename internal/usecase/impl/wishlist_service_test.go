package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/store"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wishlistServiceFixtures struct {
	service      usecase.WishlistUsecase
	wishlistRepo *mockRepo.MockWishlistRepository
	state        *store.Store
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	state := newTestStore(t)

	return wishlistServiceFixtures{
		service:      NewWishlistService(wishlistRepo, state, newTestLogger()),
		wishlistRepo: wishlistRepo,
		state:        state,
	}
}

func TestWishlistService_Add_RefusesDuplicate(t *testing.T) {
	fx := createTestWishlistService(t)

	fx.state.Wishlist.SetItems([]entity.WishlistItem{{ID: "w1", ProductID: "p1"}}, nil)

	_, err := fx.service.Add(context.Background(), "p1")
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyInWishlist)
	assert.Len(t, fx.state.Wishlist.Items(), 1)
	fx.wishlistRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestWishlistService_Add(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := context.Background()

	fx.wishlistRepo.EXPECT().Add(ctx, "p1").Return(&entity.WishlistItem{ID: "w1", ProductID: "p1"}, nil)

	item, err := fx.service.Add(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "w1", item.ID)
	assert.True(t, fx.service.Contains("p1"))
}

func TestWishlistService_Toggle(t *testing.T) {
	tests := []struct {
		name       string
		inWishlist bool
		setup      func(fx wishlistServiceFixtures, ctx context.Context)
		want       bool
	}{
		{
			name:       "adds when absent",
			inWishlist: false,
			setup: func(fx wishlistServiceFixtures, ctx context.Context) {
				fx.wishlistRepo.EXPECT().Add(ctx, "p1").Return(&entity.WishlistItem{ID: "w1", ProductID: "p1"}, nil)
			},
			want: true,
		},
		{
			name:       "removes when present",
			inWishlist: true,
			setup: func(fx wishlistServiceFixtures, ctx context.Context) {
				fx.state.Wishlist.SetItems([]entity.WishlistItem{{ID: "w1", ProductID: "p1"}}, nil)
				fx.wishlistRepo.EXPECT().Remove(ctx, "p1").Return(nil)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestWishlistService(t)
			ctx := context.Background()

			fx.wishlistRepo.EXPECT().Check(ctx, "p1").Return(&entity.WishlistCheck{InWishlist: tt.inWishlist}, nil)
			tt.setup(fx, ctx)

			got, err := fx.service.Toggle(ctx, "p1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, fx.service.Contains("p1"))
		})
	}
}

func TestWishlistService_Toggle_BackendWinsOverStaleList(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := context.Background()

	// The local list still shows the product although the backend no longer has it.
	fx.state.Wishlist.SetItems([]entity.WishlistItem{{ID: "old", ProductID: "p1"}}, nil)

	fx.wishlistRepo.EXPECT().Check(ctx, "p1").Return(&entity.WishlistCheck{InWishlist: false}, nil)
	fx.wishlistRepo.EXPECT().Add(ctx, "p1").Return(&entity.WishlistItem{ID: "new", ProductID: "p1"}, nil)

	got, err := fx.service.Toggle(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, got)

	items := fx.state.Wishlist.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "new", items[0].ID)
}

func TestWishlistService_Toggle_CheckFails(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := context.Background()

	fx.wishlistRepo.EXPECT().Check(ctx, "p1").Return(nil, errors.New("offline"))

	_, err := fx.service.Toggle(ctx, "p1")
	require.Error(t, err)
	assert.Equal(t, "offline", fx.state.Wishlist.Snapshot().Error)
}

func TestWishlistService_Fetch(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := context.Background()

	items := []entity.WishlistItem{{ID: "w1", ProductID: "p1"}, {ID: "w2", ProductID: "p2"}}
	fx.wishlistRepo.EXPECT().List(ctx).Return(items, nil)

	got, err := fx.service.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)
	assert.True(t, fx.service.Contains("p2"))
}
