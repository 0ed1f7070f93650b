package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/persistence/blobstore"
	mockService "marketplace/internal/mocks/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemStorage(t *testing.T) *blobstore.Storage {
	t.Helper()

	storage := blobstore.NewStorage(memblob.OpenBucket(nil), discardLogger())
	t.Cleanup(func() { _ = storage.Close() })

	return storage
}

func TestSlice_Lifecycle(t *testing.T) {
	s := NewStore(nil, discardLogger())

	s.Orders.Begin()
	assert.True(t, s.Orders.Snapshot().Loading)

	s.Orders.Fail(domainerrors.NewAPIError(500, "", "Database unavailable", "/orders/my"))
	snap := s.Orders.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "Database unavailable", snap.Error)

	s.Orders.Begin()
	assert.Empty(t, s.Orders.Snapshot().Error)

	s.Orders.SetItems([]entity.Order{{ID: "o1"}}, &entity.Pagination{Page: 1, Total: 1})
	snap = s.Orders.Snapshot()
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Pagination.Total)
}

func TestSlice_SnapshotIsACopy(t *testing.T) {
	s := NewStore(nil, discardLogger())
	s.Cart.SetItems([]entity.CartItem{{ID: "i1", Quantity: 1}}, nil)

	snap := s.Cart.Snapshot()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 1, s.Cart.Items()[0].Quantity)
}

func TestSlice_SetNilItemsIsEmpty(t *testing.T) {
	s := NewStore(nil, discardLogger())
	s.Addresses.SetItems(nil, nil)

	assert.NotNil(t, s.Addresses.Items())
	assert.Empty(t, s.Addresses.Items())
}

func TestSlice_ConcurrentUpdates(t *testing.T) {
	s := NewStore(nil, discardLogger())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Searches.Update(func(items []string) []string { return append(items, "q") })
		}()
	}
	wg.Wait()

	assert.Len(t, s.Searches.Items(), 50)
}

func TestStore_PersistsWhitelistedSlicesOnChange(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage(t)
	s := NewStore(storage, discardLogger())

	s.Cart.SetItems([]entity.CartItem{{ID: "i1", Quantity: 2, Price: decimal.NewFromInt(5)}}, nil)
	s.Auth.Set(&entity.Session{AccessToken: "token"})
	s.Orders.SetItems([]entity.Order{{ID: "o1"}}, nil)

	var cart []entity.CartItem
	found, err := storage.Load(ctx, KeyCart, &cart)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, cart[0].Quantity)

	var session entity.Session
	found, err = storage.Load(ctx, KeyAuth, &session)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "token", session.AccessToken)

	var orders []entity.Order
	found, err = storage.Load(ctx, "orders", &orders)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_HydrateRestoresOnlyWhitelist(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage(t)

	first := NewStore(storage, discardLogger())
	first.Auth.Set(&entity.Session{AccessToken: "token", User: &entity.User{ID: "u1"}})
	first.Wishlist.SetItems([]entity.WishlistItem{{ProductID: "p1"}}, nil)
	first.Inbox.SetItems([]entity.InboxMessage{{ID: "m1"}}, nil)
	require.NoError(t, first.Flush(ctx))

	second := NewStore(storage, discardLogger())
	second.Hydrate(ctx)

	assert.Equal(t, "token", second.AccessToken())
	assert.Equal(t, "u1", second.CurrentUser().ID)
	assert.Len(t, second.Wishlist.Items(), 1)
	assert.Empty(t, second.Inbox.Items())
	assert.True(t, second.IsPersisted(KeyWishlist))
	assert.False(t, second.IsPersisted("inbox"))
}

func TestStore_LoadingChangesDoNotSave(t *testing.T) {
	storage := mockService.NewMockStateStorage(t)
	s := NewStore(storage, discardLogger())

	s.Cart.Begin()
	s.Cart.Fail(errors.New("boom"))

	storage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestStore_SaveFailureIsLoggedNotFatal(t *testing.T) {
	storage := mockService.NewMockStateStorage(t)
	storage.EXPECT().Save(mock.Anything, KeyCart, mock.Anything).Return(errors.New("disk full")).Once()

	s := NewStore(storage, discardLogger())
	s.Cart.SetItems([]entity.CartItem{{ID: "i1"}}, nil)

	assert.Len(t, s.Cart.Items(), 1)
}

func TestStore_HydrateSkipsCorruptEntries(t *testing.T) {
	storage := mockService.NewMockStateStorage(t)
	storage.EXPECT().Load(mock.Anything, KeyAuth, mock.Anything).Return(false, errors.New("corrupt")).Once()
	storage.EXPECT().Load(mock.Anything, KeyCart, mock.Anything).Return(false, nil).Once()
	storage.EXPECT().Load(mock.Anything, KeyWishlist, mock.Anything).Return(false, nil).Once()

	s := NewStore(storage, discardLogger())
	s.Hydrate(context.Background())

	assert.Empty(t, s.AccessToken())
}

func TestStore_ResetUserStateClearsAuth(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage(t)
	s := NewStore(storage, discardLogger())

	s.Auth.Set(&entity.Session{AccessToken: "token"})
	s.Cart.SetItems([]entity.CartItem{{ID: "i1"}}, nil)

	s.ResetUserState()

	assert.Empty(t, s.AccessToken())
	assert.Empty(t, s.Cart.Items())

	var session entity.Session
	found, err := storage.Load(ctx, KeyAuth, &session)
	require.NoError(t, err)
	assert.False(t, found)
}
