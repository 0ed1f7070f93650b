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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	state       *store.Store
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	state := newTestStore(t)

	return cartServiceFixtures{
		service:     NewCartService(cartRepo, productRepo, state, newTestLogger()),
		cartRepo:    cartRepo,
		productRepo: productRepo,
		state:       state,
	}
}

func cartItem(id, productID string, quantity int, price string, stock *int) entity.CartItem {
	return entity.CartItem{
		ID:        id,
		ProductID: productID,
		Quantity:  quantity,
		Price:     decimal.RequireFromString(price),
		Stock:     stock,
	}
}

func TestCartService_Fetch(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	items := []entity.CartItem{cartItem("c1", "p1", 2, "10.00", nil)}
	fx.cartRepo.EXPECT().Get(ctx).Return(&entity.Cart{Items: items}, nil)

	got, err := fx.service.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)
	assert.Equal(t, items, fx.state.Cart.Items())
	assert.False(t, fx.state.Cart.Snapshot().Loading)
}

func TestCartService_Fetch_ErrorIsRecorded(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Get(ctx).Return(nil, domainerrors.NewAPIError(500, "", "Cart service down", "/api/v1/cart"))

	_, err := fx.service.Fetch(ctx)
	require.Error(t, err)

	snapshot := fx.state.Cart.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.Equal(t, "Cart service down", snapshot.Error)
}

func TestCartService_AddItem_RejectsZeroQuantity(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), entity.AddCartItemInput{ProductID: "p1", Quantity: 0})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	fx.cartRepo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.state.Cart.SetItems([]entity.CartItem{cartItem("c1", "p1", 1, "5.00", nil)}, nil)

	input := entity.AddCartItemInput{ProductID: "p1", Quantity: 2}
	merged := cartItem("c1", "p1", 3, "5.00", nil)
	fx.cartRepo.EXPECT().AddItem(ctx, input).Return(&merged, nil)

	_, err := fx.service.AddItem(ctx, input)
	require.NoError(t, err)

	items := fx.state.Cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, decimal.RequireFromString("15").Equal(fx.service.Summary().Subtotal))
}

func TestCartService_AddItem_AppendsNewLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.state.Cart.SetItems([]entity.CartItem{cartItem("c1", "p1", 1, "5.00", nil)}, nil)

	input := entity.AddCartItemInput{ProductID: "p2", Quantity: 1}
	added := cartItem("c2", "p2", 1, "7.50", nil)
	fx.cartRepo.EXPECT().AddItem(ctx, input).Return(&added, nil)

	_, err := fx.service.AddItem(ctx, input)
	require.NoError(t, err)

	summary := fx.service.Summary()
	assert.Equal(t, 2, summary.ItemCount)
	assert.True(t, decimal.RequireFromString("12.5").Equal(summary.Subtotal))
}

func TestCartService_UpdateItem_IncrementBeyondKnownStock(t *testing.T) {
	fx := createTestCartService(t)

	fx.state.Cart.SetItems([]entity.CartItem{cartItem("c1", "p1", 2, "5.00", ptr(3))}, nil)

	_, err := fx.service.UpdateItem(context.Background(), "c1", 4)
	assert.ErrorIs(t, err, domainerrors.ErrStockExceeded)
	assert.Equal(t, 2, fx.state.Cart.Items()[0].Quantity)
	assert.NotEmpty(t, fx.state.Cart.Snapshot().Error)
	fx.cartRepo.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_UpdateItem_LooksUpProductStock(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.state.Cart.SetItems([]entity.CartItem{cartItem("c1", "p1", 1, "5.00", nil)}, nil)

	fx.productRepo.EXPECT().FindByID(ctx, "p1").Return(&entity.Product{ID: "p1", Stock: 5}, nil)
	updated := cartItem("c1", "p1", 4, "5.00", nil)
	fx.cartRepo.EXPECT().UpdateItem(ctx, "c1", 4).Return(&updated, nil)

	got, err := fx.service.UpdateItem(ctx, "c1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity)
	assert.Equal(t, 4, fx.state.Cart.Items()[0].Quantity)
}

func TestCartService_UpdateItem_DecrementSkipsStockCheck(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.state.Cart.SetItems([]entity.CartItem{cartItem("c1", "p1", 5, "5.00", ptr(1))}, nil)

	updated := cartItem("c1", "p1", 2, "5.00", ptr(1))
	fx.cartRepo.EXPECT().UpdateItem(ctx, "c1", 2).Return(&updated, nil)

	_, err := fx.service.UpdateItem(ctx, "c1", 2)
	require.NoError(t, err)
	fx.productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCartService_UpdateItem_UnknownLine(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.UpdateItem(context.Background(), "missing", 1)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.state.Cart.SetItems([]entity.CartItem{
		cartItem("c1", "p1", 1, "5.00", nil),
		cartItem("c2", "p2", 1, "6.00", nil),
	}, nil)

	fx.cartRepo.EXPECT().RemoveItem(ctx, "c1").Return(nil)
	require.NoError(t, fx.service.RemoveItem(ctx, "c1"))
	require.Len(t, fx.state.Cart.Items(), 1)
	assert.Equal(t, "c2", fx.state.Cart.Items()[0].ID)

	fx.cartRepo.EXPECT().Clear(ctx).Return(nil)
	require.NoError(t, fx.service.Clear(ctx))
	assert.Empty(t, fx.state.Cart.Items())
	assert.True(t, fx.service.Summary().Subtotal.IsZero())
}

func TestCartService_RemoveItem_FailureKeepsLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.state.Cart.SetItems([]entity.CartItem{cartItem("c1", "p1", 1, "5.00", nil)}, nil)
	fx.cartRepo.EXPECT().RemoveItem(ctx, "c1").Return(errors.New("boom"))

	require.Error(t, fx.service.RemoveItem(ctx, "c1"))
	assert.Len(t, fx.state.Cart.Items(), 1)
	assert.Equal(t, "boom", fx.state.Cart.Snapshot().Error)
}
