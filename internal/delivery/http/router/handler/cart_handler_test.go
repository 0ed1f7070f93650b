package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/view"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartHandlerFixtures struct {
	cart     *mockUsecase.MockCartUsecase
	wishlist *mockUsecase.MockWishlistUsecase
}

func createTestCartHandler(t *testing.T) (*CartHandler, *cartHandlerFixtures) {
	fx := &cartHandlerFixtures{
		cart:     mockUsecase.NewMockCartUsecase(t),
		wishlist: mockUsecase.NewMockWishlistUsecase(t),
	}

	return NewCartHandler(fx.cart, fx.wishlist), fx
}

func TestCartHandler_AddItem(t *testing.T) {
	h, fx := createTestCartHandler(t)
	c, rec := newTestContext(t, http.MethodPost, "/cart/items", `{"productId":"p1","quantity":2}`)

	input := entity.AddCartItemInput{ProductID: "p1", Quantity: 2}
	fx.cart.EXPECT().AddItem(mock.Anything, input).Return(&entity.CartItem{ID: "c1", Quantity: 2}, nil)
	fx.cart.EXPECT().Summary().Return(view.CartSummary{ItemCount: 2, Subtotal: decimal.RequireFromString("19.98")})

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.EqualValues(t, 2, data["itemCount"])
	assert.Equal(t, "19.98", data["subtotal"])
}

func TestCartHandler_AddItem_InvalidQuantity(t *testing.T) {
	h, fx := createTestCartHandler(t)
	c, _ := newTestContext(t, http.MethodPost, "/cart/items", `{"productId":"p1","quantity":0}`)

	err := h.AddItem(c)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.cart.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything)
}

func TestCartHandler_UpdateItem_StockExceeded(t *testing.T) {
	h, fx := createTestCartHandler(t)
	c, _ := newTestContext(t, http.MethodPatch, "/cart/items/c1", `{"quantity":9}`)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	fx.cart.EXPECT().UpdateItem(mock.Anything, "c1", 9).
		Return(nil, domainerrors.ErrStockExceeded.WithDetails("only 3 available"))

	err := h.UpdateItem(c)
	require.ErrorIs(t, err, domainerrors.ErrStockExceeded)
}

func TestCartHandler_ToggleWishlist(t *testing.T) {
	h, fx := createTestCartHandler(t)
	c, rec := newTestContext(t, http.MethodPost, "/wishlist/p1/toggle", "")
	c.SetParamNames("productId")
	c.SetParamValues("p1")

	fx.wishlist.EXPECT().Toggle(mock.Anything, "p1").Return(true, nil)

	require.NoError(t, h.ToggleWishlist(c))

	data := decodeResponse(t, rec).Data.(map[string]any)
	assert.Equal(t, true, data["inWishlist"])
	assert.Equal(t, "p1", data["productId"])
}

func TestCartHandler_GetWishlist_EmptyIsArray(t *testing.T) {
	h, fx := createTestCartHandler(t)
	c, rec := newTestContext(t, http.MethodGet, "/wishlist", "")

	fx.wishlist.EXPECT().Fetch(mock.Anything).Return(nil, nil)

	require.NoError(t, h.GetWishlist(c))
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}
