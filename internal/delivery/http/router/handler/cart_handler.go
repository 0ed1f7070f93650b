package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves the cart and the wishlist.
type CartHandler struct {
	cart     usecase.CartUsecase
	wishlist usecase.WishlistUsecase
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(cart usecase.CartUsecase, wishlist usecase.WishlistUsecase) *CartHandler {
	return &CartHandler{cart: cart, wishlist: wishlist}
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

type wishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// GetCart reloads the cart and returns it with its subtotal and item count.
func (h *CartHandler) GetCart(c echo.Context) error {
	if _, err := h.cart.Fetch(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.cart.Summary())
}

// AddItem adds a product line to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input entity.AddCartItemInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if _, err := h.cart.AddItem(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.cart.Summary(), "Added to cart")
}

// UpdateItem changes the quantity of one line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var input updateCartItemRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if _, err := h.cart.UpdateItem(c.Request().Context(), c.Param("id"), input.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.cart.Summary())
}

// RemoveItem deletes one line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	if err := h.cart.RemoveItem(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.cart.Summary())
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cart.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.cart.Summary())
}

// GetWishlist reloads the wishlist.
func (h *CartHandler) GetWishlist(c echo.Context) error {
	items, err := h.wishlist.Fetch(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, items, nil)
}

// AddToWishlist adds a product, refusing duplicates.
func (h *CartHandler) AddToWishlist(c echo.Context) error {
	var input wishlistRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	item, err := h.wishlist.Add(c.Request().Context(), input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Added to wishlist")
}

// ToggleWishlist adds or removes a product and reports the new membership.
func (h *CartHandler) ToggleWishlist(c echo.Context) error {
	productID := c.Param("productId")

	inWishlist, err := h.wishlist.Toggle(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{
		"productId":  productID,
		"inWishlist": inWishlist,
	})
}

// RemoveFromWishlist removes a product.
func (h *CartHandler) RemoveFromWishlist(c echo.Context) error {
	if err := h.wishlist.Remove(c.Request().Context(), c.Param("productId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Removed from wishlist")
}
