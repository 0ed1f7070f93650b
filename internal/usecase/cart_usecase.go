package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/view"
)

// CartUsecase maintains the cart slice. Every mutation calls the backend
// first and only updates local state from the response.
type CartUsecase interface {
	Fetch(ctx context.Context) ([]entity.CartItem, error)
	AddItem(ctx context.Context, input entity.AddCartItemInput) (*entity.CartItem, error)
	// UpdateItem checks stock client-side for increments before calling the backend.
	UpdateItem(ctx context.Context, itemID string, quantity int) (*entity.CartItem, error)
	RemoveItem(ctx context.Context, itemID string) error
	Clear(ctx context.Context) error
	Summary() view.CartSummary
}

// WishlistUsecase maintains the wishlist slice.
type WishlistUsecase interface {
	Fetch(ctx context.Context) ([]entity.WishlistItem, error)
	// Add refuses a product that is already in the local list.
	Add(ctx context.Context, productID string) (*entity.WishlistItem, error)
	Remove(ctx context.Context, productID string) error
	// Toggle returns true when the product is now in the wishlist.
	Toggle(ctx context.Context, productID string) (bool, error)
	Contains(productID string) bool
}
