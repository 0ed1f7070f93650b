package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// WishlistRepository reaches /api/v1/wishlist.
type WishlistRepository interface {
	List(ctx context.Context) ([]entity.WishlistItem, error)
	// Check looks up the wishlist entry of a product.
	Check(ctx context.Context, productID string) (*entity.WishlistCheck, error)
	Add(ctx context.Context, productID string) (*entity.WishlistItem, error)
	Remove(ctx context.Context, productID string) error
}
