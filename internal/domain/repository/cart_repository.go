package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// CartRepository reaches /api/v1/cart.
type CartRepository interface {
	Get(ctx context.Context) (*entity.Cart, error)
	AddItem(ctx context.Context, input entity.AddCartItemInput) (*entity.CartItem, error)
	UpdateItem(ctx context.Context, itemID string, quantity int) (*entity.CartItem, error)
	RemoveItem(ctx context.Context, itemID string) error
	Clear(ctx context.Context) error
}

// ProductRepository reaches /api/v1/products.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	Search(ctx context.Context, query string, page, limit int) ([]entity.Product, *entity.Pagination, error)
}
