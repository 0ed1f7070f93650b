package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// OrderRepository reaches /api/v1/orders and /api/v1/admin/orders.
type OrderRepository interface {
	ListMine(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, *entity.Pagination, error)
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	Cancel(ctx context.Context, id string, reason string) (*entity.Order, error)

	// ListAll returns orders of every customer (admin only).
	ListAll(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, *entity.Pagination, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)
}
