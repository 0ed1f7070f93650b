package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// OrderUsecase covers the customer order pages and the admin order console.
type OrderUsecase interface {
	ListMine(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, error)
	Get(ctx context.Context, id string) (*entity.Order, error)
	// Cancel only applies to pending or confirmed orders; other states fail without a call.
	Cancel(ctx context.Context, id, reason string) (*entity.Order, error)

	ListAll(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)
}
