package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// AddressRepository reaches /api/v1/addresses.
type AddressRepository interface {
	List(ctx context.Context) ([]entity.Address, error)
	Create(ctx context.Context, address entity.Address) (*entity.Address, error)
	Update(ctx context.Context, id string, address entity.Address) (*entity.Address, error)
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, id string) (*entity.Address, error)
}
