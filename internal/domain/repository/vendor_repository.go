package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// VendorRepository reaches /api/v1/vendors and the admin vendor endpoints.
type VendorRepository interface {
	// FindByIDs fetches the vendor profiles of exactly the given ids in one batched call.
	// Ids without a profile are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) ([]entity.VendorProfile, error)

	// FindByID retrieves a single vendor profile.
	FindByID(ctx context.Context, id string) (*entity.VendorProfile, error)

	// UpdateStatus moderates a vendor profile.
	UpdateStatus(ctx context.Context, id string, status entity.VendorStatus, reason string) (*entity.VendorProfile, error)
}
