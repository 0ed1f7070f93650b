package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// VendorQuery narrows the admin vendor directory.
type VendorQuery struct {
	Search   string                `query:"search"`
	Statuses []entity.VendorStatus `query:"status"`
	Tab      string                `query:"tab"`
}

// VendorDirectory is the filtered list plus stats over everything loaded.
type VendorDirectory struct {
	Vendors    []entity.CombinedVendor    `json:"vendors"`
	Stats      entity.CombinedVendorStats `json:"stats"`
	Pagination *entity.Pagination         `json:"pagination,omitempty"`
}

// UpdateVendorStatusInput is an admin moderation request.
type UpdateVendorStatusInput struct {
	Status entity.VendorStatus `json:"status" validate:"required,oneof=pending active suspended deactivated deleted"`
	Reason string              `json:"reason" validate:"max=500"`
}

// StorefrontQR is a rendered share code for a vendor storefront.
type StorefrontQR struct {
	URL string
	PNG []byte
}

// VendorDirectoryUsecase joins vendor users with their profiles for the admin console.
type VendorDirectoryUsecase interface {
	// Load fetches a page of vendor-role users and exactly their profiles, then joins them.
	Load(ctx context.Context, page, limit int) ([]entity.CombinedVendor, error)
	Directory(query VendorQuery) VendorDirectory
	UpdateStatus(ctx context.Context, vendorID string, input UpdateVendorStatusInput) (*entity.CombinedVendor, error)
	StorefrontQR(vendorID string) (*StorefrontQR, error)
}
