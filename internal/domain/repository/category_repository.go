package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// CategoryRepository reaches the four taxonomy collections.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListSubcategories(ctx context.Context) ([]entity.Subcategory, error)
	ListAttributes(ctx context.Context) ([]entity.Attribute, error)
	ListProductTypes(ctx context.Context) ([]entity.ProductType, error)
}
