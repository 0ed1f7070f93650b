package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// CategoryUsecase loads the taxonomy tree.
type CategoryUsecase interface {
	Load(ctx context.Context) (*entity.Taxonomy, error)
}

// ProductUsecase searches the catalog and records the query as a recent search.
type ProductUsecase interface {
	Search(ctx context.Context, query string, page, limit int) ([]entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
}

// SearchHistoryUsecase keeps recent searches locally: most recent first,
// de-duplicated case-insensitively and capped.
type SearchHistoryUsecase interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, query string) ([]string, error)
	Remove(ctx context.Context, query string) ([]string, error)
	Clear(ctx context.Context) error
}
