package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/store"
	"marketplace/internal/usecase"
	"marketplace/internal/view"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	state        *store.Store
	logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, state *store.Store, logger *slog.Logger) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		state:        state,
		logger:       logger,
	}
}

// Load fetches the four taxonomy lists and assembles the tree.
func (srv *categoryService) Load(ctx context.Context) (*entity.Taxonomy, error) {
	srv.state.Categories.Begin()

	fail := func(what string, err error) (*entity.Taxonomy, error) {
		srv.state.Categories.Fail(err)

		return nil, fmt.Errorf("failed to list %s: %w", what, err)
	}

	categories, err := srv.categoryRepo.ListCategories(ctx)
	if err != nil {
		return fail("categories", err)
	}
	subcategories, err := srv.categoryRepo.ListSubcategories(ctx)
	if err != nil {
		return fail("subcategories", err)
	}
	attributes, err := srv.categoryRepo.ListAttributes(ctx)
	if err != nil {
		return fail("attributes", err)
	}
	productTypes, err := srv.categoryRepo.ListProductTypes(ctx)
	if err != nil {
		return fail("product types", err)
	}

	taxonomy := view.BuildTaxonomy(categories, subcategories, attributes, productTypes)
	srv.state.Categories.Set(&taxonomy)

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("taxonomy loaded",
		slog.Int("categories", len(categories)),
		slog.Int("subcategories", len(subcategories)),
	)

	return &taxonomy, nil
}

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	searches    usecase.SearchHistoryUsecase
	state       *store.Store
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	searches usecase.SearchHistoryUsecase,
	state *store.Store,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		searches:    searches,
		state:       state,
		logger:      logger,
	}
}

// Search queries the catalog. A non-empty query is remembered as a recent search
// whether or not the request succeeds.
func (srv *productService) Search(ctx context.Context, query string, page, limit int) ([]entity.Product, error) {
	query = strings.TrimSpace(query)
	if query != "" {
		if _, err := srv.searches.Add(ctx, query); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("failed to record recent search", slog.Any("error", err))
		}
	}

	srv.state.Products.Begin()

	products, pagination, err := srv.productRepo.Search(ctx, query, page, limit)
	if err != nil {
		srv.state.Products.Fail(err)

		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	srv.state.Products.SetItems(products, pagination)

	return products, nil
}

func (srv *productService) Get(ctx context.Context, id string) (*entity.Product, error) {
	srv.state.Products.Begin()

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		srv.state.Products.Fail(err)

		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	srv.state.Products.Select(product)

	return product, nil
}
