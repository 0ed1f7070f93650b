// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/store"
	"marketplace/internal/usecase"
	"marketplace/internal/view"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	state       *store.Store
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	state *store.Store,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		state:       state,
		logger:      logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Fetch replaces the local cart with the backend cart.
func (srv *cartService) Fetch(ctx context.Context) ([]entity.CartItem, error) {
	srv.state.Cart.Begin()

	cart, err := srv.cartRepo.Get(ctx)
	if err != nil {
		srv.state.Cart.Fail(err)

		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}

	srv.state.Cart.SetItems(cart.Items, nil)

	return cart.Items, nil
}

// AddItem adds a product line. The backend merges quantities of an existing line,
// so the returned item replaces any local line with the same id or product variant.
func (srv *cartService) AddItem(ctx context.Context, input entity.AddCartItemInput) (*entity.CartItem, error) {
	if input.Quantity < 1 {
		srv.state.Cart.Fail(domainerrors.ErrInvalidQuantity)

		return nil, domainerrors.ErrInvalidQuantity
	}

	srv.state.Cart.Begin()

	item, err := srv.cartRepo.AddItem(ctx, input)
	if err != nil {
		srv.state.Cart.Fail(err)

		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	srv.state.Cart.Update(func(items []entity.CartItem) []entity.CartItem {
		for i := range items {
			if items[i].ID == item.ID || sameLine(&items[i], item) {
				items[i] = *item

				return items
			}
		}

		return append(items, *item)
	})

	srv.log(ctx).Debug("cart item added", slog.String("product_id", item.ProductID), slog.Int("quantity", item.Quantity))

	return item, nil
}

// UpdateItem changes the quantity of a line. Increments are checked against
// the known stock before the request is sent.
func (srv *cartService) UpdateItem(ctx context.Context, itemID string, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		srv.state.Cart.Fail(domainerrors.ErrInvalidQuantity)

		return nil, domainerrors.ErrInvalidQuantity
	}

	current, ok := srv.findItem(itemID)
	if !ok {
		srv.state.Cart.Fail(domainerrors.ErrCartItemNotFound)

		return nil, domainerrors.ErrCartItemNotFound
	}

	if quantity > current.Quantity {
		stock, err := srv.availableStock(ctx, &current)
		if err != nil {
			srv.state.Cart.Fail(err)

			return nil, fmt.Errorf("failed to check stock: %w", err)
		}
		if quantity > stock {
			err := domainerrors.ErrStockExceeded.WithDetails(fmt.Sprintf("only %d available", stock))
			srv.state.Cart.Fail(err)

			return nil, err
		}
	}

	srv.state.Cart.Begin()

	item, err := srv.cartRepo.UpdateItem(ctx, itemID, quantity)
	if err != nil {
		srv.state.Cart.Fail(err)

		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	srv.state.Cart.Update(func(items []entity.CartItem) []entity.CartItem {
		for i := range items {
			if items[i].ID == itemID {
				items[i] = *item
			}
		}

		return items
	})

	return item, nil
}

// RemoveItem deletes a line.
func (srv *cartService) RemoveItem(ctx context.Context, itemID string) error {
	srv.state.Cart.Begin()

	if err := srv.cartRepo.RemoveItem(ctx, itemID); err != nil {
		srv.state.Cart.Fail(err)

		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	srv.state.Cart.Update(func(items []entity.CartItem) []entity.CartItem {
		return removeWhere(items, func(it *entity.CartItem) bool { return it.ID == itemID })
	})

	return nil
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context) error {
	srv.state.Cart.Begin()

	if err := srv.cartRepo.Clear(ctx); err != nil {
		srv.state.Cart.Fail(err)

		return fmt.Errorf("failed to clear cart: %w", err)
	}

	srv.state.Cart.SetItems(nil, nil)

	return nil
}

// Summary derives totals from the current items.
func (srv *cartService) Summary() view.CartSummary {
	return view.SummarizeCart(srv.state.Cart.Items())
}

func (srv *cartService) findItem(itemID string) (entity.CartItem, bool) {
	for _, it := range srv.state.Cart.Items() {
		if it.ID == itemID {
			return it, true
		}
	}

	return entity.CartItem{}, false
}

// availableStock prefers the stock returned with the cart line and falls back to the product.
func (srv *cartService) availableStock(ctx context.Context, item *entity.CartItem) (int, error) {
	if item.Stock != nil {
		return *item.Stock, nil
	}

	product, err := srv.productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		return 0, err
	}

	return product.StockFor(item.VariantID), nil
}

func sameLine(a, b *entity.CartItem) bool {
	if a.ProductID != b.ProductID {
		return false
	}
	if a.VariantID == nil || b.VariantID == nil {
		return a.VariantID == nil && b.VariantID == nil
	}

	return *a.VariantID == *b.VariantID
}

// removeWhere drops the elements matching fn, keeping order.
func removeWhere[T any](items []T, fn func(*T) bool) []T {
	out := items[:0]
	for i := range items {
		if !fn(&items[i]) {
			out = append(out, items[i])
		}
	}

	return out
}
