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
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	state        *store.Store
	logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	state *store.Store,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		state:        state,
		logger:       logger,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Fetch replaces the local wishlist with the backend list.
func (srv *wishlistService) Fetch(ctx context.Context) ([]entity.WishlistItem, error) {
	srv.state.Wishlist.Begin()

	items, err := srv.wishlistRepo.List(ctx)
	if err != nil {
		srv.state.Wishlist.Fail(err)

		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}

	srv.state.Wishlist.SetItems(items, nil)

	return items, nil
}

// Add puts a product in the wishlist unless it is already there.
func (srv *wishlistService) Add(ctx context.Context, productID string) (*entity.WishlistItem, error) {
	if srv.Contains(productID) {
		srv.state.Wishlist.Fail(domainerrors.ErrAlreadyInWishlist)

		return nil, domainerrors.ErrAlreadyInWishlist
	}

	return srv.add(ctx, productID)
}

// Remove takes a product out of the wishlist.
func (srv *wishlistService) Remove(ctx context.Context, productID string) error {
	srv.state.Wishlist.Begin()

	if err := srv.wishlistRepo.Remove(ctx, productID); err != nil {
		srv.state.Wishlist.Fail(err)

		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}

	srv.state.Wishlist.Update(func(items []entity.WishlistItem) []entity.WishlistItem {
		return removeWhere(items, func(it *entity.WishlistItem) bool { return it.ProductID == productID })
	})

	return nil
}

// Toggle asks the backend whether the product is listed and then removes or adds it.
// The backend answer wins over a stale local list.
func (srv *wishlistService) Toggle(ctx context.Context, productID string) (bool, error) {
	srv.state.Wishlist.Begin()

	check, err := srv.wishlistRepo.Check(ctx, productID)
	if err != nil {
		srv.state.Wishlist.Fail(err)

		return false, fmt.Errorf("failed to check wishlist: %w", err)
	}

	if check.InWishlist {
		if err := srv.Remove(ctx, productID); err != nil {
			return true, err
		}
		srv.log(ctx).Debug("wishlist toggled off", slog.String("product_id", productID))

		return false, nil
	}

	if _, err := srv.add(ctx, productID); err != nil {
		return false, err
	}
	srv.log(ctx).Debug("wishlist toggled on", slog.String("product_id", productID))

	return true, nil
}

// Contains reports whether the local list holds the product.
func (srv *wishlistService) Contains(productID string) bool {
	for _, it := range srv.state.Wishlist.Items() {
		if it.ProductID == productID {
			return true
		}
	}

	return false
}

func (srv *wishlistService) add(ctx context.Context, productID string) (*entity.WishlistItem, error) {
	srv.state.Wishlist.Begin()

	item, err := srv.wishlistRepo.Add(ctx, productID)
	if err != nil {
		srv.state.Wishlist.Fail(err)

		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}

	srv.state.Wishlist.Update(func(items []entity.WishlistItem) []entity.WishlistItem {
		items = removeWhere(items, func(it *entity.WishlistItem) bool { return it.ProductID == item.ProductID })

		return append(items, *item)
	})

	return item, nil
}
