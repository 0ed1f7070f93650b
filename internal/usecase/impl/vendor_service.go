package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/store"
	"marketplace/internal/usecase"
	"marketplace/internal/view"
)

// vendorDirectoryService implements the VendorDirectoryUsecase interface.
type vendorDirectoryService struct {
	userRepo   repository.UserRepository
	vendorRepo repository.VendorRepository
	qrCode     service.QRCodeService
	state      *store.Store
	logger     *slog.Logger
}

// NewVendorDirectoryService is the constructor for vendorDirectoryService.
func NewVendorDirectoryService(
	userRepo repository.UserRepository,
	vendorRepo repository.VendorRepository,
	qrCode service.QRCodeService,
	state *store.Store,
	logger *slog.Logger,
) usecase.VendorDirectoryUsecase {
	return &vendorDirectoryService{
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		qrCode:     qrCode,
		state:      state,
		logger:     logger,
	}
}

func (srv *vendorDirectoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Load fetches one page of vendor users and then exactly their profiles in a
// single batched request.
func (srv *vendorDirectoryService) Load(ctx context.Context, page, limit int) ([]entity.CombinedVendor, error) {
	srv.state.Vendors.Begin()

	users, pagination, err := srv.userRepo.List(ctx, entity.UserFilter{
		Role:  entity.RoleVendor,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		srv.state.Vendors.Fail(err)

		return nil, fmt.Errorf("failed to list vendor users: %w", err)
	}

	var profiles []entity.VendorProfile
	if len(users) > 0 {
		ids := make([]string, 0, len(users))
		for i := range users {
			ids = append(ids, users[i].ID)
		}

		profiles, err = srv.vendorRepo.FindByIDs(ctx, ids)
		if err != nil {
			srv.state.Vendors.Fail(err)

			return nil, fmt.Errorf("failed to find vendor profiles: %w", err)
		}
	}

	combined := view.CombineVendors(users, profiles)
	srv.state.Vendors.SetItems(combined, pagination)

	srv.log(ctx).Debug("vendor directory loaded",
		slog.Int("users", len(users)),
		slog.Int("profiles", len(profiles)),
	)

	return combined, nil
}

// Directory filters the loaded vendors. Stats always cover the whole loaded list.
func (srv *vendorDirectoryService) Directory(query usecase.VendorQuery) usecase.VendorDirectory {
	snapshot := srv.state.Vendors.Snapshot()

	return usecase.VendorDirectory{
		Vendors:    view.FilterCombinedVendors(snapshot.Items, query.Search, query.Statuses, query.Tab),
		Stats:      view.CalculateCombinedStats(snapshot.Items),
		Pagination: snapshot.Pagination,
	}
}

// UpdateStatus moderates a vendor and refreshes its combined record.
func (srv *vendorDirectoryService) UpdateStatus(
	ctx context.Context,
	vendorID string,
	input usecase.UpdateVendorStatusInput,
) (*entity.CombinedVendor, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown vendor status %q", input.Status))
	}

	srv.state.Vendors.Begin()

	profile, err := srv.vendorRepo.UpdateStatus(ctx, vendorID, input.Status, strings.TrimSpace(input.Reason))
	if err != nil {
		srv.state.Vendors.Fail(err)

		return nil, fmt.Errorf("failed to update vendor status: %w", err)
	}

	var updated *entity.CombinedVendor
	srv.state.Vendors.Update(func(vendors []entity.CombinedVendor) []entity.CombinedVendor {
		for i := range vendors {
			if vendors[i].ID == vendorID {
				view.ApplyProfile(&vendors[i], profile)
				v := vendors[i]
				updated = &v
			}
		}

		return vendors
	})

	if updated == nil {
		// Not in the loaded page; answer with the profile alone.
		v := entity.CombinedVendor{ID: profile.ID}
		view.ApplyProfile(&v, profile)
		updated = &v
	}

	srv.log(ctx).Info("vendor status updated",
		slog.String("vendor_id", vendorID),
		slog.String("status", string(input.Status)),
	)

	return updated, nil
}

// StorefrontQR renders the share code of a vendor storefront.
func (srv *vendorDirectoryService) StorefrontQR(vendorID string) (*usecase.StorefrontQR, error) {
	png, err := srv.qrCode.GenerateStorefrontQR(vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate storefront QR: %w", err)
	}

	return &usecase.StorefrontQR{
		URL: srv.qrCode.StorefrontURL(vendorID),
		PNG: png,
	}, nil
}
