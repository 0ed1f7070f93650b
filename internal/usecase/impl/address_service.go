package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/store"
	"marketplace/internal/usecase"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo repository.AddressRepository
	state       *store.Store
	logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(addressRepo repository.AddressRepository, state *store.Store, logger *slog.Logger) usecase.AddressUsecase {
	return &addressService{
		addressRepo: addressRepo,
		state:       state,
		logger:      logger,
	}
}

func (srv *addressService) List(ctx context.Context) ([]entity.Address, error) {
	srv.state.Addresses.Begin()

	addresses, err := srv.addressRepo.List(ctx)
	if err != nil {
		srv.state.Addresses.Fail(err)

		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	srv.state.Addresses.SetItems(addresses, nil)

	return addresses, nil
}

func (srv *addressService) Create(ctx context.Context, address entity.Address) (*entity.Address, error) {
	if err := checkAddress(&address); err != nil {
		return nil, err
	}

	srv.state.Addresses.Begin()

	created, err := srv.addressRepo.Create(ctx, address)
	if err != nil {
		srv.state.Addresses.Fail(err)

		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	srv.state.Addresses.Update(func(items []entity.Address) []entity.Address {
		return upsertAddress(items, created)
	})

	return created, nil
}

func (srv *addressService) Update(ctx context.Context, id string, address entity.Address) (*entity.Address, error) {
	if err := checkAddress(&address); err != nil {
		return nil, err
	}

	srv.state.Addresses.Begin()

	updated, err := srv.addressRepo.Update(ctx, id, address)
	if err != nil {
		srv.state.Addresses.Fail(err)

		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	srv.state.Addresses.Update(func(items []entity.Address) []entity.Address {
		return upsertAddress(items, updated)
	})

	return updated, nil
}

func (srv *addressService) Delete(ctx context.Context, id string) error {
	srv.state.Addresses.Begin()

	if err := srv.addressRepo.Delete(ctx, id); err != nil {
		srv.state.Addresses.Fail(err)

		return fmt.Errorf("failed to delete address: %w", err)
	}

	srv.state.Addresses.Update(func(items []entity.Address) []entity.Address {
		return removeWhere(items, func(a *entity.Address) bool { return a.ID == id })
	})

	return nil
}

// SetDefault marks one address as default; the others lose the flag.
func (srv *addressService) SetDefault(ctx context.Context, id string) (*entity.Address, error) {
	srv.state.Addresses.Begin()

	address, err := srv.addressRepo.SetDefault(ctx, id)
	if err != nil {
		srv.state.Addresses.Fail(err)

		return nil, fmt.Errorf("failed to set default address: %w", err)
	}
	address.IsDefault = true

	srv.state.Addresses.Update(func(items []entity.Address) []entity.Address {
		return upsertAddress(items, address)
	})

	return address, nil
}

func checkAddress(a *entity.Address) error {
	fields := []struct{ name, value string }{
		{"fullName", a.FullName},
		{"street", a.Street},
		{"city", a.City},
		{"country", a.Country},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("missing " + strings.Join(missing, ", "))
	}

	return nil
}

// upsertAddress replaces or appends address and keeps a single default.
func upsertAddress(items []entity.Address, address *entity.Address) []entity.Address {
	found := false
	for i := range items {
		if items[i].ID == address.ID {
			items[i] = *address
			found = true
		} else if address.IsDefault {
			items[i].IsDefault = false
		}
	}
	if !found {
		items = append(items, *address)
	}

	return items
}
