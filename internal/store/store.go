// Package store is the single application-state container of the client.
// It is created once at startup and injected wherever state is read or written.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"go.uber.org/fx"
)

// Persisted slice names. Only these survive a restart.
const (
	KeyAuth     = "auth"
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
)

const saveTimeout = 5 * time.Second

// persistable is a slice that can be written to and read from storage.
type persistable interface {
	Name() string
	save(ctx context.Context, storage service.StateStorage) error
	load(ctx context.Context, storage service.StateStorage) (bool, error)
}

// Store groups every slice of the application state.
type Store struct {
	Auth          *Value[entity.Session]
	Cart          *Slice[entity.CartItem]
	Wishlist      *Slice[entity.WishlistItem]
	Users         *Slice[entity.User]
	Vendors       *Slice[entity.CombinedVendor]
	Orders        *Slice[entity.Order]
	AdminOrders   *Slice[entity.Order]
	Products      *Slice[entity.Product]
	Categories    *Value[entity.Taxonomy]
	Addresses     *Slice[entity.Address]
	Inbox         *Slice[entity.InboxMessage]
	Notifications *Slice[entity.Notification]
	Sessions      *Slice[entity.DeviceSession]
	AdminStats    *Value[entity.DashboardStats]
	KYC           *Value[entity.KYCDraft]
	Location      *Value[entity.ResolvedLocation]
	Progress      *Value[entity.LocationProgress]
	Searches      *Slice[string]

	storage   service.StateStorage
	logger    *slog.Logger
	persisted map[string]persistable
	saveMu    sync.Mutex
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Storage service.StateStorage
	Logger  *slog.Logger
}

// New creates the store, hydrates it on start and flushes it on stop.
func New(params Params) *Store {
	s := NewStore(params.Storage, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			s.Hydrate(ctx)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return s.Flush(ctx)
		},
	})

	return s
}

// NewStore builds an empty store backed by storage. A nil storage keeps everything in memory.
func NewStore(storage service.StateStorage, logger *slog.Logger) *Store {
	s := &Store{
		storage: storage,
		logger:  logger,
	}

	notify := s.onChange

	s.Auth = newValue[entity.Session](KeyAuth, notify)
	s.Cart = newSlice[entity.CartItem](KeyCart, notify)
	s.Wishlist = newSlice[entity.WishlistItem](KeyWishlist, notify)
	s.Users = newSlice[entity.User]("users", notify)
	s.Vendors = newSlice[entity.CombinedVendor]("vendors", notify)
	s.Orders = newSlice[entity.Order]("orders", notify)
	s.AdminOrders = newSlice[entity.Order]("adminOrders", notify)
	s.Products = newSlice[entity.Product]("products", notify)
	s.Categories = newValue[entity.Taxonomy]("categories", notify)
	s.Addresses = newSlice[entity.Address]("addresses", notify)
	s.Inbox = newSlice[entity.InboxMessage]("inbox", notify)
	s.Notifications = newSlice[entity.Notification]("notifications", notify)
	s.Sessions = newSlice[entity.DeviceSession]("sessions", notify)
	s.AdminStats = newValue[entity.DashboardStats]("adminStats", notify)
	s.KYC = newValue[entity.KYCDraft]("kyc", notify)
	s.Location = newValue[entity.ResolvedLocation]("location", notify)
	s.Progress = newValue[entity.LocationProgress]("locationProgress", notify)
	s.Searches = newSlice[string]("searches", notify)

	s.persisted = map[string]persistable{
		KeyAuth:     s.Auth,
		KeyCart:     s.Cart,
		KeyWishlist: s.Wishlist,
	}

	return s
}

// IsPersisted reports whether the named slice survives a restart.
func (s *Store) IsPersisted(name string) bool {
	_, ok := s.persisted[name]

	return ok
}

// AccessToken returns the stored access token, or "" when signed out.
func (s *Store) AccessToken() string {
	session := s.Auth.Get()
	if session == nil {
		return ""
	}

	return session.AccessToken
}

// CurrentUser returns the signed-in user, or nil.
func (s *Store) CurrentUser() *entity.User {
	session := s.Auth.Get()
	if session == nil {
		return nil
	}

	return session.User
}

// Hydrate restores the persisted slices without saving them back.
// Unreadable entries are logged and skipped.
func (s *Store) Hydrate(ctx context.Context) {
	if s.storage == nil {
		return
	}

	for name, p := range s.persisted {
		found, err := p.load(ctx, s.storage)
		if err != nil {
			s.logger.Warn("failed to hydrate slice", slog.String("slice", name), slog.Any("error", err))

			continue
		}
		if found {
			s.logger.Debug("slice hydrated", slog.String("slice", name))
		}
	}
}

// Flush writes every persisted slice.
func (s *Store) Flush(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	var errs []error
	for _, p := range s.persisted {
		if err := p.save(ctx, s.storage); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ResetUserState clears everything that belongs to the signed-in user.
func (s *Store) ResetUserState() {
	s.Auth.Reset()
	s.Cart.Reset()
	s.Wishlist.Reset()
	s.Orders.Reset()
	s.Addresses.Reset()
	s.Inbox.Reset()
	s.Notifications.Reset()
	s.Sessions.Reset()
	s.KYC.Reset()
	s.Location.Reset()
	s.Progress.Reset()
	s.Users.Reset()
	s.Vendors.Reset()
	s.AdminOrders.Reset()
	s.AdminStats.Reset()
}

// onChange saves a persisted slice whenever its data changes.
func (s *Store) onChange(name string, dataChanged bool) {
	if !dataChanged || s.storage == nil {
		return
	}

	p, ok := s.persisted[name]
	if !ok {
		return
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := p.save(ctx, s.storage); err != nil {
		s.logger.Warn("failed to persist slice", slog.String("slice", name), slog.Any("error", err))
	}
}
