package impl

import (
	"context"
	"strings"
	"sync"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/store"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
)

// RecentSearchesKey is the storage key of the recent search list.
const RecentSearchesKey = "recentSearches"

const defaultRecentSearchLimit = 10

// searchHistoryService implements the SearchHistoryUsecase interface.
type searchHistoryService struct {
	storage service.StateStorage
	state   *store.Store
	limit   int

	mu     sync.Mutex
	loaded bool
}

// NewSearchHistoryService is the constructor for searchHistoryService.
func NewSearchHistoryService(storage service.StateStorage, state *store.Store, cfg *config.Config) usecase.SearchHistoryUsecase {
	limit := defaultRecentSearchLimit
	if cfg.Persistence != nil && cfg.Persistence.RecentSearchLimit > 0 {
		limit = cfg.Persistence.RecentSearchLimit
	}

	return &searchHistoryService{
		storage: storage,
		state:   state,
		limit:   limit,
	}
}

// List returns the recent searches, most recent first.
func (srv *searchHistoryService) List(ctx context.Context) ([]string, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	return srv.state.Searches.Items(), nil
}

// Add moves query to the front. An equal query in another letter case is replaced.
func (srv *searchHistoryService) Add(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return srv.List(ctx)
	}

	return srv.modify(ctx, func(items []string) []string {
		items = removeWhere(items, func(s *string) bool { return strings.EqualFold(*s, query) })
		items = append([]string{query}, items...)
		if len(items) > srv.limit {
			items = items[:srv.limit]
		}

		return items
	})
}

// Remove drops one query, ignoring letter case.
func (srv *searchHistoryService) Remove(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)

	return srv.modify(ctx, func(items []string) []string {
		return removeWhere(items, func(s *string) bool { return strings.EqualFold(*s, query) })
	})
}

// Clear forgets every recent search.
func (srv *searchHistoryService) Clear(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.storage.Delete(ctx, RecentSearchesKey); err != nil {
		return errors.Wrap(err, "failed to clear recent searches")
	}

	srv.state.Searches.SetItems(nil, nil)
	srv.loaded = true

	return nil
}

func (srv *searchHistoryService) modify(ctx context.Context, fn func([]string) []string) ([]string, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	items := fn(srv.state.Searches.Items())
	if err := srv.storage.Save(ctx, RecentSearchesKey, items); err != nil {
		return nil, errors.Wrap(err, "failed to save recent searches")
	}
	srv.state.Searches.SetItems(items, nil)

	return srv.state.Searches.Items(), nil
}

// ensureLoaded reads the stored list once. Callers hold mu.
func (srv *searchHistoryService) ensureLoaded(ctx context.Context) error {
	if srv.loaded {
		return nil
	}

	var items []string
	if _, err := srv.storage.Load(ctx, RecentSearchesKey, &items); err != nil {
		return errors.Wrap(err, "failed to load recent searches")
	}
	if len(items) > srv.limit {
		items = items[:srv.limit]
	}

	srv.state.Searches.SetItems(items, nil)
	srv.loaded = true

	return nil
}
