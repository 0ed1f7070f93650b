package impl

import (
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/store"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	return store.NewStore(nil, newTestLogger())
}

func ptr[T any](v T) *T {
	return &v
}
