package blobstore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

type cartDoc struct {
	Items []string `json:"items"`
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	storage := NewStorage(memblob.OpenBucket(nil), slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = storage.Close() })

	return storage
}

func TestStorage_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	var doc cartDoc
	found, err := storage.Load(ctx, "cart", &doc)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, storage.Save(ctx, "cart", cartDoc{Items: []string{"a", "b"}}))

	found, err = storage.Load(ctx, "cart", &doc)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, doc.Items)

	require.NoError(t, storage.Delete(ctx, "cart"))
	require.NoError(t, storage.Delete(ctx, "cart"))

	found, err = storage.Load(ctx, "cart", &doc)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStorage_LoadCorruptDocument(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	require.NoError(t, bucket.WriteAll(ctx, "auth.json", []byte("{not json"), nil))

	storage := NewStorage(bucket, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer storage.Close()

	var v map[string]any
	_, err := storage.Load(ctx, "auth", &v)
	assert.Error(t, err)
}

func TestStorage_Keys(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	require.NoError(t, storage.Save(ctx, "auth", map[string]string{"accessToken": "x"}))
	require.NoError(t, storage.Save(ctx, "wishlist", []string{}))

	keys, err := storage.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"auth", "wishlist"}, keys)
}

func TestStorage_PrefixedBucket(t *testing.T) {
	ctx := context.Background()

	// PrefixedBucket takes ownership of the bucket it wraps.
	prefixed := blob.PrefixedBucket(memblob.OpenBucket(nil), "user-1/")
	storage := NewStorage(prefixed, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = storage.Close() })

	require.NoError(t, storage.Save(ctx, "cart", cartDoc{Items: []string{"p1"}}))

	var doc cartDoc
	found, err := storage.Load(ctx, "cart", &doc)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"p1"}, doc.Items)

	keys, err := storage.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cart"}, keys)
}

func TestOpen_FileBucketWithPrefix(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	storage, err := Open(ctx, &config.PersistenceConfig{BucketURL: "file://" + dir, KeyPrefix: "/alice/"}, logger)
	require.NoError(t, err)
	require.NoError(t, storage.Save(ctx, "wishlist", cartDoc{Items: []string{"p1"}}))
	require.NoError(t, storage.Close())

	reopened, err := Open(ctx, &config.PersistenceConfig{BucketURL: "file://" + dir, KeyPrefix: "alice"}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	var doc cartDoc
	found, err := reopened.Load(ctx, "wishlist", &doc)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"p1"}, doc.Items)

	keys, err := reopened.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"wishlist"}, keys)
}

func TestOpen_RequiresConfig(t *testing.T) {
	_, err := Open(context.Background(), nil, slog.Default())
	require.Error(t, err)
}
