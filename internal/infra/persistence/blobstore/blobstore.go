// Package blobstore keeps persisted client state in a gocloud.dev bucket.
package blobstore

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const contentType = "application/json"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Storage stores one JSON document per key.
type Storage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

var _ service.StateStorage = (*Storage)(nil)

// New opens the bucket named by persistence.bucketURL and closes it on stop.
func New(params Params) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	storage, err := Open(ctx, params.Config.Persistence, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// Open opens the configured bucket. The caller closes the storage.
func Open(ctx context.Context, cfg *config.PersistenceConfig, logger *slog.Logger) (*Storage, error) {
	if cfg == nil {
		return nil, errors.New("persistence config is required")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open state bucket %s", cfg.BucketURL)
	}

	if prefix := strings.Trim(cfg.KeyPrefix, "/"); prefix != "" {
		bucket = blob.PrefixedBucket(bucket, prefix+"/")
	}

	return NewStorage(bucket, logger), nil
}

// NewStorage wraps an already opened bucket.
func NewStorage(bucket *blob.Bucket, logger *slog.Logger) *Storage {
	return &Storage{bucket: bucket, logger: logger}
}

// Load decodes the document at key into v. It reports false when the key is absent.
func (s *Storage) Load(ctx context.Context, key string, v any) (bool, error) {
	data, err := s.bucket.ReadAll(ctx, objectKey(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to read %s", key)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, errors.Wrapf(err, "failed to decode %s", key)
	}

	return true, nil
}

// Save replaces the document at key.
func (s *Storage) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}

	if err := s.bucket.WriteAll(ctx, objectKey(key), data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	s.logger.Debug("state saved", slog.String("key", key), slog.Int("bytes", len(data)))

	return nil
}

// Delete removes the document at key. Deleting an absent key is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, objectKey(key)); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// Keys lists the stored keys, used by marketctl state.
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	var keys []string

	iter := s.bucket.List(nil)
	for {
		obj, err := iter.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, errors.Wrap(err, "failed to list state keys")
		}
		if obj.IsDir {
			continue
		}
		keys = append(keys, strings.TrimSuffix(obj.Key, ".json"))
	}

	return keys, nil
}

// Close releases the bucket.
func (s *Storage) Close() error {
	return s.bucket.Close()
}

func objectKey(key string) string {
	return key + ".json"
}
