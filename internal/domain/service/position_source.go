package service

import (
	"context"

	"marketplace/internal/domain/entity"
)

// PositionSource is the device geolocation watch. Watch delivers updates on
// the returned channel until the returned clear function is called or ctx ends.
// Callers must always call clear.
type PositionSource interface {
	Watch(ctx context.Context, opts entity.WatchOptions) (updates <-chan entity.PositionUpdate, clear func(), err error)
}
