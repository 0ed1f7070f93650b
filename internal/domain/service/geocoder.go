package service

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/paulmach/orb"
)

// Geocoder turns a coordinate into a human-readable address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, point orb.Point) (*entity.GeocodedAddress, error)
}
