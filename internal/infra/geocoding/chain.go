package geocoding

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// Params defines the dependencies of the geocoder chain
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Chain tries the primary geocoder and falls back on any failure.
type Chain struct {
	primary  service.Geocoder
	fallback service.Geocoder
	logger   *slog.Logger
}

// NewChain wires the primary and fallback geocoders.
func NewChain(primary, fallback service.Geocoder, logger *slog.Logger) *Chain {
	return &Chain{primary: primary, fallback: fallback, logger: logger}
}

// New builds the BigDataCloud -> Nominatim chain from the geocoding config section.
func New(params Params) (service.Geocoder, error) {
	cfg := params.Config.Geocoding
	client := &http.Client{Timeout: cfg.Timeout}

	fallback, err := NewNominatim(cfg.FallbackURL, cfg.Language, cfg.UserAgent, cfg.FallbackRatePerSecond, client)
	if err != nil {
		return nil, err
	}

	primary := NewBigDataCloud(cfg.PrimaryURL, cfg.Language, cfg.UserAgent, client)

	return NewChain(primary, fallback, params.Logger), nil
}

// ReverseGeocode implements service.Geocoder
func (c *Chain) ReverseGeocode(ctx context.Context, point orb.Point) (*entity.GeocodedAddress, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	addr, primaryErr := c.primary.ReverseGeocode(ctx, point)
	if primaryErr == nil {
		return addr, nil
	}

	logger.Warn("primary geocoder failed, using fallback", slog.Any("error", primaryErr))

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	addr, fallbackErr := c.fallback.ReverseGeocode(ctx, point)
	if fallbackErr == nil {
		return addr, nil
	}

	logger.Error("fallback geocoder failed", slog.Any("error", fallbackErr))

	return nil, domainerrors.ErrGeocodingFailed.WithDetails(fallbackErr.Error())
}
