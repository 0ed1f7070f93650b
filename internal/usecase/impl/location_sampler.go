package impl

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// locationSampler implements the LocationSampler interface on top of a position watch.
type locationSampler struct {
	source service.PositionSource
	cfg    config.GeolocationConfig
	logger *slog.Logger
	now    func() time.Time
}

// NewLocationSampler is the constructor for locationSampler.
func NewLocationSampler(source service.PositionSource, cfg *config.Config, logger *slog.Logger) usecase.LocationSampler {
	gcfg := config.GeolocationConfig{HighAccuracy: true}
	if cfg.Geolocation != nil {
		gcfg = *cfg.Geolocation
	}
	if gcfg.SampleWindow <= 0 {
		gcfg.SampleWindow = 8 * time.Second
	}
	if gcfg.ProgressInterval <= 0 {
		gcfg.ProgressInterval = 100 * time.Millisecond
	}

	return &locationSampler{
		source: source,
		cfg:    gcfg,
		logger: logger,
		now:    time.Now,
	}
}

// Sample watches positions until the window elapses. The watch and the progress
// ticker are released on every return path.
func (s *locationSampler) Sample(
	ctx context.Context,
	onProgress func(entity.LocationProgress),
) (*entity.PositionReading, int, error) {
	if onProgress == nil {
		onProgress = func(entity.LocationProgress) {}
	}

	updates, clearWatch, err := s.source.Watch(ctx, entity.WatchOptions{
		EnableHighAccuracy: s.cfg.HighAccuracy,
		Timeout:            s.cfg.Timeout,
		MaximumAge:         s.cfg.MaximumAge,
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to start position watch")
	}
	defer clearWatch()

	window := time.NewTimer(s.cfg.SampleWindow)
	defer window.Stop()

	ticker := time.NewTicker(s.cfg.ProgressInterval)
	defer ticker.Stop()

	start := s.now()
	samples := 0
	var best *entity.PositionReading
	var first orb.Point

	progress := func(percent int) entity.LocationProgress {
		p := entity.LocationProgress{Percent: percent, Samples: samples}
		if best != nil {
			p.BestAccuracy = best.Accuracy
		}

		return p
	}

	onProgress(progress(0))

sampling:
	for {
		select {
		case <-ctx.Done():
			return nil, samples, errors.Wrap(ctx.Err(), "location sampling interrupted")

		case update, ok := <-updates:
			if !ok {
				// The watch ended early; wait out the window with what we have.
				updates = nil

				continue
			}
			if update.Err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("position watch failed",
					slog.Int("code", int(update.Err.Code)),
					slog.Int("samples", samples),
				)

				return nil, samples, update.Err
			}
			if update.Reading == nil {
				continue
			}

			samples++
			if samples == 1 {
				first = update.Reading.Point
			}
			if best == nil || update.Reading.Accuracy < best.Accuracy {
				reading := *update.Reading
				best = &reading
			}

		case <-ticker.C:
			percent := int(s.now().Sub(start) * 100 / s.cfg.SampleWindow)
			onProgress(progress(min(max(percent, 0), 99)))

		case <-window.C:
			break sampling
		}
	}

	onProgress(progress(100))

	if best == nil {
		return nil, 0, domainerrors.ErrNoLocationFix
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("location sampled",
		slog.Int("samples", samples),
		slog.Float64("accuracy", best.Accuracy),
		slog.Float64("drift_m", geo.Distance(first, best.Point)),
	)

	return best, samples, nil
}
