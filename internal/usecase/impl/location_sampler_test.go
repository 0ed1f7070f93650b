package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/geolocation"
	mockService "marketplace/internal/mocks/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testGeolocationConfig(window time.Duration) *config.Config {
	return &config.Config{
		Geolocation: &config.GeolocationConfig{
			SampleWindow:     window,
			ProgressInterval: 5 * time.Millisecond,
			HighAccuracy:     true,
			Timeout:          30 * time.Second,
		},
	}
}

func reading(lon, lat, accuracy float64) entity.PositionUpdate {
	return entity.PositionUpdate{Reading: &entity.PositionReading{
		Point:     orb.Point{lon, lat},
		Accuracy:  accuracy,
		Timestamp: time.Now(),
	}}
}

// watchWith makes the mock source answer with the given buffered updates and
// records whether the watch was cleared.
func watchWith(t *testing.T, updates ...entity.PositionUpdate) (*mockService.MockPositionSource, *atomic.Bool) {
	t.Helper()

	ch := make(chan entity.PositionUpdate, len(updates))
	for _, u := range updates {
		ch <- u
	}

	cleared := new(atomic.Bool)
	source := mockService.NewMockPositionSource(t)
	source.EXPECT().
		Watch(mock.Anything, entity.WatchOptions{EnableHighAccuracy: true, Timeout: 30 * time.Second}).
		Return(ch, func() { cleared.Store(true) }, nil)

	return source, cleared
}

func TestLocationSampler_KeepsLowestAccuracy(t *testing.T) {
	source, cleared := watchWith(t,
		reading(121.50, 25.03, 50),
		reading(121.51, 25.04, 30),
		reading(121.52, 25.05, 80),
		reading(121.53, 25.06, 20),
	)
	sampler := NewLocationSampler(source, testGeolocationConfig(60*time.Millisecond), newTestLogger())

	var progress []entity.LocationProgress
	best, samples, err := sampler.Sample(context.Background(), func(p entity.LocationProgress) {
		progress = append(progress, p)
	})
	require.NoError(t, err)

	assert.InDelta(t, 20, best.Accuracy, 0.0001)
	assert.InDelta(t, 25.06, best.Latitude(), 0.0001)
	assert.InDelta(t, 121.53, best.Longitude(), 0.0001)
	assert.Equal(t, 4, samples)
	assert.True(t, cleared.Load())

	require.NotEmpty(t, progress)
	assert.Equal(t, 0, progress[0].Percent)
	last := progress[len(progress)-1]
	assert.Equal(t, 100, last.Percent)
	assert.Equal(t, 4, last.Samples)
	assert.InDelta(t, 20, last.BestAccuracy, 0.0001)
	for _, p := range progress[:len(progress)-1] {
		assert.Less(t, p.Percent, 100)
	}
}

func TestLocationSampler_NoReadings(t *testing.T) {
	source, cleared := watchWith(t)
	sampler := NewLocationSampler(source, testGeolocationConfig(20*time.Millisecond), newTestLogger())

	_, _, err := sampler.Sample(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrNoLocationFix)
	assert.True(t, cleared.Load())
}

func TestLocationSampler_ErrorTearsDownWatch(t *testing.T) {
	source, cleared := watchWith(t,
		reading(1, 1, 40),
		entity.PositionUpdate{Err: &entity.PositionError{Code: entity.PositionPermissionDenied}},
	)
	sampler := NewLocationSampler(source, testGeolocationConfig(time.Second), newTestLogger())

	start := time.Now()
	_, _, err := sampler.Sample(context.Background(), nil)

	var posErr *entity.PositionError
	require.True(t, errors.As(err, &posErr))
	assert.Equal(t, entity.PositionPermissionDenied, posErr.Code)
	assert.True(t, cleared.Load())
	assert.Less(t, time.Since(start), time.Second)
}

func TestLocationSampler_ContextCancelled(t *testing.T) {
	source, cleared := watchWith(t)
	sampler := NewLocationSampler(source, testGeolocationConfig(time.Second), newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := sampler.Sample(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, cleared.Load())
}

func TestLocationSampler_WithFeed(t *testing.T) {
	feed := geolocation.NewFeed(newTestLogger())
	sampler := NewLocationSampler(feed, testGeolocationConfig(200*time.Millisecond), newTestLogger())

	type result struct {
		best *entity.PositionReading
		err  error
	}
	done := make(chan result, 1)
	go func() {
		best, _, err := sampler.Sample(context.Background(), nil)
		done <- result{best, err}
	}()

	require.Eventually(t, func() bool {
		active, _ := feed.Active()

		return active
	}, time.Second, time.Millisecond)

	for _, acc := range []float64{50, 30, 80, 20} {
		feed.PublishReading(entity.PositionReading{Point: orb.Point{1, 2}, Accuracy: acc})
	}

	res := <-done
	require.NoError(t, res.err)
	assert.InDelta(t, 20, res.best.Accuracy, 0.0001)

	active, _ := feed.Active()
	assert.False(t, active)
}
