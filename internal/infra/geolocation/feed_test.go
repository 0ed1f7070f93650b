package geolocation

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeed() *Feed {
	return NewFeed(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFeed_DeliversReadingsToWatch(t *testing.T) {
	feed := newTestFeed()

	updates, clear, err := feed.Watch(context.Background(), entity.WatchOptions{EnableHighAccuracy: true})
	require.NoError(t, err)
	defer clear()

	active, high := feed.Active()
	assert.True(t, active)
	assert.True(t, high)

	n := feed.PublishReading(entity.PositionReading{Point: orb.Point{121.5, 25.0}, Accuracy: 12})
	assert.Equal(t, 1, n)

	update := <-updates
	require.NotNil(t, update.Reading)
	assert.Equal(t, 12.0, update.Reading.Accuracy)
	assert.Equal(t, 25.0, update.Reading.Latitude())
}

func TestFeed_ZeroMaximumAgeDropsStaleReadings(t *testing.T) {
	feed := newTestFeed()

	updates, clear, err := feed.Watch(context.Background(), entity.WatchOptions{})
	require.NoError(t, err)
	defer clear()

	stale := entity.PositionReading{Accuracy: 5, Timestamp: time.Now().Add(-time.Minute)}
	assert.Equal(t, 0, feed.PublishReading(stale))
	assert.Empty(t, updates)
}

func TestFeed_MaximumAgeAcceptsCachedReading(t *testing.T) {
	feed := newTestFeed()

	updates, clear, err := feed.Watch(context.Background(), entity.WatchOptions{MaximumAge: time.Hour})
	require.NoError(t, err)
	defer clear()

	cached := entity.PositionReading{Accuracy: 5, Timestamp: time.Now().Add(-time.Minute)}
	assert.Equal(t, 1, feed.PublishReading(cached))
	assert.Len(t, updates, 1)
}

func TestFeed_PublishError(t *testing.T) {
	feed := newTestFeed()

	updates, clear, err := feed.Watch(context.Background(), entity.WatchOptions{})
	require.NoError(t, err)
	defer clear()

	feed.PublishError(entity.PositionError{Code: entity.PositionPermissionDenied})

	update := <-updates
	require.NotNil(t, update.Err)
	assert.Equal(t, entity.PositionPermissionDenied, update.Err.Code)
}

func TestFeed_TimeoutWithoutReadings(t *testing.T) {
	feed := newTestFeed()

	updates, clear, err := feed.Watch(context.Background(), entity.WatchOptions{Timeout: 20 * time.Millisecond})
	require.NoError(t, err)
	defer clear()

	select {
	case update := <-updates:
		require.NotNil(t, update.Err)
		assert.Equal(t, entity.PositionTimeout, update.Err.Code)
	case <-time.After(time.Second):
		t.Fatal("expected a timeout update")
	}
}

func TestFeed_ClearClosesChannelAndIsIdempotent(t *testing.T) {
	feed := newTestFeed()

	updates, clear, err := feed.Watch(context.Background(), entity.WatchOptions{Timeout: time.Hour})
	require.NoError(t, err)

	clear()
	clear()

	_, open := <-updates
	assert.False(t, open)

	active, _ := feed.Active()
	assert.False(t, active)
	assert.Equal(t, 0, feed.PublishReading(entity.PositionReading{Accuracy: 1}))
}

func TestFeed_ContextCancellationClears(t *testing.T) {
	feed := newTestFeed()

	ctx, cancel := context.WithCancel(context.Background())
	updates, clear, err := feed.Watch(ctx, entity.WatchOptions{})
	require.NoError(t, err)
	defer clear()

	cancel()

	select {
	case _, open := <-updates:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("watch was not cleared on cancellation")
	}
}

func TestFeed_WatchOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, clear, err := newTestFeed().Watch(ctx, entity.WatchOptions{})
	assert.Error(t, err)
	clear()
}
