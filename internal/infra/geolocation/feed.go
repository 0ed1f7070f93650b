// Package geolocation bridges device positions reported by the view layer to
// the position watches opened by the KYC location flow.
package geolocation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
)

const watchBuffer = 32

// Feed fans device position callbacks out to the active watches.
type Feed struct {
	mu       sync.Mutex
	watchers map[uint64]*watcher
	nextID   uint64
	now      func() time.Time
	logger   *slog.Logger
}

type watcher struct {
	opts    entity.WatchOptions
	started time.Time
	updates chan entity.PositionUpdate
	timer   *time.Timer
}

var _ service.PositionSource = (*Feed)(nil)

// NewFeed creates an empty feed.
func NewFeed(logger *slog.Logger) *Feed {
	return &Feed{
		watchers: make(map[uint64]*watcher),
		now:      time.Now,
		logger:   logger,
	}
}

// Watch opens a position watch. Updates stop after clear is called or ctx ends.
func (f *Feed) Watch(ctx context.Context, opts entity.WatchOptions) (<-chan entity.PositionUpdate, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, func() {}, err
	}

	w := &watcher{
		opts:    opts,
		started: f.now(),
		updates: make(chan entity.PositionUpdate, watchBuffer),
	}

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.watchers[id] = w
	if opts.Timeout > 0 {
		w.timer = time.AfterFunc(opts.Timeout, func() { f.timeout(id) })
	}
	f.mu.Unlock()

	stop := context.AfterFunc(ctx, func() { f.clear(id) })
	clear := func() {
		stop()
		f.clear(id)
	}

	f.logger.Debug("position watch opened",
		slog.Uint64("watch_id", id),
		slog.Bool("high_accuracy", opts.EnableHighAccuracy),
	)

	return w.updates, clear, nil
}

// Active reports whether any watch is open and whether one of them asked for high accuracy.
func (f *Feed) Active() (active, highAccuracy bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, w := range f.watchers {
		active = true
		if w.opts.EnableHighAccuracy {
			highAccuracy = true
		}
	}

	return active, highAccuracy
}

// PublishReading delivers a fix to every open watch. Readings older than a
// watch's MaximumAge are dropped; a zero MaximumAge only accepts readings taken
// after the watch opened. It returns the number of watches that received it.
func (f *Feed) PublishReading(reading entity.PositionReading) int {
	if reading.Timestamp.IsZero() {
		reading.Timestamp = f.now()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	delivered := 0
	for id, w := range f.watchers {
		if !w.accepts(reading, f.now()) {
			continue
		}
		if w.timer != nil {
			w.timer.Reset(w.opts.Timeout)
		}

		r := reading
		if f.send(id, w, entity.PositionUpdate{Reading: &r}) {
			delivered++
		}
	}

	return delivered
}

// PublishError delivers a geolocation failure to every open watch.
func (f *Feed) PublishError(posErr entity.PositionError) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	delivered := 0
	for id, w := range f.watchers {
		e := posErr
		if f.send(id, w, entity.PositionUpdate{Err: &e}) {
			delivered++
		}
	}

	return delivered
}

func (w *watcher) accepts(reading entity.PositionReading, now time.Time) bool {
	if w.opts.MaximumAge > 0 {
		return now.Sub(reading.Timestamp) <= w.opts.MaximumAge
	}

	return !reading.Timestamp.Before(w.started)
}

// send must be called with f.mu held.
func (f *Feed) send(id uint64, w *watcher, update entity.PositionUpdate) bool {
	select {
	case w.updates <- update:
		return true
	default:
		f.logger.Warn("position watch is not draining, update dropped", slog.Uint64("watch_id", id))

		return false
	}
}

func (f *Feed) timeout(id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w, ok := f.watchers[id]
	if !ok {
		return
	}

	f.send(id, w, entity.PositionUpdate{Err: &entity.PositionError{
		Code:   entity.PositionTimeout,
		Reason: "no position within " + w.opts.Timeout.String(),
	}})
}

func (f *Feed) clear(id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w, ok := f.watchers[id]
	if !ok {
		return
	}
	delete(f.watchers, id)

	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.updates)

	f.logger.Debug("position watch cleared", slog.Uint64("watch_id", id))
}
