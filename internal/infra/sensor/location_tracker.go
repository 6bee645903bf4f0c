// Package sensor implements the push-model location and motion providers fed by the device.
package sensor

import (
	"context"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

const subscriberBuffer = 8

// LocationTracker keeps the latest device position and fans new fixes out to subscribers.
type LocationTracker struct {
	mu      sync.RWMutex
	current entity.Coordinate
	hasFix  bool
	subs    map[int]chan entity.LocationFix
	nextID  int
	now     func() time.Time
}

// NewLocationTracker creates a tracker that reports the configured default until a fix arrives.
func NewLocationTracker(cfg *config.Config) *LocationTracker {
	current := entity.Coordinate{Latitude: 10.4236, Longitude: -75.5378}
	if cfg != nil && cfg.Location != nil {
		current = entity.Coordinate{
			Latitude:  cfg.Location.DefaultLatitude,
			Longitude: cfg.Location.DefaultLongitude,
		}
	}

	return &LocationTracker{
		current: current,
		subs:    make(map[int]chan entity.LocationFix),
		now:     time.Now,
	}
}

// CurrentLocation returns the latest fix or the default.
func (t *LocationTracker) CurrentLocation() entity.Coordinate {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.current
}

// HasFix reports whether a real fix has been received.
func (t *LocationTracker) HasFix() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.hasFix
}

// Updates returns a stream of new fixes. Slow subscribers miss fixes instead of blocking the feed.
func (t *LocationTracker) Updates(ctx context.Context) <-chan entity.LocationFix {
	ch := make(chan entity.LocationFix, subscriberBuffer)

	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.subs[id] = ch
	t.mu.Unlock()

	go func() {
		<-ctx.Done()

		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
		close(ch)
	}()

	return ch
}

// PushLocation records a new fix and notifies subscribers.
func (t *LocationTracker) PushLocation(coord entity.Coordinate) error {
	if !coord.IsValid() {
		return errors.Errorf("invalid coordinate %s", coord.GeoString())
	}

	fix := entity.LocationFix{Coordinate: coord, ReceivedAt: t.now()}

	// Storing and fanning out under one lock keeps subscribers in the same order as current.
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = coord
	t.hasFix = true
	for _, ch := range t.subs {
		select {
		case ch <- fix:
		default:
		}
	}

	return nil
}
