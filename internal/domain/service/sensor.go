package service

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// LocationProvider is the push-model source of device positions
type LocationProvider interface {
	// CurrentLocation returns the latest fix, or the configured default before any fix arrives
	CurrentLocation() entity.Coordinate

	// Updates returns a stream of new fixes that closes when ctx is done
	Updates(ctx context.Context) <-chan entity.LocationFix
}

// MotionProvider is the push-model source of shake events
type MotionProvider interface {
	// OnShake subscribes to shake events detected with the given threshold and cooldown.
	// The channel closes when ctx is done.
	OnShake(ctx context.Context, threshold float64, cooldown time.Duration) <-chan entity.ShakeEvent
}

// LocationFeed accepts fixes pushed by the device
type LocationFeed interface {
	// PushLocation records a new fix and fans it out to subscribers
	PushLocation(coord entity.Coordinate) error
}

// MotionFeed accepts accelerometer readings pushed by the device
type MotionFeed interface {
	// PushSample evaluates a reading against every subscription and reports whether any fired
	PushSample(sample entity.AccelerationSample) bool

	// Simulate emits a shake event to every subscriber without a reading
	Simulate()
}
