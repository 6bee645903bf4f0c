package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SensorUsecase defines the interface for readings pushed by the device
type SensorUsecase interface {
	// CurrentLocation returns the latest fix or the configured default
	CurrentLocation(ctx context.Context) entity.Coordinate

	// UpdateLocation records a new fix
	UpdateLocation(ctx context.Context, coord entity.Coordinate) error

	// RecordAcceleration feeds an accelerometer reading and reports whether it produced a shake
	RecordAcceleration(ctx context.Context, sample entity.AccelerationSample) bool

	// SimulateShake emits a shake event without a reading
	SimulateShake(ctx context.Context)
}
