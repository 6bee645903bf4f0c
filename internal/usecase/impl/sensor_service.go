package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// SensorServiceParams holds dependencies for the sensor service, injected by Fx.
type SensorServiceParams struct {
	fx.In

	LocationProvider service.LocationProvider
	LocationFeed     service.LocationFeed
	MotionFeed       service.MotionFeed
	Logger           *slog.Logger
}

type sensorService struct {
	locationProvider service.LocationProvider
	locationFeed     service.LocationFeed
	motionFeed       service.MotionFeed
	logger           *slog.Logger
}

// NewSensorService creates a new sensor service instance
func NewSensorService(params SensorServiceParams) usecase.SensorUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &sensorService{
		locationProvider: params.LocationProvider,
		locationFeed:     params.LocationFeed,
		motionFeed:       params.MotionFeed,
		logger:           logger,
	}
}

// CurrentLocation returns the latest fix or the configured default
func (s *sensorService) CurrentLocation(_ context.Context) entity.Coordinate {
	return s.locationProvider.CurrentLocation()
}

// UpdateLocation records a new fix
func (s *sensorService) UpdateLocation(ctx context.Context, coord entity.Coordinate) error {
	if !isValidCoordinate(coord) {
		return domainerrors.ErrInvalidCoordinate.WithDetails(coord.GeoString())
	}

	if err := s.locationFeed.PushLocation(coord); err != nil {
		return domainerrors.ErrInvalidCoordinate.WithDetails(err.Error())
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Location updated",
		slog.Float64("latitude", coord.Latitude),
		slog.Float64("longitude", coord.Longitude),
	)

	return nil
}

// RecordAcceleration feeds an accelerometer reading
func (s *sensorService) RecordAcceleration(ctx context.Context, sample entity.AccelerationSample) bool {
	detected := s.motionFeed.PushSample(sample)
	if detected {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Shake detected",
			slog.Float64("magnitude", sample.Magnitude()),
		)
	}

	return detected
}

// SimulateShake emits a shake event without a reading
func (s *sensorService) SimulateShake(ctx context.Context) {
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Simulated shake")
	s.motionFeed.Simulate()
}
