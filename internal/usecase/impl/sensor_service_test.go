package impl

import (
	"context"
	"math"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type sensorServiceFixtures struct {
	service      usecase.SensorUsecase
	location     *mockSvc.MockLocationProvider
	locationFeed *mockSvc.MockLocationFeed
	motionFeed   *mockSvc.MockMotionFeed
}

func createTestSensorService(t *testing.T) sensorServiceFixtures {
	location := mockSvc.NewMockLocationProvider(t)
	locationFeed := mockSvc.NewMockLocationFeed(t)
	motionFeed := mockSvc.NewMockMotionFeed(t)

	return sensorServiceFixtures{
		service: NewSensorService(SensorServiceParams{
			LocationProvider: location,
			LocationFeed:     locationFeed,
			MotionFeed:       motionFeed,
			Logger:           newDiscardLogger(),
		}),
		location:     location,
		locationFeed: locationFeed,
		motionFeed:   motionFeed,
	}
}

func TestSensorService_CurrentLocation(t *testing.T) {
	fx := createTestSensorService(t)
	fx.location.EXPECT().CurrentLocation().Return(cartagena)

	assert.Equal(t, cartagena, fx.service.CurrentLocation(context.Background()))
}

func TestSensorService_UpdateLocation(t *testing.T) {
	fx := createTestSensorService(t)

	bogota := entity.Coordinate{Latitude: 4.711, Longitude: -74.0721}
	fx.locationFeed.EXPECT().PushLocation(bogota).Return(nil)

	assert.NoError(t, fx.service.UpdateLocation(context.Background(), bogota))
}

func TestSensorService_UpdateLocation_Invalid(t *testing.T) {
	fx := createTestSensorService(t)

	for _, coord := range []entity.Coordinate{
		{Latitude: 90.5, Longitude: 0},
		{Latitude: 0, Longitude: -180.1},
		{Latitude: math.NaN(), Longitude: 0},
		{Latitude: math.Inf(1), Longitude: 0},
	} {
		err := fx.service.UpdateLocation(context.Background(), coord)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
	}
}

func TestSensorService_RecordAcceleration(t *testing.T) {
	fx := createTestSensorService(t)

	strong := entity.AccelerationSample{X: 2, Y: 2, Z: 2}
	weak := entity.AccelerationSample{X: 0.1, Y: 0.1, Z: 1}

	fx.motionFeed.EXPECT().PushSample(strong).Return(true)
	fx.motionFeed.EXPECT().PushSample(weak).Return(false)

	assert.True(t, fx.service.RecordAcceleration(context.Background(), strong))
	assert.False(t, fx.service.RecordAcceleration(context.Background(), weak))
}

func TestSensorService_SimulateShake(t *testing.T) {
	fx := createTestSensorService(t)
	fx.motionFeed.EXPECT().Simulate().Return()

	fx.service.SimulateShake(context.Background())
}
