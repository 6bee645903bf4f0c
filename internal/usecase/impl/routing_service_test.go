package impl

import (
	"context"
	"fmt"
	"math"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cartagena city center, the default location.
var cartagena = entity.Coordinate{Latitude: 10.4236, Longitude: -75.5378}

func TestNewRoutingService_ZeroConfig(t *testing.T) {
	service := NewRoutingService(&config.Config{})
	impl := service.(*routingService)

	assert.Equal(t, defaultMinutesPerKm, impl.minutesPerKm)
}

func TestRoutingService_CalculateDistance(t *testing.T) {
	cfg := &config.Config{StoreLocator: &config.StoreLocatorConfig{ETAMinutesPerKm: 3}}
	service := NewRoutingService(cfg)

	target := entity.Coordinate{Latitude: 10.4250, Longitude: -75.5390} // Computerworking

	result, err := service.CalculateDistance(context.Background(), cartagena, target)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, cartagena, result.Source)
	assert.Equal(t, target, result.Target)
	assert.True(t, result.IsReachable)
	assert.InDelta(t, 0.2, result.DistanceKm, 0.05)
	assert.InDelta(t, result.DistanceKm*3, result.DurationMin, 1e-9)
}

func TestRoutingService_OneToMany_EmptyTargets(t *testing.T) {
	service := NewRoutingService(&config.Config{})

	result, err := service.OneToMany(context.Background(), cartagena, []entity.Coordinate{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, cartagena, result.Source)
	assert.Empty(t, result.Results)
	assert.True(t, result.Duration >= 0)
}

func TestRoutingService_OneToMany_MultipleTargets(t *testing.T) {
	service := NewRoutingService(&config.Config{})

	targets := []entity.Coordinate{
		{Latitude: 10.4330, Longitude: -75.5378}, // ~1km
		{Latitude: 10.4426, Longitude: -75.5378}, // ~2km
		{Latitude: 10.4516, Longitude: -75.5378}, // ~3km
	}

	result, err := service.OneToMany(context.Background(), cartagena, targets)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Results, 3)

	for i, routeResult := range result.Results {
		assert.Equal(t, cartagena, routeResult.Source)
		assert.Equal(t, targets[i], routeResult.Target)
		assert.True(t, routeResult.IsReachable)

		if i > 0 {
			assert.Greater(t, routeResult.DistanceKm, result.Results[i-1].DistanceKm)
		}
	}
}

func TestRoutingService_OneToMany_ContextCancellation(t *testing.T) {
	service := NewRoutingService(&config.Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.OneToMany(ctx, cartagena, []entity.Coordinate{{Latitude: 10.43, Longitude: -75.53}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "canceled")
}

func TestHaversineDistance(t *testing.T) {
	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	assert.InDelta(t, 111.19, haversineDistance(0, 0, 1, 0), 0.01)
	assert.Equal(t, 0.0, haversineDistance(10.4236, -75.5378, 10.4236, -75.5378))
}

func TestIsValidCoordinate(t *testing.T) {
	valid := []entity.Coordinate{
		cartagena,
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 0, Longitude: 0},
	}
	for _, coord := range valid {
		assert.True(t, isValidCoordinate(coord))
	}

	invalid := []entity.Coordinate{
		{Latitude: 91.0, Longitude: 0.0},
		{Latitude: -91.0, Longitude: 0.0},
		{Latitude: 0.0, Longitude: 181.0},
		{Latitude: 0.0, Longitude: -181.0},
		{Latitude: math.NaN(), Longitude: 0},
		{Latitude: 0, Longitude: math.Inf(1)},
	}
	for _, coord := range invalid {
		assert.False(t, isValidCoordinate(coord), "Coordinate should be invalid: %+v", coord)
	}
}

func TestRoutingService_CalculateDistance_InvalidCoordinates(t *testing.T) {
	service := NewRoutingService(&config.Config{})

	result, err := service.CalculateDistance(context.Background(), cartagena, entity.Coordinate{Latitude: math.NaN()})
	require.NoError(t, err)
	assert.False(t, result.IsReachable)
}

func BenchmarkRoutingService_OneToMany(b *testing.B) {
	service := NewRoutingService(&config.Config{})
	ctx := context.Background()

	for _, count := range []int{1, 10, 50, 100} {
		b.Run(fmt.Sprintf("targets_%d", count), func(b *testing.B) {
			targets := make([]entity.Coordinate, count)
			for i := range count {
				targets[i] = entity.Coordinate{
					Latitude:  cartagena.Latitude + float64(i%10)*0.001,
					Longitude: cartagena.Longitude + float64(i/10)*0.001,
				}
			}

			b.ResetTimer()
			for b.Loop() {
				if _, err := service.OneToMany(ctx, cartagena, targets); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
