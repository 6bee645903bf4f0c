package impl

import (
	"context"
	"math"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

const (
	// fallback keeps estimates functional when config is missing/invalid
	defaultMinutesPerKm = 3.0

	earthRadiusKm = 6371.0
)

// routingService implements the RoutingUsecase interface
type routingService struct {
	minutesPerKm float64 // Estimated travel minutes per kilometer
}

// NewRoutingService creates a new routing service instance
func NewRoutingService(cfg *config.Config) usecase.RoutingUsecase {
	minutesPerKm := defaultMinutesPerKm
	if cfg != nil && cfg.StoreLocator != nil && cfg.StoreLocator.ETAMinutesPerKm > 0 {
		minutesPerKm = cfg.StoreLocator.ETAMinutesPerKm
	}

	return &routingService{
		minutesPerKm: minutesPerKm,
	}
}

// OneToMany calculates distances from one source coordinate to multiple target coordinates
func (s *routingService) OneToMany(ctx context.Context, source entity.Coordinate, targets []entity.Coordinate) (*usecase.OneToManyResult, error) {
	startTime := time.Now()

	if len(targets) == 0 {
		return &usecase.OneToManyResult{
			Source:   source,
			Targets:  targets,
			Results:  []usecase.RouteResult{},
			Duration: time.Since(startTime),
		}, nil
	}

	results := make([]usecase.RouteResult, len(targets))

	targetCh := make(chan int, len(targets))
	resultCh := make(chan routeResultWithIndex, len(targets))

	workerCount := s.workerCount(len(targets))
	workerGroup := s.spawnRouteWorkers(ctx, workerCount, targetCh, resultCh, source, targets)

	go s.dispatchRouteWork(ctx, targetCh, len(targets))
	collectRouteResults(resultCh, results, workerGroup)

	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "distance calculation canceled")
	}

	return &usecase.OneToManyResult{
		Source:   source,
		Targets:  targets,
		Results:  results,
		Duration: time.Since(startTime),
	}, nil
}

// CalculateDistance calculates the distance between two coordinates
func (s *routingService) CalculateDistance(ctx context.Context, source, target entity.Coordinate) (*usecase.RouteResult, error) {
	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "distance calculation canceled")
	}

	result := s.calculateHaversineDistance(source, target)

	return &result, nil
}

// calculateHaversineDistance calculates straight-line distance and estimated duration
func (s *routingService) calculateHaversineDistance(source, target entity.Coordinate) usecase.RouteResult {
	if !isValidCoordinate(source) || !isValidCoordinate(target) {
		return usecase.RouteResult{
			Source:      source,
			Target:      target,
			IsReachable: false,
		}
	}

	distanceKm := haversineDistance(source.Latitude, source.Longitude, target.Latitude, target.Longitude)

	return usecase.RouteResult{
		Source:      source,
		Target:      target,
		DistanceKm:  distanceKm,
		DurationMin: distanceKm * s.minutesPerKm,
		IsReachable: true,
	}
}

// haversineDistance calculates the great circle distance between two points in kilometers
func haversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// isValidCoordinate checks if a coordinate is within valid geographic bounds (Earth)
func isValidCoordinate(coord entity.Coordinate) bool {
	if math.IsInf(coord.Latitude, 0) || math.IsInf(coord.Longitude, 0) {
		return false
	}

	return coord.IsValid()
}

func (s *routingService) workerCount(targetCount int) int {
	const numWorkers = 10
	if targetCount < numWorkers {
		return targetCount
	}

	return numWorkers
}

type routeResultWithIndex struct {
	index  int
	result usecase.RouteResult
}

func (s *routingService) spawnRouteWorkers(
	ctx context.Context,
	workerCount int,
	targetCh <-chan int,
	resultCh chan<- routeResultWithIndex,
	source entity.Coordinate,
	targets []entity.Coordinate,
) *sync.WaitGroup {
	var workerGroup sync.WaitGroup

	for i := 0; i < workerCount; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range targetCh {
				if ctx.Err() != nil {
					return
				}

				result := s.calculateHaversineDistance(source, targets[idx])
				resultCh <- routeResultWithIndex{index: idx, result: result}
			}
		}()
	}

	return &workerGroup
}

func (s *routingService) dispatchRouteWork(ctx context.Context, targetCh chan<- int, targetCount int) {
	defer close(targetCh)

	for i := 0; i < targetCount; i++ {
		if ctx.Err() != nil {
			return
		}

		targetCh <- i
	}
}

func collectRouteResults(resultCh chan routeResultWithIndex, results []usecase.RouteResult, workerGroup *sync.WaitGroup) {
	go func() {
		workerGroup.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		results[res.index] = res.result
	}
}
