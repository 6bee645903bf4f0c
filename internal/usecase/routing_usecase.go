package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// RouteResult represents the result of a distance calculation
type RouteResult struct {
	Source      entity.Coordinate `json:"source"`
	Target      entity.Coordinate `json:"target"`
	DistanceKm  float64           `json:"distance_km"`  // Great-circle distance in kilometers
	DurationMin float64           `json:"duration_min"` // Estimated travel time in minutes
	IsReachable bool              `json:"is_reachable"` // False when either coordinate is invalid
}

// OneToManyResult represents the result of a one-to-many distance query
type OneToManyResult struct {
	Source   entity.Coordinate   `json:"source"`
	Targets  []entity.Coordinate `json:"targets"`
	Results  []RouteResult       `json:"results"`
	Duration time.Duration       `json:"duration"` // Total query execution time
}

// RoutingUsecase defines the interface for straight-line distance calculations
type RoutingUsecase interface {
	// OneToMany calculates distances from one source coordinate to multiple target coordinates.
	// Results keep the order of targets.
	OneToMany(ctx context.Context, source entity.Coordinate, targets []entity.Coordinate) (*OneToManyResult, error)

	// CalculateDistance calculates the distance between two coordinates
	CalculateDistance(ctx context.Context, source, target entity.Coordinate) (*RouteResult, error)
}
