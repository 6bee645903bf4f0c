package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// StoreUsecase defines the interface for the nearby stores screen
type StoreUsecase interface {
	// NearbyStores lists stores sorted by distance from the given point, or from the
	// current location when from is nil
	NearbyStores(ctx context.Context, from *entity.Coordinate) ([]*entity.NearbyStore, error)

	// Navigation returns the straight-line distance and travel estimate to a store
	Navigation(ctx context.Context, storeID string, from *entity.Coordinate) (*entity.Navigation, error)
}
