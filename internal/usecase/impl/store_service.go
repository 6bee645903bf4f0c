package impl

import (
	"context"
	"fmt"
	"math"
	"sort"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

// StoreServiceParams holds dependencies for the store service, injected by Fx.
type StoreServiceParams struct {
	fx.In

	Config           *config.Config
	Routing          usecase.RoutingUsecase
	LocationProvider service.LocationProvider
}

type storeService struct {
	stores           []entity.Store
	maxDistanceKm    float64
	minutesPerKm     float64
	routing          usecase.RoutingUsecase
	locationProvider service.LocationProvider
}

// NewStoreService creates a new store service instance
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	locatorCfg := params.Config.StoreLocator
	if locatorCfg == nil {
		locatorCfg = &config.StoreLocatorConfig{Stores: config.DefaultStores()}
	}

	minutesPerKm := locatorCfg.ETAMinutesPerKm
	if minutesPerKm <= 0 {
		minutesPerKm = defaultMinutesPerKm
	}

	stores := make([]entity.Store, 0, len(locatorCfg.Stores))
	for _, storeCfg := range locatorCfg.Stores {
		stores = append(stores, entity.Store{
			ID:        storeCfg.ID,
			Name:      storeCfg.Name,
			Address:   storeCfg.Address,
			Location:  entity.Coordinate{Latitude: storeCfg.Latitude, Longitude: storeCfg.Longitude},
			Phone:     storeCfg.Phone,
			Specialty: storeCfg.Specialty,
		})
	}

	return &storeService{
		stores:           stores,
		maxDistanceKm:    locatorCfg.MaxDistanceKm,
		minutesPerKm:     minutesPerKm,
		routing:          params.Routing,
		locationProvider: params.LocationProvider,
	}
}

// NearbyStores lists stores sorted by distance
func (s *storeService) NearbyStores(ctx context.Context, from *entity.Coordinate) ([]*entity.NearbyStore, error) {
	origin, err := s.origin(from)
	if err != nil {
		return nil, err
	}

	candidates := s.candidates(origin)
	if len(candidates) == 0 {
		return []*entity.NearbyStore{}, nil
	}

	targets := make([]entity.Coordinate, 0, len(candidates))
	for _, store := range candidates {
		targets = append(targets, store.Location)
	}

	routes, err := s.routing.OneToMany(ctx, origin, targets)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate store distances: %w", err)
	}

	nearby := make([]*entity.NearbyStore, 0, len(candidates))
	for i, route := range routes.Results {
		if !route.IsReachable {
			continue
		}

		distance := roundKm(route.DistanceKm)
		if s.maxDistanceKm > 0 && distance > s.maxDistanceKm {
			continue
		}

		nearby = append(nearby, &entity.NearbyStore{
			Store:      candidates[i],
			DistanceKm: distance,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}

// Navigation returns the distance and travel estimate to a store
func (s *storeService) Navigation(ctx context.Context, storeID string, from *entity.Coordinate) (*entity.Navigation, error) {
	origin, err := s.origin(from)
	if err != nil {
		return nil, err
	}

	store, ok := s.findStore(storeID)
	if !ok {
		return nil, domainerrors.ErrStoreNotFound.WithDetails(storeID)
	}

	route, err := s.routing.CalculateDistance(ctx, origin, store.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate store distance: %w", err)
	}
	if !route.IsReachable {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails("store location is invalid")
	}

	distance := roundKm(route.DistanceKm)

	return &entity.Navigation{
		Store:      store,
		From:       origin,
		DistanceKm: distance,
		ETAMinutes: int(distance * s.minutesPerKm),
	}, nil
}

func (s *storeService) origin(from *entity.Coordinate) (entity.Coordinate, error) {
	if from == nil {
		return s.locationProvider.CurrentLocation(), nil
	}

	if !isValidCoordinate(*from) {
		return entity.Coordinate{}, domainerrors.ErrInvalidCoordinate.WithDetails(from.GeoString())
	}

	return *from, nil
}

// candidates drops stores outside the bounding box of the search radius before exact distances are computed.
func (s *storeService) candidates(origin entity.Coordinate) []entity.Store {
	if s.maxDistanceKm <= 0 {
		return s.stores
	}

	center := orb.Point{origin.Longitude, origin.Latitude}
	bound := geo.NewBoundAroundPoint(center, s.maxDistanceKm*1000)

	candidates := make([]entity.Store, 0, len(s.stores))
	for _, store := range s.stores {
		if bound.Contains(orb.Point{store.Location.Longitude, store.Location.Latitude}) {
			candidates = append(candidates, store)
		}
	}

	return candidates
}

func (s *storeService) findStore(storeID string) (entity.Store, bool) {
	for _, store := range s.stores {
		if store.ID == storeID {
			return store, true
		}
	}

	return entity.Store{}, false
}

// roundKm rounds a distance to 0.1 km.
func roundKm(km float64) float64 {
	return math.Round(km*10) / 10
}
