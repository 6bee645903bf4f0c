package impl

import (
	"context"
	"math"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockSvc "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestStoreService(t *testing.T, maxDistanceKm float64) (usecase.StoreUsecase, *mockSvc.MockLocationProvider) {
	cfg := newTestConfig()
	cfg.StoreLocator.MaxDistanceKm = maxDistanceKm

	location := mockSvc.NewMockLocationProvider(t)

	return NewStoreService(StoreServiceParams{
		Config:           cfg,
		Routing:          NewRoutingService(cfg),
		LocationProvider: location,
	}), location
}

func storeIDs(stores []*entity.NearbyStore) []string {
	ids := make([]string, 0, len(stores))
	for _, store := range stores {
		ids = append(ids, store.ID)
	}

	return ids
}

func TestStoreService_NearbyStores_SortedByDistance(t *testing.T) {
	service, location := createTestStoreService(t, 0)
	location.EXPECT().CurrentLocation().Return(cartagena)

	stores, err := service.NearbyStores(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"computerworking", "compulago", "computo-segunda-mano", "celuclock"}, storeIDs(stores))
	for i := 1; i < len(stores); i++ {
		assert.LessOrEqual(t, stores[i-1].DistanceKm, stores[i].DistanceKm)
	}
	for _, store := range stores {
		assert.Equal(t, store.DistanceKm, math.Round(store.DistanceKm*10)/10)
	}
}

func TestStoreService_NearbyStores_MaxDistance(t *testing.T) {
	service, _ := createTestStoreService(t, 1)

	stores, err := service.NearbyStores(context.Background(), &cartagena)
	require.NoError(t, err)
	assert.Equal(t, []string{"computerworking", "compulago"}, storeIDs(stores))
}

func TestStoreService_NearbyStores_InvalidOrigin(t *testing.T) {
	service, _ := createTestStoreService(t, 0)

	_, err := service.NearbyStores(context.Background(), &entity.Coordinate{Latitude: 91, Longitude: 0})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestStoreService_NearbyStores_RoutingError(t *testing.T) {
	routing := mockUsecase.NewMockRoutingUsecase(t)
	routing.EXPECT().OneToMany(mock.Anything, cartagena, mock.Anything).Return(nil, errors.New("canceled"))

	service := NewStoreService(StoreServiceParams{
		Config:  newTestConfig(),
		Routing: routing,
	})

	_, err := service.NearbyStores(context.Background(), &cartagena)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to calculate store distances")
}

func TestStoreService_Navigation(t *testing.T) {
	service, location := createTestStoreService(t, 0)
	location.EXPECT().CurrentLocation().Return(cartagena)

	nav, err := service.Navigation(context.Background(), "celuclock", nil)
	require.NoError(t, err)

	assert.Equal(t, "Celuclock", nav.Store.Name)
	assert.Equal(t, cartagena, nav.From)
	assert.InDelta(t, 2.0, nav.DistanceKm, 0.15)
	assert.Equal(t, int(nav.DistanceKm*3), nav.ETAMinutes)
}

func TestStoreService_Navigation_UnknownStore(t *testing.T) {
	service, _ := createTestStoreService(t, 0)

	_, err := service.Navigation(context.Background(), "nowhere", &cartagena)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_NilLocatorConfigUsesDefaults(t *testing.T) {
	service := NewStoreService(StoreServiceParams{
		Config:  &config.Config{},
		Routing: NewRoutingService(&config.Config{}),
	})

	stores, err := service.NearbyStores(context.Background(), &cartagena)
	require.NoError(t, err)
	assert.Len(t, stores, len(config.DefaultStores()))
}
