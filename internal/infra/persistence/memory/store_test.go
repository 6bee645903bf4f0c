package memory

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProducts(t *testing.T, store *Store) []*entity.Product {
	t.Helper()

	products := []*entity.Product{
		{Name: "AMD Ryzen 9 7950X", Category: entity.CategoryProcessors, Price: decimal.RequireFromString("2480000.00"), Description: "Procesador 16 núcleos", Code: "1234567890123"},
		{Name: "NVIDIA RTX 4090", Category: entity.CategoryGraphics, Price: decimal.RequireFromString("13693374.36"), Description: "GPU de alta gama, 24GB GDDR6X", Code: "1234567890126"},
		{Name: "Clone 100% Ryzen", Category: entity.CategoryProcessors, Price: decimal.RequireFromString("10.00"), Description: "Duplicate code", Code: "1234567890123"},
	}
	require.NoError(t, NewProductRepository(store).CreateProducts(context.Background(), products))

	return products
}

func TestProductRepository_ListProducts(t *testing.T) {
	store := NewStore()
	products := seedProducts(t, store)
	repo := NewProductRepository(store)
	ctx := context.Background()

	all, err := repo.ListProducts(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := range products {
		assert.Equal(t, products[i].ID, all[i].ID)
	}

	processors, err := repo.ListProducts(ctx, entity.ProductFilter{Category: entity.CategoryProcessors})
	require.NoError(t, err)
	assert.Len(t, processors, 2)

	todos, err := repo.ListProducts(ctx, entity.ProductFilter{Category: entity.CategoryAll})
	require.NoError(t, err)
	assert.Len(t, todos, 3)

	bySearch, err := repo.ListProducts(ctx, entity.ProductFilter{Search: "gddr6x"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "NVIDIA RTX 4090", bySearch[0].Name)

	literalPercent, err := repo.ListProducts(ctx, entity.ProductFilter{Search: "100%"})
	require.NoError(t, err)
	assert.Len(t, literalPercent, 1)

	combined, err := repo.ListProducts(ctx, entity.ProductFilter{Category: entity.CategoryGraphics, Search: "ryzen"})
	require.NoError(t, err)
	assert.Empty(t, combined)
}

func TestProductRepository_FindProductByCode_FirstMatch(t *testing.T) {
	store := NewStore()
	products := seedProducts(t, store)
	repo := NewProductRepository(store)

	found, err := repo.FindProductByCode(context.Background(), "1234567890123")
	require.NoError(t, err)
	assert.Equal(t, products[0].ID, found.ID)

	_, err = repo.FindProductByCode(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	_, err = repo.FindProductByCode(context.Background(), "")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCartRepository_OneLinePerProduct(t *testing.T) {
	store := NewStore()
	products := seedProducts(t, store)
	repo := NewCartRepository(store)
	ctx := context.Background()

	line := &entity.CartLine{ProductID: products[0].ID, Quantity: 1, UnitPrice: products[0].Price}
	require.NoError(t, repo.CreateLine(ctx, line))
	assert.NotEqual(t, uuid.Nil, line.ID)

	err := repo.CreateLine(ctx, &entity.CartLine{ProductID: products[0].ID, Quantity: 2, UnitPrice: products[0].Price})
	assert.ErrorIs(t, err, repository.ErrDuplicateCartLine)

	err = repo.CreateLine(ctx, &entity.CartLine{ProductID: uuid.New(), Quantity: 1})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	items, err := repo.ListCartItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "AMD Ryzen 9 7950X", items[0].ProductName)
}

func TestCartRepository_DeleteLine_NotFound(t *testing.T) {
	store := NewStore()
	products := seedProducts(t, store)
	repo := NewCartRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.CreateLine(ctx, &entity.CartLine{ProductID: products[0].ID, Quantity: 1, UnitPrice: products[0].Price}))

	err := repo.DeleteLine(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrCartLineNotFound)

	lines, err := repo.ListLines(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	store := NewStore()
	products := seedProducts(t, store)
	tm := NewTransactionManager(store)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		cartRepo := f.NewCartRepository()
		if err := cartRepo.LockCart(ctx); err != nil {
			return err
		}
		if err := cartRepo.CreateLine(ctx, &entity.CartLine{ProductID: products[0].ID, Quantity: 1, UnitPrice: products[0].Price}); err != nil {
			return err
		}
		if err := f.NewOrderRepository().CreateOrder(ctx, &entity.Order{Total: decimal.NewFromInt(1), Status: entity.OrderStatusPending}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	lines, err := NewCartRepository(store).ListLines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	orders, err := NewOrderRepository(store).ListOrders(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	store := NewStore()
	products := seedProducts(t, store)
	tm := NewTransactionManager(store)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.NewCartRepository().CreateLine(ctx, &entity.CartLine{ProductID: products[0].ID, Quantity: 1})
			panic("unexpected")
		})
	})

	lines, err := NewCartRepository(store).ListLines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestStore_ClosedIsUnavailable(t *testing.T) {
	store := NewStore()
	seedProducts(t, store)
	require.NoError(t, store.Close())

	_, err := NewProductRepository(store).ListProducts(context.Background(), entity.ProductFilter{})
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))

	err = NewTransactionManager(store).Execute(context.Background(), func(repository.RepositoryFactory) error { return nil })
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))

	store.Reopen()
	products, err := NewProductRepository(store).ListProducts(context.Background(), entity.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestStore_ContextErrors(t *testing.T) {
	store := NewStore()
	seedProducts(t, store)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProductRepository(store).ListProducts(cancelled, entity.ProductFilter{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, domainerrors.ErrStoreUnavailable))

	err = NewTransactionManager(store).Execute(cancelled, func(repository.RepositoryFactory) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, domainerrors.ErrStoreUnavailable))

	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()

	_, err = NewCartRepository(store).ListLines(expired)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestOrderRepository_ListOrdersNewestFirst(t *testing.T) {
	store := NewStore()
	repo := NewOrderRepository(store)
	ctx := context.Background()

	first := &entity.Order{Total: decimal.NewFromInt(1), Status: entity.OrderStatusPending}
	second := &entity.Order{Total: decimal.NewFromInt(2), Status: entity.OrderStatusPending}
	require.NoError(t, repo.CreateOrder(ctx, first))
	require.NoError(t, repo.CreateOrder(ctx, second))

	orders, err := repo.ListOrders(ctx, 0)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	limited, err := repo.ListOrders(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, err = repo.FindOrderByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
