package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	return cfg
}

// seedProducts inserts products in order and returns them with their assigned ids.
func seedProducts(t *testing.T, store *memory.Store, products ...*entity.Product) []*entity.Product {
	t.Helper()

	for _, product := range products {
		if product.ID == uuid.Nil {
			product.ID = uuid.Must(uuid.NewV7())
		}
	}

	err := memory.NewProductRepository(store).CreateProducts(context.Background(), products)
	require.NoError(t, err)

	return products
}

func testProduct(name string, category entity.Category, price string) *entity.Product {
	return &entity.Product{
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
	}
}
