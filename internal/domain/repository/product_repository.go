// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for catalog-related database operations.
type ProductRepository interface {
	// ListProducts returns the products matching the filter in insertion order.
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductByCode retrieves the first product (insertion order) with the given code.
	FindProductByCode(ctx context.Context, code string) (*entity.Product, error)

	// CreateProducts persists catalog products in the given order.
	CreateProducts(ctx context.Context, products []*entity.Product) error

	// CountProducts returns the number of products in the catalog.
	CountProducts(ctx context.Context) (int64, error)
}
