package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartLineNotFound is returned when a cart line is not found.
	ErrCartLineNotFound = errors.New("cart line not found")
	// ErrDuplicateCartLine is returned when a second line for the same product is created.
	ErrDuplicateCartLine = errors.New("cart line already exists for product")
)

// CartRepository defines the interface for cart-related database operations.
type CartRepository interface {
	// LockCart takes the transaction-scoped cart lock. It must be the first call in every
	// transaction that reads and then writes cart lines.
	LockCart(ctx context.Context) error

	// FindLineByID retrieves a cart line by its unique ID.
	FindLineByID(ctx context.Context, id uuid.UUID) (*entity.CartLine, error)

	// FindLineByProductID retrieves the cart line for a product.
	FindLineByProductID(ctx context.Context, productID uuid.UUID) (*entity.CartLine, error)

	// CreateLine persists a new cart line.
	CreateLine(ctx context.Context, line *entity.CartLine) error

	// UpdateLineQuantity sets the quantity of an existing line. Unit price is never touched.
	UpdateLineQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// DeleteLine removes a cart line by its ID.
	DeleteLine(ctx context.Context, id uuid.UUID) error

	// DeleteAllLines removes every cart line and returns how many were removed.
	DeleteAllLines(ctx context.Context) (int64, error)

	// ListLines returns the raw cart lines in insertion order.
	ListLines(ctx context.Context) ([]*entity.CartLine, error)

	// ListCartItems returns the cart lines joined with their products in insertion order.
	// This is the read path used to display the cart.
	ListCartItems(ctx context.Context) ([]*entity.CartItem, error)
}
