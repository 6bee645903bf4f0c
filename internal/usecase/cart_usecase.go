package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput carries the shipping details for an order.
// Empty fields fall back to the configured address and the current location.
type CheckoutInput struct {
	Address     string `json:"address"`
	GeoLocation string `json:"geo_location"`
}

// CartUsecase defines the interface for the cart and checkout workflow
type CartUsecase interface {
	// AddToCart adds quantity units of a product. An existing line is incremented and keeps its price.
	AddToCart(ctx context.Context, productID uuid.UUID, quantity int) (*entity.CartLine, error)

	// ListCart returns every line with product name, subtotal and the cart total
	ListCart(ctx context.Context) (*entity.CartView, error)

	// RemoveLine deletes a single cart line
	RemoveLine(ctx context.Context, lineID uuid.UUID) error

	// ClearCart deletes every line. Clearing an empty cart succeeds.
	ClearCart(ctx context.Context) (int64, error)

	// Checkout turns the cart into a pending order and empties the cart in one atomic step
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)
}
