package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for reading placed orders
type OrderUsecase interface {
	// GetOrder retrieves an order with its frozen lines
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders returns orders newest first. A non-positive limit returns all orders.
	ListOrders(ctx context.Context, limit int) ([]*entity.Order, error)
}
