package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// OrderEventUsecase defines the interface for processing published order events
type OrderEventUsecase interface {
	// HandleOrderEvent sends the customer notification for an order event
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error
}
