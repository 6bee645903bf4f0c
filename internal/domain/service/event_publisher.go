package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderEvent is the message published after a checkout commits
type OrderEvent struct {
	RequestID string                   `json:"request_id,omitempty"` // For distributed tracing
	Type      string                   `json:"type"`
	Order     *entity.OrderPlacedEvent `json:"order"`
}

// OrderEventTypePlaced identifies a newly placed order
const OrderEventTypePlaced = "order.placed"

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
