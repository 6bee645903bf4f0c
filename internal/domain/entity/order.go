package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the order lifecycle state.
type OrderStatus string

// OrderStatusPending is the only state produced at checkout.
const OrderStatusPending OrderStatus = "pending"

// Order is an immutable snapshot of a checked-out cart.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	Total       decimal.Decimal `json:"total"`
	Status      OrderStatus     `json:"status"`
	Address     string          `json:"address"`
	GeoLocation string          `json:"geo_location"` // "lat,lon"
	CreatedAt   time.Time       `json:"created_at"`
	Lines       []*OrderLine    `json:"lines"`
}

// OrderLine is a frozen copy of a cart line.
type OrderLine struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal returns quantity times unit price.
func (l *OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LinesTotal sums the subtotals of every order line.
func (o *Order) LinesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Subtotal())
	}

	return total
}

// OrderPlacedEvent is published after a checkout commits.
type OrderPlacedEvent struct {
	OrderID    uuid.UUID       `json:"order_id"`
	Total      decimal.Decimal `json:"total"`
	ItemCount  int             `json:"item_count"`
	Address    string          `json:"address"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewOrderPlacedEvent builds the event for a committed order.
func NewOrderPlacedEvent(order *Order) *OrderPlacedEvent {
	count := 0
	for _, line := range order.Lines {
		count += line.Quantity
	}

	return &OrderPlacedEvent{
		OrderID:    order.ID,
		Total:      order.Total,
		ItemCount:  count,
		Address:    order.Address,
		OccurredAt: order.CreatedAt,
	}
}
