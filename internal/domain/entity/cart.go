package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one product row in the cart.
// UnitPrice is frozen when the line is first created.
type CartLine struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Subtotal returns quantity times unit price.
func (l *CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartItem is a cart line joined with its product, as shown to the user.
type CartItem struct {
	LineID      uuid.UUID       `json:"line_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartView is the full cart with its computed total.
type CartView struct {
	Items []*CartItem     `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// NewCartView builds a view and computes subtotals and the total.
func NewCartView(items []*CartItem) *CartView {
	total := decimal.Zero
	for _, item := range items {
		item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(item.Subtotal)
	}

	if items == nil {
		items = []*CartItem{}
	}

	return &CartView{Items: items, Total: total}
}

// CartChangeKind describes what happened to the cart.
type CartChangeKind string

const (
	CartChangeItemAdded   CartChangeKind = "item_added"
	CartChangeItemRemoved CartChangeKind = "item_removed"
	CartChangeCleared     CartChangeKind = "cleared"
	CartChangeCheckedOut  CartChangeKind = "checked_out"
)

// CartChange is broadcast to cart stream subscribers after a committed mutation.
type CartChange struct {
	Kind       CartChangeKind `json:"kind"`
	LineID     *uuid.UUID     `json:"line_id,omitempty"`
	OrderID    *uuid.UUID     `json:"order_id,omitempty"`
	Removed    int64          `json:"removed,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
