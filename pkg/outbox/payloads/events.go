package payloads

import (
	"time"

	"github.com/emberwick/storefront-api/pkg/types"
)

// EventOrderConfirmed is emitted once a shopper confirms checkout.
const EventOrderConfirmed = "order.confirmed"

// OrderConfirmedEvent carries everything the confirmation e-mail needs.
type OrderConfirmedEvent struct {
	OrderNumber string           `json:"order_number"`
	SessionID   string           `json:"session_id"`
	Customer    OrderCustomer    `json:"customer"`
	Lines       []OrderEventLine `json:"lines"`
	ItemCount   int              `json:"item_count"`
	Subtotal    types.Money      `json:"subtotal"`
	Shipping    types.Money      `json:"shipping"`
	Total       types.Money      `json:"total"`
	ConfirmedAt time.Time        `json:"confirmed_at"`
}

// OrderCustomer is the delivery contact attached to an order.
type OrderCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// OrderEventLine is one purchased product snapshot.
type OrderEventLine struct {
	ProductID string      `json:"product_id"`
	Name      string      `json:"name"`
	UnitPrice types.Money `json:"unit_price"`
	Quantity  int         `json:"quantity"`
	LineTotal types.Money `json:"line_total"`
}
