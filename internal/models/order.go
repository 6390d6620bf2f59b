package models

import "time"

// UnresolvedMenuItemID marks an order line whose requested name had no
// catalog match at resolution time.
const UnresolvedMenuItemID = "unknown"

// OrderStatus represents the possible states of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusApproved  OrderStatus = "Approved"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// allowedTransitions encodes the order status state machine. Delivered and
// Cancelled are terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:  {OrderStatusApproved, OrderStatusCancelled},
	OrderStatusApproved: {OrderStatusDelivered, OrderStatusCancelled},
}

// CanTransition reports whether an order may move from one status to another
func CanTransition(from, to OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status permits no further transitions
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderLine represents a single item in an order. Name is preserved exactly as
// the customer requested it, even when resolution against the catalog failed.
type OrderLine struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// Resolved reports whether the line was matched against the catalog
func (l OrderLine) Resolved() bool {
	return l.MenuItemID != UnresolvedMenuItemID
}

// Order represents a customer order captured from a chat exchange
type Order struct {
	ID        string      `json:"id"`
	Customer  string      `json:"customer"`
	Items     []OrderLine `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// RecomputeTotal returns the sum of price*quantity over the order's lines.
// Total is never edited independently of the lines.
func (o *Order) RecomputeTotal() float64 {
	var total float64
	for _, line := range o.Items {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
