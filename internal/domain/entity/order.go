package entity

import "time"

// OrderStatus represents the fulfillment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// Order is an immutable record of a completed checkout. Total is the only
// monetary value snapshotted at checkout time; Items is the unit count of the
// cart that produced it. Orders are always created pending and this system
// never transitions the status afterward.
type Order struct {
	ID     string      `json:"id"`
	Date   time.Time   `json:"date"`
	Total  float64     `json:"total"`
	Items  int         `json:"items"`
	Status OrderStatus `json:"status"`
}
