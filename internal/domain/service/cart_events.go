package service

import "context"

// Cart event actions.
const (
	CartActionAdd    = "add"
	CartActionUpdate = "update"
	CartActionRemove = "remove"
	CartActionClear  = "clear"
)

// CartEvent is the in-process signal fired on every cart mutation so that
// siblings (the cart badge) can refresh their count.
type CartEvent struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

// CartEventBus defines the observer interface for cart-changed notifications.
// Delivery is best effort within the process; nothing is persisted and no
// cross-process fan-out exists.
type CartEventBus interface {
	// Publish notifies all current subscribers of a cart mutation.
	Publish(ctx context.Context, event *CartEvent) error

	// Subscribe registers a listener. The returned cancel func removes it.
	Subscribe() (<-chan CartEvent, func())

	// Close releases all subscribers.
	Close() error
}
