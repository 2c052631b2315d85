// Package pubsub contains the in-process cart event bus: best-effort
// fan-out to live subscribers, nothing persisted, no cross-process delivery.
package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"posterstore/internal/domain/service"

	"go.uber.org/fx"
)

const subscriberBuffer = 8

// cartEventBus implements service.CartEventBus with channel fan-out.
type cartEventBus struct {
	logger *slog.Logger

	mu          sync.Mutex
	closed      bool
	subscribers map[int]chan service.CartEvent
	nextID      int
}

// BusParams holds dependencies for the CartEventBus, injected by Fx
type BusParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

// NewCartEventBus creates the in-process cart event bus and ties its
// shutdown to the Fx lifecycle.
func NewCartEventBus(params BusParams) service.CartEventBus {
	bus := NewBus(params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bus.Close()
		},
	})

	return bus
}

// NewBus creates a cart event bus without lifecycle wiring. The caller owns
// Close.
func NewBus(logger *slog.Logger) service.CartEventBus {
	return &cartEventBus{
		logger:      logger,
		subscribers: make(map[int]chan service.CartEvent),
	}
}

// Publish notifies all current subscribers. Slow subscribers have the event
// dropped rather than blocking the mutating caller.
func (b *cartEventBus) Publish(ctx context.Context, event *service.CartEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}

	for id, ch := range b.subscribers {
		select {
		case ch <- *event:
		default:
			b.logger.Debug("cart event dropped for slow subscriber",
				slog.Int("subscriber", id),
				slog.String("action", event.Action),
			)
		}
	}

	return nil
}

// Subscribe registers a listener and returns its channel plus a cancel func.
func (b *cartEventBus) Subscribe() (<-chan service.CartEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan service.CartEvent, subscriberBuffer)
	if b.closed {
		close(ch)

		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if sub, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Close releases all subscribers.
func (b *cartEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}

	return nil
}
