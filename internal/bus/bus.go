// Package bus decouples the session owner from its observers: the X loop
// publishes snapshots without knowing who renders or serves them.
package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var _ctx = context.Background()

// SetContext sets the context handlers receive on Publish.
func SetContext(ctx context.Context) {
	_ctx = ctx
}

type handler func(ctx context.Context, event any)

var handlers = make(map[string][]handler)

func topic[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// Subscribe registers fn for every published event of type T. Register
// handlers during startup; Subscribe is not safe to race with Publish.
func Subscribe[T any](name string, fn func(ctx context.Context, event T) error) {
	key := topic[T]()
	handlers[key] = append(handlers[key], func(ctx context.Context, event any) {
		if err := fn(ctx, event.(T)); err != nil {
			slog.Error("Failed to handle event", "package", "bus", "name", name, "error", err)
		}
	})
}

// Publish delivers event to every subscriber of its type.
func Publish[T any](event T) {
	for _, fn := range handlers[fmt.Sprintf("%T", event)] {
		fn(_ctx, event)
	}
}

// Hub bridges published events to channel subscribers.
type Hub[T any] struct {
	mu   sync.Mutex
	next int
	subs map[int]chan T
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{subs: make(map[int]chan T)}
}

// Register feeds every published event of T into the hub.
func (h *Hub[T]) Register() *Hub[T] {
	Subscribe("bus.Hub", h.Broadcast)
	return h
}

// Broadcast blocks on each subscriber channel until it accepts the event or
// ctx ends.
func (h *Hub[T]) Broadcast(ctx context.Context, event T) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.subs {
		select {
		case <-ctx.Done():
		case c <- event:
		}
	}

	return nil
}

// Subscribe returns an unbuffered event channel and a function that removes
// it from the hub.
func (h *Hub[T]) Subscribe(ctx context.Context) (<-chan T, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	c := make(chan T)
	h.subs[id] = c

	return c, func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}
