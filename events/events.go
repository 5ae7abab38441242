package events

import (
	"sync"

	"github.com/pkg/errors"
)

// EventHandler defines a function type where its input type is the generic type. Returning an error stops the
// publishing of the event and is returned to the publisher.
type EventHandler[T any] func(T) error

// EventEmitter describes a provider which can subscribe EventHandler methods for callback when the event type (generic)
// is published. The zero value is ready to use.
type EventEmitter[T any] struct {
	// subscriptions defines the EventHandler methods which should be invoked when a new event is published to this
	// emitter, keyed by subscription identifier.
	subscriptions map[uint64]EventHandler[T]

	// order lists subscription identifiers in the order they subscribed.
	order []uint64

	// nextId is the identifier given to the next subscription.
	nextId uint64

	// lock guards the subscriptions, allowing subscribers to be added from other goroutines.
	lock sync.Mutex
}

// Subscribe adds an EventHandler to the list of subscribed EventHandler objects for this emitter. When an event is
// published, the callback will be triggered with the event data.
// Returns a function which removes the subscription.
func (e *EventEmitter[T]) Subscribe(callback EventHandler[T]) func() {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.subscriptions == nil {
		e.subscriptions = make(map[uint64]EventHandler[T])
	}
	id := e.nextId
	e.nextId++
	e.subscriptions[id] = callback
	e.order = append(e.order, id)

	return func() {
		e.lock.Lock()
		defer e.lock.Unlock()
		delete(e.subscriptions, id)
	}
}

// Publish emits the provided event by calling every EventHandler subscribed, in subscription order.
// Returns the first error returned by a handler, in which case the remaining handlers are not called.
func (e *EventEmitter[T]) Publish(event T) error {
	// Copy the handlers so they may subscribe or unsubscribe while being called
	e.lock.Lock()
	handlers := make([]EventHandler[T], 0, len(e.subscriptions))
	remaining := e.order[:0]
	for _, id := range e.order {
		if handler, ok := e.subscriptions[id]; ok {
			handlers = append(handlers, handler)
			remaining = append(remaining, id)
		}
	}
	e.order = remaining
	e.lock.Unlock()

	for _, handler := range handlers {
		if err := handler(event); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
