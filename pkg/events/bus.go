// Package events implements the typed internal state-change event bus
// (spec.md §4.4 primitive 3, §9 Open Questions: the Groups→Zones
// broadcast-intent plumbing the original source left unfinished). Every
// handler runs synchronously on the caller's goroutine — the proxy has
// already serialized all mutation onto the single reactor task (spec.md
// §5), so the bus needs no queuing or locking of its own; it is simply a
// typed alternative to a direct function call when the publisher does not
// want to know its subscribers.
package events

import "reflect"

// Bus is a synchronous, typed publish/subscribe dispatcher.
type Bus struct {
	subscribers map[reflect.Type][]reflect.Value
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[reflect.Type][]reflect.Value)}
}

// Subscribe registers fn to be called, synchronously, every time an event
// of type T is published.
func Subscribe[T any](b *Bus, fn func(T)) {
	var zero T
	t := reflect.TypeOf(zero)
	b.subscribers[t] = append(b.subscribers[t], reflect.ValueOf(fn))
}

// Publish dispatches event to every subscriber registered for its type, in
// registration order.
func Publish[T any](b *Bus, event T) {
	t := reflect.TypeOf(event)
	for _, fn := range b.subscribers[t] {
		fn.Call([]reflect.Value{reflect.ValueOf(event)})
	}
}
