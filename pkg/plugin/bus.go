// Package plugin implements the Noteva plugin host: the event bus, the
// slot registry and the per-plugin settings store. Plugins receive a
// *Host capability object at init time instead of discovering a global.
package plugin

import (
	"log"
	"sync"
)

// Listener receives the arguments passed to Emit.
type Listener func(args ...any)

// Bus is a named-event publish/subscribe registry. Listeners fire
// synchronously in registration order. Events are sticky: a listener
// registered after an event has fired is invoked immediately with the
// most recently emitted arguments, so lifecycle signals like "theme:ready"
// reach plugins regardless of load order.
type Bus struct {
	mu        sync.Mutex
	listeners map[string][]Listener
	fired     map[string][]any
}

func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		fired:     make(map[string][]any),
	}
}

// On registers a listener for event. If the event already fired, the
// listener runs immediately with the recorded arguments.
func (b *Bus) On(event string, fn Listener) {
	b.mu.Lock()
	b.listeners[event] = append(b.listeners[event], fn)
	args, replay := b.fired[event]
	b.mu.Unlock()

	if replay {
		b.dispatch(event, fn, args)
	}
}

// Emit invokes every listener registered for event, in registration order,
// passing args through. A panicking listener is logged and skipped; later
// listeners still run, so one failing plugin cannot block the rest.
func (b *Bus) Emit(event string, args ...any) {
	b.mu.Lock()
	b.fired[event] = args
	handlers := make([]Listener, len(b.listeners[event]))
	copy(handlers, b.listeners[event])
	b.mu.Unlock()

	for _, fn := range handlers {
		b.dispatch(event, fn, args)
	}
}

// HasFired reports whether event has been emitted at least once.
func (b *Bus) HasFired(event string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.fired[event]
	return ok
}

func (b *Bus) dispatch(event string, fn Listener, args []any) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("plugin: listener for %q panicked: %v", event, r)
		}
	}()
	fn(args...)
}
