package plugin

import (
	"context"
	"io"
	"sync"
)

// Renderer writes an HTML fragment for a slot into w.
type Renderer func(w io.Writer) error

// SlotRegistry maps slot names to renderers. A host template declares an
// injection point by name; a plugin claims it with Register. Readiness is
// a one-shot notification: consumers wait on WaitReady instead of polling
// for the host to appear.
type SlotRegistry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	ready     chan struct{}
	readyOnce sync.Once
}

func NewSlotRegistry() *SlotRegistry {
	return &SlotRegistry{
		renderers: make(map[string]Renderer),
		ready:     make(chan struct{}),
	}
}

// Register claims a slot. Registering the same slot again replaces the
// previous renderer.
func (r *SlotRegistry) Register(slot string, fn Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[slot] = fn
}

// Render invokes the renderer registered for slot, writing into w. An
// unclaimed slot renders nothing and is not an error: a missing plugin
// degrades to an absent UI element.
func (r *SlotRegistry) Render(slot string, w io.Writer) error {
	r.mu.RLock()
	fn, ok := r.renderers[slot]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	return fn(w)
}

// Claimed reports whether a renderer is registered for slot.
func (r *SlotRegistry) Claimed(slot string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.renderers[slot]
	return ok
}

// Ready marks the registry ready. Safe to call more than once.
func (r *SlotRegistry) Ready() {
	r.readyOnce.Do(func() { close(r.ready) })
}

// WaitReady blocks until Ready has been called or ctx is done.
func (r *SlotRegistry) WaitReady(ctx context.Context) error {
	select {
	case <-r.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
