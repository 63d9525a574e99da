// Package hook dispatches deployment lifecycle events to handlers.
//
// A deploy tool calls `execrole hook <event>` after a lifecycle step; the
// handlers registered for that event run in registration order.
package hook

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/majorcontext/execrole/internal/log"
)

// Event names a lifecycle point.
type Event string

const (
	// AfterDeploy fires once the stack update has finished.
	AfterDeploy Event = "after:deploy"
	// AfterUpdateStack is the long form of AfterDeploy used by deploy
	// frameworks that name every lifecycle step.
	AfterUpdateStack Event = "after:aws:deploy:deploy:updateStack"
)

var aliases = map[Event]Event{
	AfterUpdateStack: AfterDeploy,
}

// Canonical resolves aliases to the event they stand for.
func Canonical(e Event) Event {
	if c, ok := aliases[e]; ok {
		return c
	}
	return e
}

// Handler reacts to an event.
type Handler func(ctx context.Context) error

// Registry maps events to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[Event][]namedHandler
}

type namedHandler struct {
	name string
	fn   Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Event][]namedHandler)}
}

// On registers fn under name for event (or the event an alias stands for).
func (r *Registry) On(event Event, name string, fn Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := Canonical(event)
	r.handlers[e] = append(r.handlers[e], namedHandler{name: name, fn: fn})
}

// Fire runs the handlers for event in order and stops at the first error.
// An event with no handlers is a no-op.
func (r *Registry) Fire(ctx context.Context, event Event) error {
	e := Canonical(event)

	r.mu.RLock()
	handlers := append([]namedHandler(nil), r.handlers[e]...)
	r.mu.RUnlock()

	if len(handlers) == 0 {
		log.Debug("no hook handlers", "event", string(event))
		return nil
	}

	for _, h := range handlers {
		log.Debug("running hook", "event", string(e), "handler", h.name)
		if err := h.fn(ctx); err != nil {
			return fmt.Errorf("hook %s (%s): %w", e, h.name, err)
		}
	}
	return nil
}

// Events returns the events with at least one handler, sorted.
func (r *Registry) Events() []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events := make([]Event, 0, len(r.handlers))
	for e := range r.handlers {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })
	return events
}
