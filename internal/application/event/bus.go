// Package event provides the publish/subscribe hub that decouples scenes,
// the game state store, and the scene manager. The Bus itself is untyped;
// Topic values layer a compile-time name-to-payload mapping on top.
package event

import "log"

// Handler receives an event payload.
type Handler func(payload any)

type subscription struct {
	fn      Handler
	once    bool
	removed bool
}

// Bus is a synchronous publish/subscribe hub. Handlers for an event run in
// registration order; a panicking handler is logged and does not stop
// fan-out or reach the emitter. Not safe for concurrent use: the game loop
// is single-threaded by construction.
type Bus struct {
	handlers map[string][]*subscription
}

// New creates an empty bus. One instance is created at process start and
// threaded through scene construction; tests build their own.
func New() *Bus {
	return &Bus{handlers: make(map[string][]*subscription)}
}

// Subscribe registers a handler for the named event and returns a function
// that removes it. Unsubscribing twice is a no-op.
func (b *Bus) Subscribe(name string, fn Handler) func() {
	return b.add(name, fn, false)
}

// SubscribeOnce registers a handler that is removed after its first
// invocation.
func (b *Bus) SubscribeOnce(name string, fn Handler) func() {
	return b.add(name, fn, true)
}

func (b *Bus) add(name string, fn Handler, once bool) func() {
	sub := &subscription{fn: fn, once: once}
	b.handlers[name] = append(b.handlers[name], sub)
	return func() {
		if sub.removed {
			return
		}
		sub.removed = true
		b.remove(name, sub)
	}
}

func (b *Bus) remove(name string, sub *subscription) {
	subs := b.handlers[name]
	for i, s := range subs {
		if s == sub {
			b.handlers[name] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Emit synchronously invokes all handlers currently registered for the
// named event. Emitting with no subscribers is a silent no-op.
func (b *Bus) Emit(name string, payload any) {
	subs := b.handlers[name]
	if len(subs) == 0 {
		return
	}

	// Snapshot so handlers can subscribe/unsubscribe during fan-out
	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)

	for _, sub := range snapshot {
		if sub.removed {
			continue
		}
		if sub.once {
			sub.removed = true
			b.remove(name, sub)
		}
		invoke(name, sub.fn, payload)
	}
}

func invoke(name string, fn Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event: handler for %q panicked: %v", name, r)
		}
	}()
	fn(payload)
}

// Clear removes all handlers for the given events, or every handler when
// called with no arguments.
func (b *Bus) Clear(names ...string) {
	if len(names) == 0 {
		b.handlers = make(map[string][]*subscription)
		return
	}
	for _, name := range names {
		delete(b.handlers, name)
	}
}

// HandlerCount returns the number of handlers registered for an event.
func (b *Bus) HandlerCount(name string) int {
	return len(b.handlers[name])
}
