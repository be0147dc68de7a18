// Package store provides an observable value container.
//
// A Writable holds the current value and an ordered list of subscribers.
// Set replaces the value and notifies every subscriber; Subscribe registers
// a callback and invokes it once immediately with the current value.
package store

import (
	"errors"
	"runtime/debug"
	"sync"

	"tiermaker/internal/logging"
)

// ErrNilSubscriber is the panic value for Subscribe(nil)
var ErrNilSubscriber = errors.New("store: nil subscriber")

// Unsubscribe deregisters a subscriber. Calling it more than once is a no-op.
type Unsubscribe func()

// Readable is the read side of a store
type Readable[T any] interface {
	Get() T
	Subscribe(fn func(T)) Unsubscribe
}

type subscriber[T any] struct {
	fn     func(T)
	active bool // guarded by Writable.mu
}

// delivery is a queued value and the subscribers registered when it was set
type delivery[T any] struct {
	value T
	subs  []*subscriber[T]
}

// Writable is an observable value. It is safe for concurrent use.
type Writable[T any] struct {
	mu          sync.Mutex
	value       T
	subscribers []*subscriber[T]
	pending     []delivery[T]
	dispatching bool
}

// New creates a store holding initial
func New[T any](initial T) *Writable[T] {
	return &Writable[T]{value: initial}
}

// Get returns the current value
func (w *Writable[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Set replaces the value and notifies subscribers in registration order.
// A Set issued while subscribers are being notified is queued and delivered
// once the current round finishes, to the subscribers registered at the
// time of the Set.
func (w *Writable[T]) Set(v T) {
	w.TryUpdate(func(T) (T, bool) { return v, true })
}

// Update applies fn to the current value and stores the result as one step.
// fn runs under the store lock and must not call back into w.
func (w *Writable[T]) Update(fn func(T) T) {
	w.TryUpdate(func(v T) (T, bool) { return fn(v), true })
}

// TryUpdate is Update for changes that may be refused: when fn reports
// false the value is kept and nobody is notified.
func (w *Writable[T]) TryUpdate(fn func(T) (T, bool)) bool {
	w.mu.Lock()
	v, ok := fn(w.value)
	if !ok {
		w.mu.Unlock()
		return false
	}
	w.value = v
	subs := make([]*subscriber[T], len(w.subscribers))
	copy(subs, w.subscribers)
	w.pending = append(w.pending, delivery[T]{value: v, subs: subs})
	if w.dispatching {
		w.mu.Unlock()
		return true
	}
	w.dispatching = true
	w.dispatchLocked()
	return true
}

// Subscribe registers fn and calls it immediately with the current value
func (w *Writable[T]) Subscribe(fn func(T)) Unsubscribe {
	if fn == nil {
		panic(ErrNilSubscriber)
	}

	w.mu.Lock()
	sub := &subscriber[T]{fn: fn, active: true}
	w.subscribers = append(w.subscribers, sub)
	current := w.value
	w.mu.Unlock()

	w.call(sub, current)

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if !sub.active {
			return
		}
		sub.active = false
		for i, s := range w.subscribers {
			if s == sub {
				w.subscribers = append(w.subscribers[:i:i], w.subscribers[i+1:]...)
				break
			}
		}
	}
}

func (w *Writable[T]) subscriberCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subscribers)
}

// dispatchLocked drains the pending queue. It is entered with w.mu held and
// returns with it released.
func (w *Writable[T]) dispatchLocked() {
	for len(w.pending) > 0 {
		next := w.pending[0]
		w.pending = w.pending[1:]
		w.mu.Unlock()

		for _, sub := range next.subs {
			w.mu.Lock()
			active := sub.active
			w.mu.Unlock()
			if active {
				w.call(sub, next.value)
			}
		}

		w.mu.Lock()
	}
	w.pending = nil
	w.dispatching = false
	w.mu.Unlock()
}

func (w *Writable[T]) call(sub *subscriber[T], v T) {
	defer func() {
		if r := recover(); r != nil {
			logging.NewLogger("store").Errorf("subscriber panic: %v\nStack: %s", r, debug.Stack())
		}
	}()
	sub.fn(v)
}
