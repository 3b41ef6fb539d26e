// Package bind keeps two object properties synchronized: whenever the
// observable object owning one side announces a change, the current value is
// pushed to the other side, synchronously, on the announcing call's stack.
package bind

import (
	"github.com/go-logr/logr"

	"github.com/ygrebnov/bind/observable"
)

// Binding is a live one-way or two-way synchronization link between two
// properties of the same value type T. It is created by Create and torn down
// by Dispose; between the two it is driven purely by incoming change
// notifications.
//
// Propagation is synchronous and unguarded: a setter that re-raises its
// change notification even for an unchanged value will recurse through a
// two-way binding.
type Binding[T any] struct {
	left, right *Accessor[T]
	forward     observable.Token // left -> right handler; always wired
	backward    observable.Token // right -> left handler; wired iff twoWay
	twoWay      bool
	log         logr.Logger
}

// push copies the current value of from into to. The write completes before
// the triggering notification dispatch returns.
func (b *Binding[T]) push(from, to *Accessor[T], direction string) {
	value, err := from.Get()
	if err != nil {
		// Unreachable after direction validation; kept observable.
		b.log.Error(err, "propagation read failed", "direction", direction)
		return
	}
	b.log.V(2).Info("propagating", "direction", direction, "from", from.Name(), "to", to.Name())
	to.Set(value)
}

// Dispose unsubscribes whichever propagation handlers were wired and releases
// both accessors' subscriptions. Only future notifications are affected; a
// notification already dispatching completes. Calling Dispose again is a
// no-op.
func (b *Binding[T]) Dispose() {
	if b.left == nil {
		return
	}
	// Token values are opaque; which handlers exist is tracked here, so an
	// Observable issuing any token value, zero included, tears down cleanly.
	b.left.cancel(b.forward)
	if b.twoWay {
		b.right.cancel(b.backward)
	}
	b.left.Dispose()
	b.right.Dispose()
	b.log.V(1).Info("binding disposed")
	b.left, b.right = nil, nil
}
