package bind

import (
	"github.com/go-logr/logr"
	"github.com/hashicorp/go-multierror"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bind/errors"
)

// Option configures a Binding at construction time.
type Option[T any] func(*Binding[T])

// OneWay restricts the binding to left-to-right propagation only.
func OneWay[T any]() Option[T] {
	return func(b *Binding[T]) { b.twoWay = false }
}

// WithLogger routes the binding's lifecycle and propagation events to log.
// Without it the binding is silent.
func WithLogger[T any](log logr.Logger) Option[T] {
	return func(b *Binding[T]) { b.log = log }
}

// Create resolves both property references and wires them into a live
// binding. Bindings are two-way unless OneWay is given.
//
// The left side must be readable and the right side writeable; a two-way
// binding additionally requires the right side readable and the left side
// writeable. Immediately after wiring, the left value is pushed to the right
// side once, so both sides agree before any change occurs. No right-to-left
// priming is performed for two-way bindings.
//
// A failed Create leaves no subscriptions behind; the binding either exists
// fully wired or not at all.
func Create[T any](left, right Ref[T], opts ...Option[T]) (*Binding[T], error) {
	b := &Binding[T]{twoWay: true, log: logr.Discard()}
	for _, opt := range opts {
		opt(b)
	}

	var resolveErr error
	leftAcc, err := left.Resolve()
	if err != nil {
		resolveErr = multierror.Append(resolveErr, err)
	}
	rightAcc, err := right.Resolve()
	if err != nil {
		resolveErr = multierror.Append(resolveErr, err)
	}
	if resolveErr != nil {
		return nil, resolveErr
	}

	if !leftAcc.CanGet() || !rightAcc.CanSet() {
		return nil, errorc.With(
			errors.ErrInvalidBindingDirection,
			errorc.String(errors.ErrorFieldDirection, "left to right"),
			errorc.String(errors.ErrorFieldRequirement,
				"left side should be readable and right side should be writeable"),
		)
	}
	if b.twoWay && (!rightAcc.CanGet() || !leftAcc.CanSet()) {
		return nil, errorc.With(
			errors.ErrInvalidBindingDirection,
			errorc.String(errors.ErrorFieldDirection, "right to left"),
			errorc.String(errors.ErrorFieldRequirement,
				"right side should be readable and left side should be writeable"),
		)
	}

	b.left, b.right = leftAcc, rightAcc

	b.forward = leftAcc.onChange(func() { b.push(leftAcc, rightAcc, "left to right") })
	b.push(leftAcc, rightAcc, "left to right") // initial sync

	if b.twoWay {
		b.backward = rightAcc.onChange(func() { b.push(rightAcc, leftAcc, "right to left") })
	}

	b.log.V(1).Info("binding created",
		"left", leftAcc.Name(), "right", rightAcc.Name(), "twoWay", b.twoWay)
	return b, nil
}
