package bind

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bind/errors"
	"github.com/ygrebnov/bind/observable"
)

// Accessor is the resolved get/set/notify capability bundle for one property
// reference. Instances are produced by Ref.Resolve.
type Accessor[T any] struct {
	name   string
	get    func() T
	set    func(T)
	source observable.Observable // nil when the property has no getter
	tokens []observable.Token
}

// Name returns the referenced property's declared name.
func (a *Accessor[T]) Name() string { return a.name }

// CanGet reports whether the property has a readable accessor.
func (a *Accessor[T]) CanGet() bool { return a.get != nil }

// CanSet reports whether the property has a writeable accessor.
func (a *Accessor[T]) CanSet() bool { return a.set != nil }

// Get returns the property's current value, or ErrNoGetter if the property
// has no readable accessor.
func (a *Accessor[T]) Get() (T, error) {
	if a.get == nil {
		var zero T
		return zero, errorc.With(
			errors.ErrNoGetter,
			errorc.String(errors.ErrorFieldPropertyName, a.name),
		)
	}
	return a.get(), nil
}

// Set writes value through the property's setter. Without a setter it is a
// silent no-op: one side of a one-way binding legitimately has no setter.
func (a *Accessor[T]) Set(value T) {
	if a.set != nil {
		a.set(value)
	}
}

// onChange registers fn to run each time the underlying object reports that
// this specific property changed. The returned token cancels via cancel.
func (a *Accessor[T]) onChange(fn func()) observable.Token {
	token := a.source.Subscribe(a.name, fn)
	a.tokens = append(a.tokens, token)
	return token
}

// cancel removes a single change subscription made through onChange.
func (a *Accessor[T]) cancel(token observable.Token) {
	if a.source == nil {
		return
	}
	a.source.Unsubscribe(token)
	for i, t := range a.tokens {
		if t == token {
			a.tokens = append(a.tokens[:i:i], a.tokens[i+1:]...)
			return
		}
	}
}

// Dispose removes every change subscription this accessor registered on its
// notification source. Idempotent; safe when no subscription was ever made.
func (a *Accessor[T]) Dispose() {
	if a.source == nil {
		return
	}
	for _, token := range a.tokens {
		a.source.Unsubscribe(token)
	}
	a.tokens = nil
}
