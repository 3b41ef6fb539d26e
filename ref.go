package bind

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bind/errors"
	"github.com/ygrebnov/bind/internal/core"
	"github.com/ygrebnov/bind/observable"
)

// Ref identifies a property of value type T on a concrete object instance.
// It is resolved into an Accessor exactly once, at binding-construction time,
// so the referenced instance is fixed for the binding's lifetime.
type Ref[T any] struct {
	resolve func() (*Accessor[T], error)
}

// Resolve turns the reference into a live Accessor. Create calls this for
// both sides; it is exported for out-of-band accessor use.
func (r Ref[T]) Resolve() (*Accessor[T], error) {
	if r.resolve == nil {
		return nil, errorc.With(
			errors.ErrInvalidExpressionShape,
			errorc.String(errors.ErrorFieldPropertyName, ""),
		)
	}
	return r.resolve()
}

// Property references the named property on target, resolved via reflection.
// The property is the accessor-method pair `Name() T` / `SetName(v T)`; either
// accessor may be absent. A readable property requires target to implement
// observable.Observable.
func Property[T any](target any, name string) Ref[T] {
	return Ref[T]{resolve: func() (*Accessor[T], error) {
		p, err := core.Resolve(target, name)
		if err != nil {
			return nil, err
		}

		// Capture the static type of T even when T is an interface.
		valueType := reflect.TypeOf((*T)(nil)).Elem()
		a := &Accessor[T]{name: name}

		if p.CanGet() {
			if got := p.GetterType(); !typeMatches(got, valueType) {
				return nil, errorc.With(
					errors.ErrTypeMismatch,
					errorc.String(errors.ErrorFieldPropertyName, name),
					errorc.String(errors.ErrorFieldValueType, got.String()),
					errorc.String(errors.ErrorFieldWantType, valueType.String()),
				)
			}
			source, ok := target.(observable.Observable)
			if !ok {
				return nil, errorc.With(
					errors.ErrMissingNotificationCapability,
					errorc.String(errors.ErrorFieldPropertyName, name),
					errorc.String(errors.ErrorFieldTargetType, reflect.TypeOf(target).String()),
				)
			}
			a.get = func() T { return p.Get().Interface().(T) }
			a.source = source
		}

		if p.CanSet() {
			param := p.SetterType()
			if !typeMatches(valueType, param) {
				return nil, errorc.With(
					errors.ErrTypeMismatch,
					errorc.String(errors.ErrorFieldPropertyName, name),
					errorc.String(errors.ErrorFieldValueType, param.String()),
					errorc.String(errors.ErrorFieldWantType, valueType.String()),
				)
			}
			a.set = func(v T) {
				rv := reflect.ValueOf(v)
				if !rv.IsValid() {
					// v is a nil interface value.
					rv = reflect.Zero(param)
				}
				p.Set(rv)
			}
		}

		return a, nil
	}}
}

// Descriptor references a property through an explicit, statically-typed
// accessor descriptor: get/set closures plus the notification source the
// property's changes are announced on. Either closure may be nil; a non-nil
// get requires a non-nil source.
func Descriptor[T any](source observable.Observable, name string, get func() T, set func(T)) Ref[T] {
	return Ref[T]{resolve: func() (*Accessor[T], error) {
		if name == "" {
			return nil, errorc.With(
				errors.ErrInvalidExpressionShape,
				errorc.String(errors.ErrorFieldPropertyName, name),
			)
		}
		if get != nil && source == nil {
			return nil, errorc.With(
				errors.ErrMissingNotificationCapability,
				errorc.String(errors.ErrorFieldPropertyName, name),
			)
		}
		return &Accessor[T]{name: name, get: get, set: set, source: source}, nil
	}}
}

// typeMatches reports whether a value of type got may be asserted to want:
// exact match, or interface satisfaction when want is an interface. Plain
// assignability is not enough — a defined type assignable to an unnamed want
// would still fail the interface assertion in the getter closure.
func typeMatches(got, want reflect.Type) bool {
	if got == want {
		return true
	}
	return want.Kind() == reflect.Interface && got.Implements(want)
}
