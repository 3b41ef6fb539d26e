// Package core resolves a (target, property name) pair into the property's
// accessor methods via reflection.
package core

import (
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bind/errors"
)

// Property holds the accessor methods resolved for a named property on a
// concrete target instance. The target is evaluated exactly once, at
// resolution time.
type Property struct {
	name   string
	target any
	getter reflect.Value // zero if the property has no getter method
	setter reflect.Value // zero if the property has no setter method
}

// Resolve evaluates target once and resolves name against its runtime type.
// A property is the accessor-method pair: getter `Name() T` and/or setter
// `SetName(v T)`. A name matching neither method nor a struct field resolves
// to a Property with no capabilities; callers validate usability.
func Resolve(target any, name string) (*Property, error) {
	if target == nil {
		return nil, errorc.With(
			errors.ErrNilTarget,
			errorc.String(errors.ErrorFieldPropertyName, name),
		)
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil, errorc.With(
			errors.ErrNilTarget,
			errorc.String(errors.ErrorFieldPropertyName, name),
			errorc.String(errors.ErrorFieldTargetType, rv.Type().String()),
		)
	}

	if !isPropertyName(name) {
		return nil, errorc.With(
			errors.ErrInvalidExpressionShape,
			errorc.String(errors.ErrorFieldPropertyName, name),
			errorc.String(errors.ErrorFieldTargetType, rv.Type().String()),
		)
	}

	p := &Property{name: name, target: target}

	if m := rv.MethodByName(name); m.IsValid() {
		t := m.Type()
		if t.NumIn() != 0 || t.NumOut() != 1 {
			return nil, errorc.With(
				errors.ErrInvalidExpressionShape,
				errorc.String(errors.ErrorFieldPropertyName, name),
				errorc.String(errors.ErrorFieldTargetType, rv.Type().String()),
				errorc.String(errors.ErrorFieldMethod, name),
			)
		}
		p.getter = m
	}

	if m := rv.MethodByName("Set" + name); m.IsValid() {
		t := m.Type()
		if t.NumIn() != 1 || t.NumOut() != 0 {
			return nil, errorc.With(
				errors.ErrInvalidExpressionShape,
				errorc.String(errors.ErrorFieldPropertyName, name),
				errorc.String(errors.ErrorFieldTargetType, rv.Type().String()),
				errorc.String(errors.ErrorFieldMethod, "Set"+name),
			)
		}
		p.setter = m
	}

	if !p.getter.IsValid() && !p.setter.IsValid() {
		// A bare struct field of the same name is field access, not a
		// property access.
		elem := rv
		if elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}
		if elem.Kind() == reflect.Struct {
			if _, ok := elem.Type().FieldByName(name); ok {
				return nil, errorc.With(
					errors.ErrInvalidExpressionShape,
					errorc.String(errors.ErrorFieldPropertyName, name),
					errorc.String(errors.ErrorFieldTargetType, rv.Type().String()),
				)
			}
		}
	}

	return p, nil
}

// isPropertyName reports whether name is a single exported Go identifier.
// Multi-segment paths ("a.b.c") and unexported names are rejected.
func isPropertyName(name string) bool {
	if name == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsUpper(first) {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func (p *Property) Name() string { return p.name }

func (p *Property) Target() any { return p.target }

func (p *Property) CanGet() bool { return p.getter.IsValid() }

func (p *Property) CanSet() bool { return p.setter.IsValid() }

// GetterType returns the getter's result type. Only valid when CanGet.
func (p *Property) GetterType() reflect.Type { return p.getter.Type().Out(0) }

// SetterType returns the setter's parameter type. Only valid when CanSet.
func (p *Property) SetterType() reflect.Type { return p.setter.Type().In(0) }

// Get invokes the getter. Only valid when CanGet.
func (p *Property) Get() reflect.Value { return p.getter.Call(nil)[0] }

// Set invokes the setter. Only valid when CanSet.
func (p *Property) Set(v reflect.Value) { p.setter.Call([]reflect.Value{v}) }
