// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package option provides a value which may or may not be present.
//
// An [Option] is how total functions in this module report that they have
// no answer for an input. Absence is an expected outcome which the caller
// is meant to inspect, not an error and never a panic.
package option

import "fmt"

// Option represents a value of type T which may be absent.
// The zero value is an absent Option.
type Option[T any] struct {
	value T
	set   bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, set: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns an absent Option if p is nil, otherwise an Option
// holding a copy of the referenced value.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Value returns the underlying value and whether or not it is present.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.set
}

// Or returns the underlying value, if present, otherwise def.
func (o Option[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// String implements the [fmt.Stringer] interface.
func (o Option[T]) String() string {
	if !o.set {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the underlying value, if present.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.set {
		return None[U]()
	}
	return Some(f(o.value))
}

// Fold collapses o into a single value by calling none if o
// is absent or some with the underlying value.
func Fold[T, R any](o Option[T], none func() R, some func(T) R) R {
	if !o.set {
		return none()
	}
	return some(o.value)
}
