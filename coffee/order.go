// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package coffee

import (
	"errors"
	"fmt"
	"time"
)

// Order is a request for coffee made with one preparation mode. Each
// mode carries only the data relevant to it.
//
// The set of implementations is closed: [Instant3In1], [EspressoOrder],
// [PourOver] and [OtherMethod]. Use [VisitOrder] to consume an Order.
//
//sumtype:decl
type Order interface {
	fmt.Stringer

	isOrder()
}

// Instant3In1 is instant coffee premixed with sugar and creamer.
type Instant3In1 struct{}

// ErrNoBean is the panic value used when an [EspressoOrder] without a
// Bean is described. Like an undeclared enum value it is a programming error.
var ErrNoBean = errors.New("coffee: espresso order has no bean")

// EspressoOrder is an espresso pulled from a specific bean at a given strength.
// Bean must not be nil.
type EspressoOrder struct {
	Bean     Bean
	Strength Strength
}

// Celsius is a water temperature in degrees Celsius.
type Celsius uint8

// PourOver is water at a given temperature poured over grounds for a given time.
type PourOver struct {
	Temperature Celsius
	Time        time.Duration
}

// OtherMethod is any other, parameterless, [BrewingMethod].
type OtherMethod struct {
	Method BrewingMethod
}

func (Instant3In1) isOrder()   {}
func (EspressoOrder) isOrder() {}
func (PourOver) isOrder()      {}
func (OtherMethod) isOrder()   {}

// String implements the [fmt.Stringer] interface.
func (o Instant3In1) String() string { return Describe(o) }

// String implements the [fmt.Stringer] interface.
func (o EspressoOrder) String() string { return Describe(o) }

// String implements the [fmt.Stringer] interface.
func (o PourOver) String() string { return Describe(o) }

// String implements the [fmt.Stringer] interface.
func (o OtherMethod) String() string { return Describe(o) }

// OrderVisitor handles every kind of [Order]. Adding a new kind of Order
// adds a method here, so every visitor must be revisited before the
// module compiles again.
type OrderVisitor[R any] interface {
	Instant3In1(Instant3In1) R
	Espresso(EspressoOrder) R
	PourOver(PourOver) R
	Other(OtherMethod) R
}

// VisitOrder dispatches o to the matching method of v.
func VisitOrder[R any](o Order, v OrderVisitor[R]) R {
	switch x := o.(type) {
	case Instant3In1:
		return v.Instant3In1(x)
	case EspressoOrder:
		return v.Espresso(x)
	case PourOver:
		return v.PourOver(x)
	case OtherMethod:
		return v.Other(x)
	}
	panic(fmt.Sprintf("coffee: unexpected Order implementation: %T", o))
}

type describer struct{}

func (describer) Instant3In1(Instant3In1) string {
	return "Instant 3-in-1 coffee"
}

func (describer) Espresso(o EspressoOrder) string {
	if o.Bean == nil {
		panic(ErrNoBean)
	}
	return fmt.Sprintf("Espresso with %s beans and %s strength", o.Bean, o.Strength)
}

func (describer) PourOver(o PourOver) string {
	return fmt.Sprintf("Pour-over at %d°C for %d seconds", o.Temperature, int64(o.Time/time.Second))
}

func (describer) Other(o OtherMethod) string {
	return fmt.Sprintf("Other method: %s", o.Method)
}

// Describe renders o as human readable text.
func Describe(o Order) string {
	return VisitOrder[string](o, describer{})
}
