// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package quantity derives physical quantities from coffee values.
//
// Every function is documented as either partial or total.
//
// A partial function is only defined for part of its input type. Calling
// it outside of that part is a programming error and the function panics
// instead of returning. Callers must check the precondition themselves.
//
// A total function is defined for its entire declared domain. When there
// is no meaningful answer for an input it says so with an absent
// [option.Option]. Enum values produced by converting an out of range
// integer, e.g. coffee.Size(9), are not part of any domain and cause a
// panic with a [coffee.InvalidValueError].
package quantity

import (
	"errors"
	"math"

	"github.com/z5labs/barista/coffee"
	"github.com/z5labs/barista/pkg/option"
)

// Milliliters is a volume of water.
type Milliliters uint32

// Milligrams is a mass of caffeine.
type Milligrams uint32

// Grams is a mass of ground coffee.
type Grams uint32

// Volume returns the water needed to fill a cup of the given size.
//
// Volume is total.
func Volume(size coffee.Size) Milliliters {
	switch coffee.Must(size) {
	case coffee.SizeSmall:
		return 30
	case coffee.SizeMedium:
		return 60
	case coffee.SizeLarge:
		return 120
	}
	panic("unreachable")
}

// Caffeine returns the caffeine content of a brew of the given strength.
//
// Caffeine is total.
func Caffeine(strength coffee.Strength) Milligrams {
	switch coffee.Must(strength) {
	case coffee.StrengthLight:
		return 20
	case coffee.StrengthMedium:
		return 30
	case coffee.StrengthStrong:
		return 40
	}
	panic("unreachable")
}

// BeanDose returns the ground coffee consumed by a brew of the given strength.
//
// BeanDose is total.
func BeanDose(strength coffee.Strength) Grams {
	switch coffee.Must(strength) {
	case coffee.StrengthLight:
		return 7
	case coffee.StrengthMedium:
		return 9
	case coffee.StrengthStrong:
		return 11
	}
	panic("unreachable")
}

// ErrQuotientOverflow is the panic value of [CountBeansPartial] when the
// quotient does not fit in an int32.
var ErrQuotientOverflow = errors.New("quantity: integer divide overflow")

// CountBeansPartial counts the beans in a portion, both weights given
// in the same unit.
//
// CountBeansPartial is partial. It panics with a runtime divide by zero
// error for a zero beanWeight, and with [ErrQuotientOverflow] for
// math.MinInt32 / -1 whose quotient does not fit in an int32. Use
// [CountBeans] when either is a possible input.
func CountBeansPartial(portionWeight, beanWeight int32) int32 {
	if overflows(portionWeight, beanWeight) {
		panic(ErrQuotientOverflow)
	}
	return portionWeight / beanWeight
}

// CountBeans counts the beans in a portion, both weights given in the
// same unit.
//
// CountBeans is total: it returns None for a zero beanWeight or when the
// quotient does not fit in an int32, and otherwise agrees with
// [CountBeansPartial].
func CountBeans(portionWeight, beanWeight int32) option.Option[int32] {
	if beanWeight == 0 || overflows(portionWeight, beanWeight) {
		return option.None[int32]()
	}
	return option.Some(portionWeight / beanWeight)
}

func overflows(portionWeight, beanWeight int32) bool {
	return portionWeight == math.MinInt32 && beanWeight == -1
}

// CupColor is the color of the cup a drink is served in.
type CupColor string

const (
	CupBlack CupColor = "black"
	CupRed   CupColor = "red"
	CupBrown CupColor = "brown"
	CupWhite CupColor = "white"
)

// String implements the [fmt.Stringer] interface.
func (c CupColor) String() string {
	return string(c)
}

type cupKey struct {
	size     coffee.Size
	strength coffee.Strength
}

// ChooseCupColor picks the cup for a drink. Strong drinks get a cup by
// size; every other combination is served in white.
//
// ChooseCupColor is total.
func ChooseCupColor(size coffee.Size, strength coffee.Strength) CupColor {
	switch (cupKey{size: coffee.Must(size), strength: coffee.Must(strength)}) {
	case cupKey{coffee.SizeSmall, coffee.StrengthStrong}:
		return CupBlack
	case cupKey{coffee.SizeMedium, coffee.StrengthStrong}:
		return CupRed
	case cupKey{coffee.SizeLarge, coffee.StrengthStrong}:
		return CupBrown
	default:
		return CupWhite
	}
}

// CupColorFor picks the cup for an espresso. Milk has no influence.
//
// CupColorFor is total.
func CupColorFor(e coffee.Espresso) CupColor {
	return ChooseCupColor(e.Size, e.Strength)
}
