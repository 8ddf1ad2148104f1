// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package coffee

import (
	"fmt"

	"github.com/z5labs/barista/curry"
	"github.com/z5labs/barista/pkg/option"
)

// Espresso describes a served espresso. Milk is optional.
type Espresso struct {
	Size     Size
	Strength Strength
	Milk     option.Option[Milk]
}

// NewEspresso returns an Espresso with the given attributes.
func NewEspresso(size Size, strength Strength, milk option.Option[Milk]) Espresso {
	return Espresso{
		Size:     size,
		Strength: strength,
		Milk:     milk,
	}
}

// String implements the [fmt.Stringer] interface. The absence of milk
// is always spelled out.
func (e Espresso) String() string {
	return option.Fold(
		e.Milk,
		func() string {
			return fmt.Sprintf("Espresso of %s size and %s strength, no milk", e.Size, e.Strength)
		},
		func(milk Milk) string {
			return fmt.Sprintf("Espresso of %s size, %s strength, and %s milk", e.Size, e.Strength, milk)
		},
	)
}

// Shot is a single espresso shot pulled from a bean.
type Shot struct {
	Bean     Bean
	Strength Strength
	Size     Size
}

// NewShot returns a Shot with the given attributes.
func NewShot(bean Bean, strength Strength, size Size) Shot {
	return Shot{
		Bean:     bean,
		Strength: strength,
		Size:     size,
	}
}

// String implements the [fmt.Stringer] interface.
func (s Shot) String() string {
	return fmt.Sprintf("%s %s shot of %s", s.Size, s.Strength, s.Bean)
}

// MakeShot is the curried form of [NewShot]. Each partial application
// may be stored and reused, e.g.
//
//	strongRobusta := MakeShot(Robusta)(StrengthStrong)
//	small, large := strongRobusta(SizeSmall), strongRobusta(SizeLarge)
var MakeShot = curry.Curry3(NewShot)
