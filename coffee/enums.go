// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package coffee

import "fmt"

// Grind is the coarseness the beans are ground to.
type Grind uint8

const (
	GrindFine Grind = iota
	GrindMedium
	GrindCoarse
)

// Grinds returns every Grind in declaration order.
func Grinds() []Grind {
	return []Grind{GrindFine, GrindMedium, GrindCoarse}
}

// Valid reports whether g is one of the declared Grinds.
func (g Grind) Valid() bool {
	return g <= GrindCoarse
}

// String implements the [fmt.Stringer] interface.
func (g Grind) String() string {
	switch g {
	case GrindFine:
		return "Fine"
	case GrindMedium:
		return "Medium"
	case GrindCoarse:
		return "Coarse"
	}
	return fmt.Sprintf("Grind(%d)", uint8(g))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (g Grind) MarshalText() ([]byte, error) {
	return marshalText("Grind", g)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Names are matched case-insensitively.
func (g *Grind) UnmarshalText(b []byte) error {
	return unmarshalText("Grind", Grinds(), g, b)
}

// Strength is how much coffee goes into a single brew.
type Strength uint8

const (
	StrengthLight Strength = iota
	StrengthMedium
	StrengthStrong
)

// Strengths returns every Strength in declaration order.
func Strengths() []Strength {
	return []Strength{StrengthLight, StrengthMedium, StrengthStrong}
}

// Valid reports whether s is one of the declared Strengths.
func (s Strength) Valid() bool {
	return s <= StrengthStrong
}

// String implements the [fmt.Stringer] interface.
func (s Strength) String() string {
	switch s {
	case StrengthLight:
		return "Light"
	case StrengthMedium:
		return "Medium"
	case StrengthStrong:
		return "Strong"
	}
	return fmt.Sprintf("Strength(%d)", uint8(s))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Strength) MarshalText() ([]byte, error) {
	return marshalText("Strength", s)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Names are matched case-insensitively.
func (s *Strength) UnmarshalText(b []byte) error {
	return unmarshalText("Strength", Strengths(), s, b)
}

// Size is the cup size.
type Size uint8

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// Sizes returns every Size in declaration order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// Valid reports whether s is one of the declared Sizes.
func (s Size) Valid() bool {
	return s <= SizeLarge
}

// String implements the [fmt.Stringer] interface.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "Small"
	case SizeMedium:
		return "Medium"
	case SizeLarge:
		return "Large"
	}
	return fmt.Sprintf("Size(%d)", uint8(s))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Size) MarshalText() ([]byte, error) {
	return marshalText("Size", s)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Names are matched case-insensitively.
func (s *Size) UnmarshalText(b []byte) error {
	return unmarshalText("Size", Sizes(), s, b)
}

// Milk is the kind of milk added to an [Espresso].
type Milk uint8

const (
	MilkWhole Milk = iota
	MilkSkim
	MilkSoy
	MilkAlmond
)

// Milks returns every Milk in declaration order.
func Milks() []Milk {
	return []Milk{MilkWhole, MilkSkim, MilkSoy, MilkAlmond}
}

// Valid reports whether m is one of the declared Milks.
func (m Milk) Valid() bool {
	return m <= MilkAlmond
}

// String implements the [fmt.Stringer] interface.
func (m Milk) String() string {
	switch m {
	case MilkWhole:
		return "Whole"
	case MilkSkim:
		return "Skim"
	case MilkSoy:
		return "Soy"
	case MilkAlmond:
		return "Almond"
	}
	return fmt.Sprintf("Milk(%d)", uint8(m))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Milk) MarshalText() ([]byte, error) {
	return marshalText("Milk", m)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Names are matched case-insensitively.
func (m *Milk) UnmarshalText(b []byte) error {
	return unmarshalText("Milk", Milks(), m, b)
}

// BrewingMethod names a preparation method which has no parameters of its own.
type BrewingMethod uint8

const (
	FrenchPress BrewingMethod = iota
	Aeropress
	ColdBrew
)

// BrewingMethods returns every BrewingMethod in declaration order.
func BrewingMethods() []BrewingMethod {
	return []BrewingMethod{FrenchPress, Aeropress, ColdBrew}
}

// Valid reports whether m is one of the declared BrewingMethods.
func (m BrewingMethod) Valid() bool {
	return m <= ColdBrew
}

// String implements the [fmt.Stringer] interface.
func (m BrewingMethod) String() string {
	switch m {
	case FrenchPress:
		return "FrenchPress"
	case Aeropress:
		return "Aeropress"
	case ColdBrew:
		return "ColdBrew"
	}
	return fmt.Sprintf("BrewingMethod(%d)", uint8(m))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m BrewingMethod) MarshalText() ([]byte, error) {
	return marshalText("BrewingMethod", m)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Names are matched case-insensitively.
func (m *BrewingMethod) UnmarshalText(b []byte) error {
	return unmarshalText("BrewingMethod", BrewingMethods(), m, b)
}

// BlendRatio is the Arabica to Robusta ratio of a [Blend].
type BlendRatio uint8

const (
	Arabica50Robusta50 BlendRatio = iota
	Arabica40Robusta60
	Arabica60Robusta40
)

// BlendRatios returns every BlendRatio in declaration order.
func BlendRatios() []BlendRatio {
	return []BlendRatio{Arabica50Robusta50, Arabica40Robusta60, Arabica60Robusta40}
}

// Valid reports whether r is one of the declared BlendRatios.
func (r BlendRatio) Valid() bool {
	return r <= Arabica60Robusta40
}

// String implements the [fmt.Stringer] interface.
func (r BlendRatio) String() string {
	switch r {
	case Arabica50Robusta50:
		return "Arabica50Robusta50"
	case Arabica40Robusta60:
		return "Arabica40Robusta60"
	case Arabica60Robusta40:
		return "Arabica60Robusta40"
	}
	return fmt.Sprintf("BlendRatio(%d)", uint8(r))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (r BlendRatio) MarshalText() ([]byte, error) {
	return marshalText("BlendRatio", r)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Names are matched case-insensitively.
func (r *BlendRatio) UnmarshalText(b []byte) error {
	return unmarshalText("BlendRatio", BlendRatios(), r, b)
}
