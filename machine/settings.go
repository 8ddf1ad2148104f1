// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package machine

import (
	"fmt"

	"github.com/z5labs/barista/coffee"
)

// Settings is one addressable state of a coffee machine.
//
// Settings is a value type. Every With method returns a modified
// copy and leaves its receiver untouched, so a Settings value can be
// shared and compared freely.
type Settings struct {
	Grind    coffee.Grind    `config:"grind"`
	Strength coffee.Strength `config:"strength"`
	Size     coffee.Size     `config:"size"`
}

// DefaultSettings returns the baseline Settings: medium grind,
// medium strength and medium size.
func DefaultSettings() Settings {
	return Settings{
		Grind:    coffee.GrindMedium,
		Strength: coffee.StrengthMedium,
		Size:     coffee.SizeMedium,
	}
}

// WithGrind returns a copy of s using the given grind.
func (s Settings) WithGrind(g coffee.Grind) Settings {
	s.Grind = g
	return s
}

// WithStrength returns a copy of s using the given strength.
func (s Settings) WithStrength(st coffee.Strength) Settings {
	s.Strength = st
	return s
}

// WithSize returns a copy of s using the given size.
func (s Settings) WithSize(sz coffee.Size) Settings {
	s.Size = sz
	return s
}

// WithMaxStrength returns a copy of s brewing at the strongest strength.
func (s Settings) WithMaxStrength() Settings {
	return s.WithStrength(coffee.StrengthStrong)
}

// WithMildStrength returns a copy of s brewing at the lightest strength.
func (s Settings) WithMildStrength() Settings {
	return s.WithStrength(coffee.StrengthLight)
}

// WithSmallSize returns a copy of s filling a small cup.
func (s Settings) WithSmallSize() Settings {
	return s.WithSize(coffee.SizeSmall)
}

// WithLargeSize returns a copy of s filling a large cup.
func (s Settings) WithLargeSize() Settings {
	return s.WithSize(coffee.SizeLarge)
}

// WithFineGrind returns a copy of s grinding finely.
func (s Settings) WithFineGrind() Settings {
	return s.WithGrind(coffee.GrindFine)
}

// Apply returns the result of applying each step, in order, to s.
func (s Settings) Apply(steps ...Step) Settings {
	for _, step := range steps {
		s = step(s)
	}
	return s
}

// Valid reports whether every field of s holds a declared value.
func (s Settings) Valid() bool {
	return s.Grind.Valid() && s.Strength.Valid() && s.Size.Valid()
}

// String implements the [fmt.Stringer] interface.
func (s Settings) String() string {
	return fmt.Sprintf("%s grind, %s strength, %s size", s.Grind, s.Strength, s.Size)
}

// Step is a single builder step which derives new Settings from old ones.
// A Step must not depend on anything but its argument.
type Step func(Settings) Settings

// Steps which each replace exactly one field. Steps replacing different
// fields may be applied in any order with the same result.
var (
	MaxStrength  Step = Settings.WithMaxStrength
	MildStrength Step = Settings.WithMildStrength
	SmallSize    Step = Settings.WithSmallSize
	LargeSize    Step = Settings.WithLargeSize
	FineGrind    Step = Settings.WithFineGrind
)

// Grind returns a Step setting the grind to g.
func Grind(g coffee.Grind) Step {
	return func(s Settings) Settings { return s.WithGrind(g) }
}

// Strength returns a Step setting the strength to st.
func Strength(st coffee.Strength) Step {
	return func(s Settings) Settings { return s.WithStrength(st) }
}

// Size returns a Step setting the size to sz.
func Size(sz coffee.Size) Step {
	return func(s Settings) Settings { return s.WithSize(sz) }
}
