// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package machine models a coffee machine which is configured through
// immutable [Settings] and brews [Coffee].
package machine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/z5labs/barista/pkg/noop"
	"github.com/z5labs/barista/pkg/option"
	"github.com/z5labs/barista/pkg/slogfield"
	"github.com/z5labs/barista/quantity"
)

var (
	ErrOutOfWater = errors.New("machine: out of water")
	ErrOutOfBeans = errors.New("machine: out of beans")
)

// ShortageError is returned when the machine supply cannot cover a brew.
type ShortageError struct {
	Cause    error
	Settings Settings
	Supply   Supply
}

// Error implements the [builtin.error] interface.
func (e ShortageError) Error() string {
	return fmt.Sprintf("cannot brew %s with %s: %s", e.Settings, e.Supply, e.Cause)
}

// Unwrap returns either [ErrOutOfWater] or [ErrOutOfBeans].
func (e ShortageError) Unwrap() error {
	return e.Cause
}

// Supply is what a machine has on hand to brew with.
type Supply struct {
	Water quantity.Milliliters `config:"water"`
	Beans quantity.Grams       `config:"beans"`
}

// String implements the [fmt.Stringer] interface.
func (s Supply) String() string {
	return fmt.Sprintf("%dml water and %dg beans", s.Water, s.Beans)
}

// Coffee is the output of a single brew.
type Coffee struct {
	WaterML    quantity.Milliliters
	CaffeineMG quantity.Milligrams
}

// String implements the [fmt.Stringer] interface.
func (c Coffee) String() string {
	return fmt.Sprintf("Coffee with %dml water and %dmg caffeine", c.WaterML, c.CaffeineMG)
}

// Option configures a [Machine].
type Option func(*Machine)

// WithSupply tracks the given supply. Without it the machine never
// runs short.
func WithSupply(s Supply) Option {
	return func(m *Machine) {
		m.supply = option.Some(s)
	}
}

// LogHandler configures the [slog.Handler] used by the machine.
// A nil handler keeps the default, which discards every record.
func LogHandler(h slog.Handler) Option {
	return func(m *Machine) {
		if h == nil {
			return
		}
		m.log = slog.New(h)
	}
}

// Machine brews coffee according to its [Settings].
//
// Machine is a value type. No method mutates its receiver and a Machine
// may be shared between goroutines.
type Machine struct {
	log      *slog.Logger
	settings Settings
	supply   option.Option[Supply]
}

// New returns a Machine using the given settings.
func New(settings Settings, opts ...Option) Machine {
	m := Machine{
		log:      slog.New(noop.LogHandler{}),
		settings: settings,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Settings returns the settings the machine brews with.
func (m Machine) Settings() Settings {
	return m.settings
}

// Supply returns the tracked supply, if any.
func (m Machine) Supply() option.Option[Supply] {
	return m.supply
}

// Configure returns a copy of m with steps applied to its settings.
func (m Machine) Configure(steps ...Step) Machine {
	m.settings = m.settings.Apply(steps...)
	return m
}

// Refill returns a copy of m tracking the given supply.
func (m Machine) Refill(s Supply) Machine {
	m.supply = option.Some(s)
	return m
}

// Brew reports the coffee the current settings produce. Brew fails with a
// [ShortageError] only when a tracked supply cannot cover the brew.
func (m Machine) Brew() (Coffee, error) {
	c := Coffee{
		WaterML:    quantity.Volume(m.settings.Size),
		CaffeineMG: quantity.Caffeine(m.settings.Strength),
	}

	supply, ok := m.supply.Value()
	if !ok {
		return c, nil
	}

	err := m.check(supply)
	if err != nil {
		m.log.WarnContext(
			context.Background(),
			"supply cannot cover brew",
			slogfield.Stringer("settings", m.settings),
			slogfield.Stringer("supply", supply),
			slogfield.Error(err),
		)
		return Coffee{}, err
	}
	return c, nil
}

// Dispense brews like [Machine.Brew] and additionally returns a copy of m
// whose supply is reduced by what the brew consumed. On failure the
// returned machine is m itself.
func (m Machine) Dispense() (Coffee, Machine, error) {
	c, err := m.Brew()
	if err != nil {
		return Coffee{}, m, err
	}

	supply, ok := m.supply.Value()
	if !ok {
		return c, m, nil
	}

	supply.Water -= quantity.Volume(m.settings.Size)
	supply.Beans -= quantity.BeanDose(m.settings.Strength)
	m.log.DebugContext(
		context.Background(),
		"dispensed coffee",
		slogfield.Uint32("water_ml", uint32(c.WaterML)),
		slogfield.Uint32("caffeine_mg", uint32(c.CaffeineMG)),
		slogfield.Stringer("remaining", supply),
	)
	return c, m.Refill(supply), nil
}

func (m Machine) check(s Supply) error {
	if s.Water < quantity.Volume(m.settings.Size) {
		return ShortageError{Cause: ErrOutOfWater, Settings: m.settings, Supply: s}
	}
	if s.Beans < quantity.BeanDose(m.settings.Strength) {
		return ShortageError{Cause: ErrOutOfBeans, Settings: m.settings, Supply: s}
	}
	return nil
}
