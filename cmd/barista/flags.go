// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding"
	"fmt"

	"github.com/z5labs/barista/coffee"

	"github.com/spf13/pflag"
)

type textPtr[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// enumFlag adapts any coffee enumeration to a [pflag.Value].
type enumFlag[T fmt.Stringer, P textPtr[T]] struct {
	value T
	typ   string
}

func newEnumFlag[T fmt.Stringer, P textPtr[T]](typ string, def T) *enumFlag[T, P] {
	return &enumFlag[T, P]{value: def, typ: typ}
}

func (f *enumFlag[T, P]) String() string { return f.value.String() }
func (f *enumFlag[T, P]) Type() string   { return f.typ }

func (f *enumFlag[T, P]) Set(s string) error {
	return P(&f.value).UnmarshalText([]byte(s))
}

type beanFlag struct {
	value coffee.Bean
}

func (f *beanFlag) String() string { return f.value.String() }
func (f *beanFlag) Type() string   { return "bean" }

func (f *beanFlag) Set(s string) error {
	b, err := coffee.ParseBean(s)
	if err != nil {
		return err
	}
	f.value = b
	return nil
}

var (
	_ pflag.Value = (*enumFlag[coffee.Size, *coffee.Size])(nil)
	_ pflag.Value = (*beanFlag)(nil)
)

func grindFlag(def coffee.Grind) *enumFlag[coffee.Grind, *coffee.Grind] {
	return newEnumFlag[coffee.Grind, *coffee.Grind]("grind", def)
}

func strengthFlag(def coffee.Strength) *enumFlag[coffee.Strength, *coffee.Strength] {
	return newEnumFlag[coffee.Strength, *coffee.Strength]("strength", def)
}

func sizeFlag(def coffee.Size) *enumFlag[coffee.Size, *coffee.Size] {
	return newEnumFlag[coffee.Size, *coffee.Size]("size", def)
}

func milkFlag() *enumFlag[coffee.Milk, *coffee.Milk] {
	return newEnumFlag[coffee.Milk, *coffee.Milk]("milk", coffee.MilkWhole)
}

func methodFlag() *enumFlag[coffee.BrewingMethod, *coffee.BrewingMethod] {
	return newEnumFlag[coffee.BrewingMethod, *coffee.BrewingMethod]("method", coffee.FrenchPress)
}
