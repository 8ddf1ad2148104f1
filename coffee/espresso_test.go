// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package coffee

import (
	"testing"

	"github.com/z5labs/barista/curry"
	"github.com/z5labs/barista/pkg/option"

	"github.com/stretchr/testify/require"
)

func TestMakeShot(t *testing.T) {
	t.Run("will equal NewShot", func(t *testing.T) {
		t.Run("for every combination of bean, strength and size", func(t *testing.T) {
			for _, bean := range Beans() {
				for _, strength := range Strengths() {
					for _, size := range Sizes() {
						require.Equal(t, NewShot(bean, strength, size), MakeShot(bean)(strength)(size))
					}
				}
			}
		})
	})

	t.Run("will be reusable", func(t *testing.T) {
		t.Run("if a partial application is stored", func(t *testing.T) {
			makeRobusta := MakeShot(Robusta)
			makeStrongRobusta := makeRobusta(StrengthStrong)

			small := makeStrongRobusta(SizeSmall)
			medium := makeStrongRobusta(SizeMedium)
			large := makeStrongRobusta(SizeLarge)

			require.Equal(t, Shot{Bean: Robusta, Strength: StrengthStrong, Size: SizeSmall}, small)
			require.Equal(t, Shot{Bean: Robusta, Strength: StrengthStrong, Size: SizeMedium}, medium)
			require.Equal(t, Shot{Bean: Robusta, Strength: StrengthStrong, Size: SizeLarge}, large)

			require.Equal(t, makeRobusta(StrengthLight)(SizeLarge), makeRobusta(StrengthLight)(SizeLarge))
			require.Equal(t, small, makeStrongRobusta(SizeSmall))
		})
	})
}

func TestNewEspresso_Curried(t *testing.T) {
	makeEspresso := curry.Curry3(NewEspresso)
	makeStrong := func(size Size) Espresso {
		return makeEspresso(size)(StrengthStrong)(option.None[Milk]())
	}

	for _, size := range Sizes() {
		e := makeStrong(size)
		require.Equal(t, NewEspresso(size, StrengthStrong, option.None[Milk]()), e)
		require.Equal(t, StrengthStrong, e.Strength)
		require.Equal(t, size, e.Size)
	}
}

func TestShot_String(t *testing.T) {
	s := NewShot(Blend{Ratio: Arabica60Robusta40}, StrengthLight, SizeLarge)
	require.Equal(t, "Large Light shot of Blend(Arabica60Robusta40)", s.String())
}
