// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package coffee

import (
	"encoding"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnums_String(t *testing.T) {
	testCases := []struct {
		name     string
		values   []fmtValid
		expected []string
	}{
		{
			name:     "Grind",
			values:   asFmtValid(Grinds()),
			expected: []string{"Fine", "Medium", "Coarse"},
		},
		{
			name:     "Strength",
			values:   asFmtValid(Strengths()),
			expected: []string{"Light", "Medium", "Strong"},
		},
		{
			name:     "Size",
			values:   asFmtValid(Sizes()),
			expected: []string{"Small", "Medium", "Large"},
		},
		{
			name:     "Milk",
			values:   asFmtValid(Milks()),
			expected: []string{"Whole", "Skim", "Soy", "Almond"},
		},
		{
			name:     "BrewingMethod",
			values:   asFmtValid(BrewingMethods()),
			expected: []string{"FrenchPress", "Aeropress", "ColdBrew"},
		},
		{
			name:     "BlendRatio",
			values:   asFmtValid(BlendRatios()),
			expected: []string{"Arabica50Robusta50", "Arabica40Robusta60", "Arabica60Robusta40"},
		},
		{
			name:     "Origin",
			values:   asFmtValid(Origins()),
			expected: []string{"Arabica", "Robusta"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Len(t, tc.values, len(tc.expected))
			for i, v := range tc.values {
				require.True(t, v.Valid())
				require.Equal(t, tc.expected[i], v.String())
			}
		})
	}
}

func TestEnums_ZeroValue(t *testing.T) {
	require.Equal(t, GrindFine, Grind(0))
	require.Equal(t, StrengthLight, Strength(0))
	require.Equal(t, SizeSmall, Size(0))
	require.Equal(t, MilkWhole, Milk(0))
	require.Equal(t, FrenchPress, BrewingMethod(0))
	require.Equal(t, Arabica50Robusta50, BlendRatio(0))
	require.Equal(t, Arabica, Origin(0))
}

func TestEnums_Undeclared(t *testing.T) {
	t.Run("will not be valid", func(t *testing.T) {
		t.Run("if converted from an out of range integer", func(t *testing.T) {
			require.False(t, Grind(3).Valid())
			require.False(t, Strength(3).Valid())
			require.False(t, Size(3).Valid())
			require.False(t, Milk(4).Valid())
			require.False(t, BrewingMethod(3).Valid())
			require.False(t, BlendRatio(3).Valid())
			require.False(t, Origin(2).Valid())
		})
	})

	t.Run("will render with its type and number", func(t *testing.T) {
		require.Equal(t, "Size(7)", Size(7).String())
		require.Equal(t, "Milk(200)", Milk(200).String())
	})

	t.Run("will fail to marshal", func(t *testing.T) {
		_, err := Size(7).MarshalText()

		var ierr InvalidValueError
		require.ErrorAs(t, err, &ierr)
		require.Equal(t, "Size", ierr.Type)
		require.Equal(t, uint8(7), ierr.Value)
	})
}

func TestMust(t *testing.T) {
	t.Run("will return the value", func(t *testing.T) {
		t.Run("if it is declared", func(t *testing.T) {
			require.Equal(t, SizeLarge, Must(SizeLarge))
		})
	})

	t.Run("will panic with an InvalidValueError", func(t *testing.T) {
		t.Run("if it is not declared", func(t *testing.T) {
			require.PanicsWithError(t, "coffee: invalid Strength value: 5", func() {
				Must(Strength(5))
			})
		})
	})
}

func TestEnums_UnmarshalText(t *testing.T) {
	t.Run("will match names case-insensitively", func(t *testing.T) {
		testCases := []struct {
			text     string
			dst      encoding.TextUnmarshaler
			expected any
		}{
			{text: "coarse", dst: new(Grind), expected: GrindCoarse},
			{text: "STRONG", dst: new(Strength), expected: StrengthStrong},
			{text: " small ", dst: new(Size), expected: SizeSmall},
			{text: "Almond", dst: new(Milk), expected: MilkAlmond},
			{text: "coldbrew", dst: new(BrewingMethod), expected: ColdBrew},
			{text: "arabica60robusta40", dst: new(BlendRatio), expected: Arabica60Robusta40},
			{text: "robusta", dst: new(Origin), expected: Robusta},
		}

		for _, tc := range testCases {
			t.Run(tc.text, func(t *testing.T) {
				err := tc.dst.UnmarshalText([]byte(tc.text))
				require.NoError(t, err)

				// dst is a pointer to one of the enum types
				switch x := tc.dst.(type) {
				case *Grind:
					require.Equal(t, tc.expected, *x)
				case *Strength:
					require.Equal(t, tc.expected, *x)
				case *Size:
					require.Equal(t, tc.expected, *x)
				case *Milk:
					require.Equal(t, tc.expected, *x)
				case *BrewingMethod:
					require.Equal(t, tc.expected, *x)
				case *BlendRatio:
					require.Equal(t, tc.expected, *x)
				case *Origin:
					require.Equal(t, tc.expected, *x)
				default:
					t.Fatalf("unexpected destination type: %T", tc.dst)
				}
			})
		}
	})

	t.Run("will return an UnknownNameError", func(t *testing.T) {
		t.Run("if the name is not declared", func(t *testing.T) {
			size := SizeLarge
			err := size.UnmarshalText([]byte("venti"))

			var uerr UnknownNameError
			require.ErrorAs(t, err, &uerr)
			require.Equal(t, "Size", uerr.Type)
			require.Equal(t, "venti", uerr.Name)
			require.Equal(t, SizeLarge, size)
		})
	})

	t.Run("will accept its own marshaled text", func(t *testing.T) {
		for _, s := range Strengths() {
			b, err := s.MarshalText()
			require.NoError(t, err)

			var got Strength
			require.NoError(t, got.UnmarshalText(b))
			require.Equal(t, s, got)
		}
	})
}

type fmtValid interface {
	String() string
	Valid() bool
}

func asFmtValid[T fmtValid](vs []T) []fmtValid {
	out := make([]fmtValid, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
