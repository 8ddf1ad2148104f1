// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package coffee

import (
	"fmt"
	"testing"
	"time"

	"github.com/z5labs/barista/pkg/option"

	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	testCases := []struct {
		name     string
		order    Order
		expected string
	}{
		{
			name:     "instant",
			order:    Instant3In1{},
			expected: "Instant 3-in-1 coffee",
		},
		{
			name: "espresso with a blend",
			order: EspressoOrder{
				Bean:     Blend{Ratio: Arabica50Robusta50},
				Strength: StrengthStrong,
			},
			expected: "Espresso with Blend(Arabica50Robusta50) beans and Strong strength",
		},
		{
			name: "espresso with a single origin",
			order: EspressoOrder{
				Bean:     Robusta,
				Strength: StrengthLight,
			},
			expected: "Espresso with Robusta beans and Light strength",
		},
		{
			name: "pour-over",
			order: PourOver{
				Temperature: 92,
				Time:        3*time.Minute + 30*time.Second,
			},
			expected: "Pour-over at 92°C for 210 seconds",
		},
		{
			name:     "other method",
			order:    OtherMethod{Method: Aeropress},
			expected: "Other method: Aeropress",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Describe(tc.order))
			require.Equal(t, tc.expected, tc.order.String())
			require.Equal(t, tc.expected, fmt.Sprint(tc.order))
		})
	}

	t.Run("will panic with ErrNoBean", func(t *testing.T) {
		t.Run("if an espresso order has a nil Bean", func(t *testing.T) {
			o := EspressoOrder{Strength: StrengthStrong}

			require.PanicsWithError(t, ErrNoBean.Error(), func() {
				Describe(o)
			})
			require.PanicsWithError(t, ErrNoBean.Error(), func() {
				_ = o.String()
			})
		})
	})
}

func TestDescribe_Distinct(t *testing.T) {
	t.Run("will render every order distinctly", func(t *testing.T) {
		orders := []Order{Instant3In1{}}
		for _, bean := range Beans() {
			for _, strength := range Strengths() {
				orders = append(orders, EspressoOrder{Bean: bean, Strength: strength})
			}
		}
		orders = append(orders,
			PourOver{Temperature: 90, Time: 2 * time.Minute},
			PourOver{Temperature: 94, Time: 2 * time.Minute},
			PourOver{Temperature: 94, Time: 4 * time.Minute},
		)
		for _, method := range BrewingMethods() {
			orders = append(orders, OtherMethod{Method: method})
		}

		seen := make(map[string]Order, len(orders))
		for _, o := range orders {
			s := Describe(o)
			require.NotEmpty(t, s)

			prev, dup := seen[s]
			require.False(t, dup, "%#v and %#v both render as %q", prev, o, s)
			seen[s] = o
		}
	})
}

type orderKind struct{}

func (orderKind) Instant3In1(Instant3In1) string { return "instant" }
func (orderKind) Espresso(EspressoOrder) string  { return "espresso" }
func (orderKind) PourOver(PourOver) string       { return "pour-over" }
func (orderKind) Other(OtherMethod) string       { return "other" }

func TestVisitOrder(t *testing.T) {
	testCases := []struct {
		order    Order
		expected string
	}{
		{order: Instant3In1{}, expected: "instant"},
		{order: EspressoOrder{Bean: Arabica}, expected: "espresso"},
		{order: PourOver{}, expected: "pour-over"},
		{order: OtherMethod{Method: ColdBrew}, expected: "other"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, VisitOrder[string](tc.order, orderKind{}))
		})
	}

	t.Run("will panic", func(t *testing.T) {
		t.Run("if the order is nil", func(t *testing.T) {
			require.Panics(t, func() {
				VisitOrder[string](nil, orderKind{})
			})
		})
	})
}

func TestOrder_Equality(t *testing.T) {
	var a, b Order = EspressoOrder{Bean: Blend{Ratio: Arabica40Robusta60}, Strength: StrengthMedium},
		EspressoOrder{Bean: Blend{Ratio: Arabica40Robusta60}, Strength: StrengthMedium}
	require.True(t, a == b)

	var c Order = EspressoOrder{Bean: Blend{Ratio: Arabica60Robusta40}, Strength: StrengthMedium}
	require.False(t, a == c)
}

func TestEspresso_String(t *testing.T) {
	t.Run("will name the milk", func(t *testing.T) {
		t.Run("if milk is present", func(t *testing.T) {
			e := NewEspresso(SizeMedium, StrengthMedium, option.Some(MilkWhole))
			require.Equal(t, "Espresso of Medium size, Medium strength, and Whole milk", e.String())
		})
	})

	t.Run("will spell out no milk", func(t *testing.T) {
		t.Run("if milk is absent", func(t *testing.T) {
			e := NewEspresso(SizeSmall, StrengthStrong, option.None[Milk]())
			require.Equal(t, "Espresso of Small size and Strong strength, no milk", e.String())
		})
	})

	t.Run("will render every combination distinctly", func(t *testing.T) {
		milks := []option.Option[Milk]{option.None[Milk]()}
		for _, m := range Milks() {
			milks = append(milks, option.Some(m))
		}

		seen := make(map[string]struct{})
		for _, size := range Sizes() {
			for _, strength := range Strengths() {
				for _, milk := range milks {
					s := NewEspresso(size, strength, milk).String()
					require.NotEmpty(t, s)
					require.NotContains(t, seen, s)
					seen[s] = struct{}{}
				}
			}
		}
		require.Len(t, seen, len(Sizes())*len(Strengths())*len(milks))
	})
}
