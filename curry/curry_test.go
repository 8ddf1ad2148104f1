// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package curry

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurry(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		testCases := []struct {
			name string
			fn   any
		}{
			{name: "if the value is nil", fn: nil},
			{name: "if the value is not a func", fn: 42},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := Curry(tc.fn)

				var nerr NotFuncError
				require.ErrorAs(t, err, &nerr)
				require.NotEmpty(t, nerr.Error())
			})
		}
	})

	t.Run("will return an UnsupportedSignatureError", func(t *testing.T) {
		var nilFunc func(int) int

		testCases := []struct {
			name string
			fn   any
		}{
			{name: "if the func is nil", fn: nilFunc},
			{name: "if the func is variadic", fn: func(xs ...int) int { return len(xs) }},
			{name: "if the func has no parameters", fn: func() int { return 1 }},
			{name: "if the func has no results", fn: func(int) {}},
			{name: "if the func has more than one result", fn: func(s string) (int, error) { return len(s), nil }},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := Curry(tc.fn)

				var serr UnsupportedSignatureError
				require.ErrorAs(t, err, &serr)
				require.NotEmpty(t, serr.Reason)
				require.NotEmpty(t, serr.Error())
			})
		}
	})

	t.Run("will return a chain of single argument funcs", func(t *testing.T) {
		t.Run("if the func has a single parameter", func(t *testing.T) {
			f, err := Curry(strings.ToUpper)
			require.NoError(t, err)

			upper, ok := f.(func(string) string)
			require.True(t, ok)
			require.Equal(t, "ABC", upper("abc"))
		})

		t.Run("if the func has five parameters", func(t *testing.T) {
			join := func(a, b, c, d, e string) string {
				return a + b + c + d + e
			}

			f, err := Curry(join)
			require.NoError(t, err)

			chain, ok := f.(func(string) func(string) func(string) func(string) func(string) string)
			require.True(t, ok)
			require.Equal(t, "abcde", chain("a")("b")("c")("d")("e"))
		})

		t.Run("if the parameters have different types", func(t *testing.T) {
			format := func(n int, s string, b bool) string {
				return fmt.Sprintf("%d-%s-%t", n, s, b)
			}

			f, err := Curry(format)
			require.NoError(t, err)

			require.Equal(
				t,
				reflect.TypeOf(func(int) func(string) func(bool) string { return nil }),
				reflect.TypeOf(f),
			)
			require.Equal(t, "1-a-true", f.(func(int) func(string) func(bool) string)(1)("a")(true))
		})

		t.Run("if a parameter is an interface", func(t *testing.T) {
			describe := func(s fmt.Stringer, n int) string {
				if s == nil {
					return fmt.Sprintf("nil:%d", n)
				}
				return fmt.Sprintf("%s:%d", s, n)
			}

			chain := Curry2(describe)
			require.Equal(t, "nil:1", chain(nil)(1))
		})
	})
}

func TestMustCurry(t *testing.T) {
	t.Run("will panic", func(t *testing.T) {
		t.Run("if the func can not be curried", func(t *testing.T) {
			require.Panics(t, func() {
				MustCurry("not a func")
			})
		})
	})
}

func TestCurry2(t *testing.T) {
	sub := func(a, b int) int { return a - b }

	chain := Curry2(sub)
	for a := -3; a <= 3; a++ {
		for b := -3; b <= 3; b++ {
			require.Equal(t, sub(a, b), chain(a)(b))
		}
	}
}

func TestCurry3(t *testing.T) {
	t.Run("will equal the direct call", func(t *testing.T) {
		t.Run("for every combination of arguments", func(t *testing.T) {
			f := func(a int, b string, c bool) string {
				return fmt.Sprint(a, b, c)
			}
			chain := Curry3(f)

			for _, a := range []int{0, 1, 2} {
				for _, b := range []string{"x", "y"} {
					for _, c := range []bool{true, false} {
						require.Equal(t, f(a, b, c), chain(a)(b)(c))
					}
				}
			}
		})
	})

	t.Run("will not share captured arguments", func(t *testing.T) {
		t.Run("if a partial application is reused", func(t *testing.T) {
			f := func(a, b, c string) []string {
				return []string{a, b, c}
			}

			first := Curry3(f)("a")
			withB := first("b")
			withC := first("c")

			require.Equal(t, []string{"a", "b", "1"}, withB("1"))
			require.Equal(t, []string{"a", "c", "2"}, withC("2"))
			require.Equal(t, []string{"a", "b", "3"}, withB("3"))
			require.Equal(t, withB("4"), withB("4"))
		})
	})

	t.Run("will only call the func", func(t *testing.T) {
		t.Run("once the last argument is supplied", func(t *testing.T) {
			calls := 0
			f := func(a, b, c int) int {
				calls++
				return a + b + c
			}

			partial := Curry3(f)(1)(2)
			require.Zero(t, calls)

			require.Equal(t, 6, partial(3))
			require.Equal(t, 1, calls)
		})
	})
}

func TestCurry4(t *testing.T) {
	f := func(a, b, c, d int) int {
		return a*1000 + b*100 + c*10 + d
	}

	require.Equal(t, 1234, Curry4(f)(1)(2)(3)(4))
}
