// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package coffee

import (
	"fmt"
	"strings"
)

// Bean is either a single [Origin] or a [Blend] of origins.
//
// The set of implementations is closed. Use [VisitBean] to consume a Bean.
//
//sumtype:decl
type Bean interface {
	fmt.Stringer

	isBean()
}

// Origin is a single-origin bean.
type Origin uint8

const (
	Arabica Origin = iota
	Robusta
)

// Origins returns every Origin in declaration order.
func Origins() []Origin {
	return []Origin{Arabica, Robusta}
}

func (Origin) isBean() {}

// Valid reports whether o is one of the declared Origins.
func (o Origin) Valid() bool {
	return o <= Robusta
}

// String implements the [fmt.Stringer] interface.
func (o Origin) String() string {
	switch o {
	case Arabica:
		return "Arabica"
	case Robusta:
		return "Robusta"
	}
	return fmt.Sprintf("Origin(%d)", uint8(o))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (o Origin) MarshalText() ([]byte, error) {
	return marshalText("Origin", o)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (o *Origin) UnmarshalText(b []byte) error {
	return unmarshalText("Origin", Origins(), o, b)
}

// Blend mixes Arabica and Robusta beans in a fixed ratio.
type Blend struct {
	Ratio BlendRatio
}

func (Blend) isBean() {}

// String implements the [fmt.Stringer] interface.
func (b Blend) String() string {
	return fmt.Sprintf("Blend(%s)", b.Ratio)
}

// Beans returns every Bean: each Origin followed by a Blend of each BlendRatio.
func Beans() []Bean {
	beans := make([]Bean, 0, len(Origins())+len(BlendRatios()))
	for _, o := range Origins() {
		beans = append(beans, o)
	}
	for _, r := range BlendRatios() {
		beans = append(beans, Blend{Ratio: r})
	}
	return beans
}

// BeanVisitor handles every kind of [Bean]. Adding a new kind of Bean
// adds a method here, so every visitor must be revisited before the
// module compiles again.
type BeanVisitor[R any] interface {
	Origin(Origin) R
	Blend(Blend) R
}

// VisitBean dispatches b to the matching method of v.
func VisitBean[R any](b Bean, v BeanVisitor[R]) R {
	switch x := b.(type) {
	case Origin:
		return v.Origin(x)
	case Blend:
		return v.Blend(x)
	}
	panic(fmt.Sprintf("coffee: unexpected Bean implementation: %T", b))
}

// ParseBean parses the name of an Origin ("arabica") or a blend ratio
// ("Arabica60Robusta40" or "Blend(Arabica60Robusta40)").
func ParseBean(s string) (Bean, error) {
	var o Origin
	if err := o.UnmarshalText([]byte(s)); err == nil {
		return o, nil
	}

	name := strings.TrimSpace(s)
	if inner, ok := strings.CutPrefix(name, "Blend("); ok {
		name, _ = strings.CutSuffix(inner, ")")
	}
	var r BlendRatio
	if err := r.UnmarshalText([]byte(name)); err != nil {
		return nil, UnknownNameError{Type: "Bean", Name: s}
	}
	return Blend{Ratio: r}, nil
}
