// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package coffee defines the closed set of values a coffee order is made of.
//
// # Enumerations
//
// [Grind], [Strength], [Size], [Milk], [BrewingMethod], [BlendRatio] and
// [Origin] are closed enumerations backed by uint8. Their zero value is
// their first member. Every enumeration provides:
//
//   - a function listing all of its members in order, e.g. [Sizes]
//   - Valid, which reports whether a value was produced by conversion
//     from outside the declared set
//   - String, plus text marshaling so values can be read from config
//
// # Tagged unions
//
// [Bean] and [Order] are sealed interfaces. Consumers handle them with
// [VisitBean] and [VisitOrder], which require a visitor implementing a
// method per variant:
//
//	type price struct{}
//
//	func (price) Instant3In1(coffee.Instant3In1) int     { return 2 }
//	func (price) Espresso(coffee.EspressoOrder) int      { return 3 }
//	func (price) PourOver(coffee.PourOver) int           { return 4 }
//	func (price) Other(coffee.OtherMethod) int           { return 4 }
//
//	cost := coffee.VisitOrder[int](order, price{})
//
// Adding a variant adds a visitor method, which turns every stale
// consumer into a compile error instead of a silently skipped case.
//
// # Rendering
//
// Every value in this package implements [fmt.Stringer]. [Describe] renders
// an [Order].
package coffee
