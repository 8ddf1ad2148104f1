// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package curry reshapes functions of any fixed arity into chains of
// single argument functions.
//
// Given a function of type func(A1, A2, ..., AN) R, [Curry] returns a value
// of type func(A1) func(A2) ... func(AN) R. Supplying A1 yields a function
// awaiting A2 and so on, until supplying AN calls the original function.
//
// Every intermediate function is an ordinary Go func value which can be
// stored and applied any number of times. Arguments captured by one
// application are never visible to, or modified by, another.
//
// Go has no variadic type parameters, so the chain type is assembled with
// reflection. [Curry2], [Curry3] and [Curry4] give the result a static type
// for the common arities; they share the one mechanism behind [Curry].
package curry

import (
	"fmt"
	"reflect"
)

// NotFuncError is returned when the value passed to [Curry] is not a func.
type NotFuncError struct {
	Type reflect.Type
}

// Error implements the [builtin.error] interface.
func (e NotFuncError) Error() string {
	return fmt.Sprintf("curry: expected a func but got: %v", e.Type)
}

// UnsupportedSignatureError is returned when the func passed to [Curry]
// can not be curried. Only non-variadic funcs with at least one parameter
// and exactly one result are supported.
type UnsupportedSignatureError struct {
	Type   reflect.Type
	Reason string
}

// Error implements the [builtin.error] interface.
func (e UnsupportedSignatureError) Error() string {
	return fmt.Sprintf("curry: can not curry %v: %s", e.Type, e.Reason)
}

// Curry returns the curried form of fn. The returned value is a func
// and may be type asserted to its chain type, e.g.
//
//	f, err := curry.Curry(func(a int, b string, c bool) float64 { ... })
//	chain := f.(func(int) func(string) func(bool) float64)
//
// fn is expected to be pure. Curry never calls fn itself; it is called
// once, when the last argument of a chain is supplied.
func Curry(fn any) (any, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, NotFuncError{Type: reflect.TypeOf(fn)}
	}
	if v.IsNil() {
		return nil, UnsupportedSignatureError{Type: v.Type(), Reason: "func is nil"}
	}

	t := v.Type()
	switch {
	case t.IsVariadic():
		return nil, UnsupportedSignatureError{Type: t, Reason: "func is variadic"}
	case t.NumIn() == 0:
		return nil, UnsupportedSignatureError{Type: t, Reason: "func has no parameters"}
	case t.NumOut() != 1:
		return nil, UnsupportedSignatureError{Type: t, Reason: "func must have exactly one result"}
	}
	return chain(v, nil).Interface(), nil
}

// MustCurry is like [Curry] but panics if fn can not be curried.
func MustCurry(fn any) any {
	f, err := Curry(fn)
	if err != nil {
		panic(err)
	}
	return f
}

// chain returns the func awaiting the parameter of fn at index len(args).
func chain(fn reflect.Value, args []reflect.Value) reflect.Value {
	t := fn.Type()
	n := len(args)
	return reflect.MakeFunc(chainType(t, n), func(in []reflect.Value) []reflect.Value {
		// args[:n:n] has no spare capacity so append always copies
		next := append(args[:n:n], in[0])
		if len(next) == t.NumIn() {
			return fn.Call(next)
		}
		return []reflect.Value{chain(fn, next)}
	})
}

// chainType returns func(Ai) func(Ai+1) ... func(AN) R for the func type t.
func chainType(t reflect.Type, i int) reflect.Type {
	out := t.Out(0)
	for j := t.NumIn() - 1; j >= i; j-- {
		out = reflect.FuncOf([]reflect.Type{t.In(j)}, []reflect.Type{out}, false)
	}
	return out
}

// Curry2 returns the curried form of a two parameter func.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return MustCurry(f).(func(A) func(B) R)
}

// Curry3 returns the curried form of a three parameter func.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return MustCurry(f).(func(A) func(B) func(C) R)
}

// Curry4 returns the curried form of a four parameter func.
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return MustCurry(f).(func(A) func(B) func(C) func(D) R)
}
