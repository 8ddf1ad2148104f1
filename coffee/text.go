// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package coffee

import (
	"fmt"
	"strings"
)

type enum interface {
	~uint8
	fmt.Stringer
	Valid() bool
}

// InvalidValueError is the panic value used when a function receives an
// enum value outside of its declared set, e.g. Size(9). Such a value can
// only be produced by an explicit conversion and is a programming error.
type InvalidValueError struct {
	Type  string
	Value uint8
}

// Error implements the [builtin.error] interface.
func (e InvalidValueError) Error() string {
	return fmt.Sprintf("coffee: invalid %s value: %d", e.Type, e.Value)
}

// Must returns v if it is one of the declared values of its type,
// otherwise it panics with an [InvalidValueError].
func Must[T enum](v T) T {
	if !v.Valid() {
		panic(InvalidValueError{Type: typeName(v), Value: uint8(v)})
	}
	return v
}

func typeName[T enum](v T) string {
	s := fmt.Sprintf("%T", v)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// UnknownNameError is returned when unmarshaling text which does not
// name any value of the target enum.
type UnknownNameError struct {
	Type string
	Name string
}

// Error implements the [builtin.error] interface.
func (e UnknownNameError) Error() string {
	return fmt.Sprintf("coffee: unknown %s: %q", e.Type, e.Name)
}

func marshalText[T enum](typ string, v T) ([]byte, error) {
	if !v.Valid() {
		return nil, InvalidValueError{Type: typ, Value: uint8(v)}
	}
	return []byte(v.String()), nil
}

func unmarshalText[T enum](typ string, all []T, dst *T, b []byte) error {
	name := strings.TrimSpace(string(b))
	for _, v := range all {
		if strings.EqualFold(v.String(), name) {
			*dst = v
			return nil
		}
	}
	return UnknownNameError{Type: typ, Name: name}
}
