// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"strings"

	"github.com/z5labs/barista/pkg/config/key"
)

// EmptyKeyError occurs when a value is set with a key naming nothing.
type EmptyKeyError struct {
	Value any
}

// Error implements the [builtin.error] interface.
func (e EmptyKeyError) Error() string {
	return fmt.Sprintf("attempted to set value to an empty key: %v", e.Value)
}

// KeyConflictError occurs when a nested key is set below a key which
// already holds a plain value, e.g. machine.supply.water after
// machine.supply was set to 500.
type KeyConflictError struct {
	Key   string
	Value any
}

// Error implements the [builtin.error] interface.
func (e KeyConflictError) Error() string {
	return fmt.Sprintf("can not nest keys under %s since it holds the value %v", e.Key, e.Value)
}

// inMemoryStore is a tree of tables keyed by lower cased names, so every
// source addresses machine.settings.size the same way whether it came from
// YAML, JSON or BARISTA_MACHINE_SETTINGS_SIZE.
type inMemoryStore map[string]any

func (m inMemoryStore) Set(k key.Keyer, v any) error {
	path := pathOf(k)
	if len(path) == 0 {
		return EmptyKeyError{Value: v}
	}

	table := map[string]any(m)
	for i, name := range path[:len(path)-1] {
		next, ok := table[name]
		if !ok {
			sub := make(map[string]any)
			table[name] = sub
			table = sub
			continue
		}

		sub, ok := next.(map[string]any)
		if !ok {
			return KeyConflictError{
				Key:   strings.Join(path[:i+1], "."),
				Value: next,
			}
		}
		table = sub
	}

	table[path[len(path)-1]] = v
	return nil
}

// pathOf flattens any key.Keyer into lower cased names. Keyers other
// than key.Chain are treated as a dotted path.
func pathOf(k key.Keyer) []string {
	chain, ok := k.(key.Chain)
	if !ok {
		chain = key.Split(k.Key(), ".")
	}

	path := make([]string, 0, len(chain))
	for _, name := range chain {
		s := strings.ToLower(name.Key())
		if s == "" {
			continue
		}
		path = append(path, s)
	}
	return path
}
