// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import "github.com/z5labs/barista/pkg/config/key"

// Map is an ordinary map[string]any but implements the Source interface.
// Nested maps, including nested Maps, become nested tables.
type Map map[string]any

// Apply implements the Source interface. Every leaf value is set on
// store under the chain of names leading to it.
func (m Map) Apply(store Store) error {
	return walkMap(m, store, nil)
}

func walkMap(m map[string]any, store Store, parent key.Chain) error {
	for name, v := range m {
		chain := parent.Append(key.Name(name))

		var err error
		switch x := v.(type) {
		case Map:
			err = walkMap(x, store, chain)
		case map[string]any:
			err = walkMap(x, store, chain)
		default:
			err = store.Set(chain, x)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
