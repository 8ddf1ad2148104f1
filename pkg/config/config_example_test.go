// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"strings"
)

func ExampleRead() {
	defaults := Map{
		"machine": map[string]any{
			"settings": map[string]any{"size": "medium"},
		},
	}
	overrides := FromYaml(strings.NewReader(`
machine:
  settings:
    size: large
`))

	m, err := Read(defaults, overrides)
	if err != nil {
		fmt.Println(err)
		return
	}

	var cfg struct {
		Machine struct {
			Settings struct {
				Size string `config:"size"`
			} `config:"settings"`
		} `config:"machine"`
	}
	err = m.Unmarshal(&cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(cfg.Machine.Settings.Size)
	// Output: large
}

func ExampleRenderTextTemplate() {
	r := RenderTextTemplate(strings.NewReader(`
machine:
  size: {{ env "EXAMPLE_UNSET_SIZE" | default "small" }}
`))

	m, err := Read(FromYaml(r))
	if err != nil {
		fmt.Println(err)
		return
	}

	var cfg struct {
		Machine struct {
			Size string `config:"size"`
		} `config:"machine"`
	}
	err = m.Unmarshal(&cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(cfg.Machine.Size)
	// Output: small
}
