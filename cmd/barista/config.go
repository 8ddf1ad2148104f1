// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/z5labs/barista/machine"
	"github.com/z5labs/barista/pkg/config"
)

//go:embed config.yaml
var configFS embed.FS

// Config is everything the barista command can be configured with.
type Config struct {
	Logging struct {
		Level slog.Level `config:"level"`
	} `config:"logging"`

	Machine struct {
		Settings machine.Settings `config:"settings"`
		Supply   *machine.Supply  `config:"supply"`
	} `config:"machine"`
}

// ConfigReadError occurs when any config source fails to be read.
type ConfigReadError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e ConfigReadError) Error() string {
	return fmt.Sprintf("failed to read config source(s): %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ConfigReadError) Unwrap() error {
	return e.Cause
}

// ConfigUnmarshalError occurs when the merged config can not be decoded into [Config].
type ConfigUnmarshalError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e ConfigUnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal read config source(s) into barista config: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ConfigUnmarshalError) Unwrap() error {
	return e.Cause
}

// InvalidSettingsError occurs when the configured machine settings hold
// values outside of their declared enumerations.
type InvalidSettingsError struct {
	Settings machine.Settings
}

// Error implements the [builtin.error] interface.
func (e InvalidSettingsError) Error() string {
	return fmt.Sprintf("invalid machine settings: %s", e.Settings)
}

func readConfig(path string) (Config, error) {
	srcs := []config.Source{
		config.FromFile(configFS, "config.yaml"),
	}
	if path != "" {
		srcs = append(srcs, config.FromFile(os.DirFS(filepath.Dir(path)), filepath.Base(path)))
	}
	srcs = append(srcs, config.FromEnv("BARISTA_"))

	m, err := config.Read(srcs...)
	if err != nil {
		return Config{}, ConfigReadError{Cause: err}
	}

	var cfg Config
	err = m.Unmarshal(&cfg)
	if err != nil {
		return Config{}, ConfigUnmarshalError{Cause: err}
	}
	if !cfg.Machine.Settings.Valid() {
		return Config{}, InvalidSettingsError{Settings: cfg.Machine.Settings}
	}
	return cfg, nil
}
