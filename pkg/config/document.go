// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/z5labs/barista/internal/try"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a config document.
type Format string

const (
	Yaml Format = "yaml"
	Json Format = "json"
)

// FormatOf returns the format of the file at path by its extension.
// Anything other than .json is read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return Json
	}
	return Yaml
}

// Document is a Source whose values are decoded from a
// YAML or JSON encoded io.Reader.
type Document struct {
	r      io.Reader
	format Format
}

// FromYaml returns a source which will apply its config
// from YAML values parsed from the given io.Reader.
// If r is also an [io.Closer] it is closed once read.
func FromYaml(r io.Reader) Document {
	return Document{r: r, format: Yaml}
}

// FromJson is like [FromYaml] but parses JSON.
func FromJson(r io.Reader) Document {
	return Document{r: r, format: Json}
}

// InvalidDocumentError occurs if a [Document] can not be decoded in its format.
type InvalidDocumentError struct {
	Format Format
	Cause  error
}

// Error implements the [builtin.error] interface.
func (e InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Format, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidDocumentError) Unwrap() error {
	return e.Cause
}

// UnknownFormatError occurs when a [Document] has neither the [Yaml] nor [Json] format.
type UnknownFormatError struct {
	Format Format
}

// Error implements the [builtin.error] interface.
func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown config format: %q", string(e.Format))
}

// Apply implements the Source interface.
func (src Document) Apply(store Store) (err error) {
	defer try.Close(&err, src.r)

	var unmarshal func([]byte, any) error
	switch src.format {
	case Yaml:
		unmarshal = yaml.Unmarshal
	case Json:
		unmarshal = json.Unmarshal
	default:
		return UnknownFormatError{Format: src.format}
	}

	b, err := io.ReadAll(src.r)
	if err != nil {
		return err
	}

	m := make(map[string]any)
	err = unmarshal(b, &m)
	if err != nil {
		return InvalidDocumentError{Format: src.format, Cause: err}
	}
	return Map(m).Apply(store)
}
