// SPDX-License-Identifier: MIT
//
// File: encoded.go
// Role: Machine-readable encodings (JSON, YAML, TOML).

package report

import (
	"io"

	"github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// JSONWriter encodes the report as indented JSON.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter{output: w}}
}

// Write renders r.
func (w *JSONWriter) Write(r *Report) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// YAMLWriter encodes the report as a YAML document.
type YAMLWriter struct {
	baseWriter
}

// NewYAMLWriter creates a YAMLWriter that outputs to w.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{baseWriter{output: w}}
}

// Write renders r.
func (w *YAMLWriter) Write(r *Report) error {
	enc := yaml.NewEncoder(w.output)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}

// TOMLWriter encodes the report as a TOML document; rank rows become
// arrays of tables.
type TOMLWriter struct {
	baseWriter
}

// NewTOMLWriter creates a TOMLWriter that outputs to w.
func NewTOMLWriter(w io.Writer) *TOMLWriter {
	return &TOMLWriter{baseWriter{output: w}}
}

// Write renders r.
func (w *TOMLWriter) Write(r *Report) error {
	return toml.NewEncoder(w.output).Encode(r)
}
