// Package sublime reads and writes `.sublime-color-scheme` documents: JSON
// with a variables table, editor globals, and TextMate-scope rules. Values
// stay as written, including var() references; resolution is the engine's
// job, not the codec's.
package sublime

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// Rule is one scope rule. Foreground and Background may be literals or
// var() references. FontStyle is a space-separated flag list ("bold italic").
type Rule struct {
	Name       string `json:"name,omitempty"`
	Scope      string `json:"scope,omitempty"`
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	FontStyle  string `json:"font_style,omitempty"`
}

// Scheme is a .sublime-color-scheme document.
type Scheme struct {
	Name      string            `json:"name,omitempty"`
	Author    string            `json:"author,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
	Globals   map[string]string `json:"globals,omitempty"`
	Rules     []Rule            `json:"rules,omitempty"`
}

// Parse decodes a scheme from raw JSON.
func Parse(data []byte) (*Scheme, error) {
	var scheme Scheme
	if err := json.Unmarshal(data, &scheme); err != nil {
		return nil, fmt.Errorf("parsing color scheme JSON: %w", err)
	}
	if scheme.Variables == nil {
		scheme.Variables = make(map[string]string)
	}
	if scheme.Globals == nil {
		scheme.Globals = make(map[string]string)
	}
	return &scheme, nil
}

// Load reads and parses a scheme file.
func Load(fs afero.Fs, path string) (*Scheme, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	scheme, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scheme, nil
}

// Save writes the scheme as indented JSON.
func Save(fs afero.Fs, path string, scheme *Scheme) error {
	data, err := json.MarshalIndent(scheme, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, append(data, '\n'), 0644)
}
