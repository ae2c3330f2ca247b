// Package zed writes Zed theme JSON: a themes array whose style object mixes
// flat UI-role color keys with a players list and a syntax map. The style
// flattening lives in a custom marshaler since the UI keys are open-ended.
package zed

import (
	"encoding/json"

	"github.com/spf13/afero"
)

const SchemaURL = "https://zed.dev/schema/themes/v0.1.0.json"

// Appearance values Zed accepts.
const (
	AppearanceDark  = "dark"
	AppearanceLight = "light"
)

// Player is one collaborative-editing cursor color set.
type Player struct {
	Cursor     string `json:"cursor"`
	Background string `json:"background"`
	Selection  string `json:"selection"`
}

// Highlight styles one syntax token. FontStyle and FontWeight emit explicit
// nulls when unset, matching the shape Zed's own themes use.
type Highlight struct {
	Color      string  `json:"color,omitempty"`
	FontStyle  *string `json:"font_style"`
	FontWeight *string `json:"font_weight"`
}

// Style is one theme's style object: UI colors keyed by role, plus players
// and syntax.
type Style struct {
	Colors  map[string]string
	Players []Player
	Syntax  map[string]Highlight
}

func (s Style) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(s.Colors)+2)
	for key, value := range s.Colors {
		flat[key] = value
	}
	players := s.Players
	if players == nil {
		players = []Player{}
	}
	syntax := s.Syntax
	if syntax == nil {
		syntax = map[string]Highlight{}
	}
	flat["players"] = players
	flat["syntax"] = syntax
	return json.Marshal(flat)
}

// Theme is one entry of the themes array.
type Theme struct {
	Name       string `json:"name"`
	Appearance string `json:"appearance"`
	Style      Style  `json:"style"`
}

// Document is a complete Zed theme family file.
type Document struct {
	Schema string  `json:"$schema"`
	Name   string  `json:"name"`
	Author string  `json:"author"`
	Themes []Theme `json:"themes"`
}

// New returns a single-theme document with the current schema URL.
func New(name, author, appearance string) *Document {
	return &Document{
		Schema: SchemaURL,
		Name:   name,
		Author: author,
		Themes: []Theme{{
			Name:       name,
			Appearance: appearance,
			Style: Style{
				Colors: make(map[string]string),
				Syntax: make(map[string]Highlight),
			},
		}},
	}
}

// Save writes the document as indented JSON.
func Save(fs afero.Fs, path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, append(data, '\n'), 0644)
}
