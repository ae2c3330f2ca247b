// Package fleet writes JetBrains Fleet theme JSON: meta, a colors section of
// palette-name references, semantic textAttributes, and the palette itself.
package fleet

import (
	"encoding/json"

	"github.com/spf13/afero"
)

// Meta carries the theme header.
type Meta struct {
	Name    string `json:"theme.name"`
	Kind    string `json:"theme.kind"`
	Version int    `json:"theme.version"`
}

// FontModifier toggles style flags on a text attribute.
type FontModifier struct {
	Bold   bool `json:"bold,omitempty"`
	Italic bool `json:"italic,omitempty"`
}

// TextAttribute styles one semantic token. Color fields hold palette names,
// not hex values.
type TextAttribute struct {
	ForegroundColor string        `json:"foregroundColor,omitempty"`
	BackgroundColor string        `json:"backgroundColor,omitempty"`
	FontModifier    *FontModifier `json:"fontModifier,omitempty"`
}

// Document is a complete Fleet theme.
type Document struct {
	Meta           Meta                     `json:"meta"`
	Colors         map[string]string        `json:"colors"`
	TextAttributes map[string]TextAttribute `json:"textAttributes"`
	Palette        map[string]string        `json:"palette"`
}

// New returns an empty document with the standard header.
func New(name, kind string) *Document {
	return &Document{
		Meta:           Meta{Name: name, Kind: kind, Version: 1},
		Colors:         make(map[string]string),
		TextAttributes: make(map[string]TextAttribute),
		Palette:        make(map[string]string),
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
