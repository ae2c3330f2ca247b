// Package intellij reads IntelliJ `.icls` editor schemes: an XML document
// with a flat colors section and an attributes section keyed by attribute ID.
// Color values are normalized on load so downstream code only ever sees
// canonical hex.
package intellij

import (
	"encoding/xml"
	"fmt"

	"github.com/spf13/afero"

	"github.com/schemeforge/themeport/internal/color"
)

// Font type bitmask as stored in FONT_TYPE options.
const (
	FontBold   = 1
	FontItalic = 2
)

// Attribute is one entry of the attributes section. Color fields are
// canonical hex, empty when the option is absent or unparseable. Bold and
// Italic are relayed as opaque style flags.
type Attribute struct {
	Name           string
	BaseAttributes string
	Foreground     string
	Background     string
	EffectColor    string
	Bold           bool
	Italic         bool
}

// Scheme is a parsed .icls document.
type Scheme struct {
	Name       string
	Colors     map[string]string
	Attributes map[string]Attribute
}

type schemeXML struct {
	XMLName xml.Name `xml:"scheme"`
	Name    string   `xml:"name,attr"`
	Colors  struct {
		Options []optionXML `xml:"option"`
	} `xml:"colors"`
	Attributes struct {
		Options []attrOptionXML `xml:"option"`
	} `xml:"attributes"`
}

type optionXML struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type attrOptionXML struct {
	Name           string `xml:"name,attr"`
	BaseAttributes string `xml:"baseAttributes,attr"`
	Value          struct {
		Options []optionXML `xml:"option"`
	} `xml:"value"`
}

// Parse decodes an .icls document from raw bytes.
func Parse(data []byte) (*Scheme, error) {
	var doc schemeXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing scheme XML: %w", err)
	}

	scheme := &Scheme{
		Name:       doc.Name,
		Colors:     make(map[string]string),
		Attributes: make(map[string]Attribute),
	}

	for _, opt := range doc.Colors.Options {
		if opt.Name == "" || opt.Value == "" {
			continue
		}
		if hex, err := color.Normalize(opt.Value); err == nil {
			scheme.Colors[opt.Name] = hex
		}
	}

	for _, opt := range doc.Attributes.Options {
		if opt.Name == "" {
			continue
		}
		attr := Attribute{Name: opt.Name, BaseAttributes: opt.BaseAttributes}
		for _, valueOpt := range opt.Value.Options {
			switch valueOpt.Name {
			case "FOREGROUND":
				attr.Foreground = normalizeOrEmpty(valueOpt.Value)
			case "BACKGROUND":
				attr.Background = normalizeOrEmpty(valueOpt.Value)
			case "EFFECT_COLOR":
				attr.EffectColor = normalizeOrEmpty(valueOpt.Value)
			case "FONT_TYPE":
				var mask int
				fmt.Sscanf(valueOpt.Value, "%d", &mask)
				attr.Bold = mask&FontBold != 0
				attr.Italic = mask&FontItalic != 0
			}
		}
		scheme.Attributes[opt.Name] = attr
	}

	return scheme, nil
}

func normalizeOrEmpty(raw string) string {
	hex, err := color.Normalize(raw)
	if err != nil {
		return ""
	}
	return hex
}

// Load reads and parses an .icls file.
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

// TextForeground returns the editor foreground from the TEXT attribute.
func (s *Scheme) TextForeground() string {
	return s.Attributes["TEXT"].Foreground
}

// TextBackground returns the editor background from the TEXT attribute.
func (s *Scheme) TextBackground() string {
	return s.Attributes["TEXT"].Background
}
