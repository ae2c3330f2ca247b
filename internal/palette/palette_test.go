package palette

import (
	"errors"
	"testing"

	"github.com/schemeforge/themeport/internal/resolver"
)

var testNamings = []Naming{
	{Variable: "background", Name: "Base"},
	{Variable: "textcolor", Name: "Text"},
	{Variable: "comment_color", Name: "Comment"},
	{Variable: "keyword_color", Name: "Keyword"},
	{Variable: "--redish", Name: "Red"},
}

func TestSynthesize(t *testing.T) {
	vars := map[string]string{
		"background":    "#101010",
		"textcolor":     "#eeeeee",
		"comment_color": "var(--redish)",
		"--redish":      "#dd7b70",
		"font_face":     "monospace",
	}

	p, err := Synthesize(vars, testNamings)
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}

	tests := []struct {
		name     string
		expected string
	}{
		{name: "Base", expected: "#101010"},
		{name: "Text", expected: "#EEEEEE"},
		{name: "Comment", expected: "#DD7B70"},
		{name: "Red", expected: "#DD7B70"},
		{name: "Transparent", expected: "#FFFFFF00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Get(tt.name)
			if !ok {
				t.Fatalf("palette missing %s", tt.name)
			}
			if got != tt.expected {
				t.Errorf("%s = %s, expected %s", tt.name, got, tt.expected)
			}
		})
	}

	if p.Has("Keyword") {
		t.Error("variable absent from source must not synthesize an entry")
	}

	// Comment and Red dedupe by name, not by value: both stay.
	if p.Len() != 5 {
		t.Errorf("palette has %d entries, expected 5", p.Len())
	}
}

func TestSynthesizeOrderIsDeterministic(t *testing.T) {
	vars := map[string]string{
		"background": "#101010",
		"textcolor":  "#EEEEEE",
		"--redish":   "#DD7B70",
	}

	p, err := Synthesize(vars, testNamings)
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}

	expected := []string{"Base", "Text", "Red", "Transparent"}
	names := p.Names()
	if len(names) != len(expected) {
		t.Fatalf("names = %v, expected %v", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("names[%d] = %s, expected %s", i, names[i], expected[i])
		}
	}
}

func TestSynthesizeAbortsOnBrokenReference(t *testing.T) {
	_, err := Synthesize(map[string]string{"background": "var(missing)"}, testNamings)
	if !errors.Is(err, resolver.ErrUnresolvedReference) {
		t.Errorf("error = %v, expected ErrUnresolvedReference", err)
	}

	_, err = Synthesize(map[string]string{"background": "var(background)"}, testNamings)
	if !errors.Is(err, resolver.ErrCycleDetected) {
		t.Errorf("error = %v, expected ErrCycleDetected", err)
	}
}

func TestPick(t *testing.T) {
	p := New()
	p.Set("Blue", "#0000FF")
	p.Set("Text", "#EEEEEE")

	tests := []struct {
		name     string
		chain    Chain
		expected string
	}{
		{
			name:     "first present name wins",
			chain:    Chain{Names: []string{"Keyword", "Purple", "Blue"}, Default: "Text"},
			expected: "Blue",
		},
		{
			name:     "default when no preferred name present",
			chain:    Chain{Names: []string{"Keyword", "Purple"}, Default: "Text"},
			expected: "Text",
		},
		{
			name:     "first entry when default also absent",
			chain:    Chain{Names: []string{"Keyword"}, Default: "Mantle"},
			expected: "Blue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Pick(tt.chain)
			if got != tt.expected {
				t.Errorf("Pick = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestPickNames(t *testing.T) {
	p := New()
	p.Set("Base", "#101010")
	p.Set("Text", "#EEEEEE")

	if got := p.PickNames("Keyword", "Base"); got != "Base" {
		t.Errorf("PickNames = %s, expected Base", got)
	}
	if got := p.PickNames("Keyword", "Purple"); got != "Text" {
		t.Errorf("PickNames = %s, expected default Text", got)
	}
}

func TestPickEmptyPalette(t *testing.T) {
	p := New()
	if got := p.Pick(Chain{Names: []string{"Keyword"}, Default: "Text"}); got != "" {
		t.Errorf("Pick over empty palette = %q, expected empty string", got)
	}
}

func TestFindByColor(t *testing.T) {
	p := New()
	p.Set("Base", "#101010")
	p.Set("Text", "#EEEEEE")
	p.Set("Shadow", "#101010")

	tests := []struct {
		name     string
		hex      string
		fallback string
		expected string
	}{
		{
			name:     "exact match",
			hex:      "#EEEEEE",
			fallback: "Text",
			expected: "Text",
		},
		{
			name:     "match normalizes input",
			hex:      "eeeeee",
			fallback: "Base",
			expected: "Text",
		},
		{
			name:     "duplicate value returns first inserted",
			hex:      "#101010",
			fallback: "Text",
			expected: "Base",
		},
		{
			name:     "no match falls back",
			hex:      "#123456",
			fallback: "Text",
			expected: "Text",
		},
		{
			name:     "unparseable falls back",
			hex:      "var(bg)",
			fallback: "Base",
			expected: "Base",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.FindByColor(tt.hex, tt.fallback)
			if got != tt.expected {
				t.Errorf("FindByColor(%s) = %s, expected %s", tt.hex, got, tt.expected)
			}
		})
	}
}
