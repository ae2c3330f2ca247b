package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemeforge/themeport/internal/dialect/sublime"
	"github.com/schemeforge/themeport/internal/palette"
	"github.com/schemeforge/themeport/internal/resolver"
)

func TestSublimeToFleetMinimalScheme(t *testing.T) {
	scheme := &sublime.Scheme{
		Name: "Midnight",
		Variables: map[string]string{
			"bg": "#101010",
			"fg": "#EEEEEE",
		},
		Globals: map[string]string{
			"background": "var(bg)",
			"foreground": "var(fg)",
		},
	}

	doc, err := SublimeToFleet(scheme)
	require.NoError(t, err)

	assert.Equal(t, "Midnight", doc.Meta.Name)
	assert.Equal(t, "Dark", doc.Meta.Kind)
	assert.Equal(t, 1, doc.Meta.Version)

	assert.Equal(t, "#101010", doc.Palette["Base"])
	assert.Equal(t, "#EEEEEE", doc.Palette["Text"])
	assert.Equal(t, palette.TransparentColor, doc.Palette["Transparent"])

	// Colors reference palette names only.
	assert.Equal(t, "Text", doc.Colors["editor.text"])
	assert.Equal(t, "Base", doc.Colors["terminal.background"])
	for slot, name := range doc.Colors {
		_, inPalette := doc.Palette[name]
		assert.True(t, inPalette, "slot %s references %q which is not in the palette", slot, name)
	}
}

func TestSublimeToFleetFullScheme(t *testing.T) {
	scheme := &sublime.Scheme{
		Name: "Mariana",
		Variables: map[string]string{
			"background":           "#303841",
			"textcolor":            "var(white3)",
			"white3":               "#d8dee9",
			"comment_color":        "#a6acb9",
			"keyword_color":        "#c695c6",
			"string_color":         "#99c794",
			"selection_background": "#3f4750",
			"--redish":             "#ec5f66",
			"inserted":             "#343d46",
			"font_face":            "monospace",
		},
		Globals: map[string]string{
			"background":     "var(background)",
			"foreground":     "var(textcolor)",
			"selection":      "var(selection_background)",
			"line_highlight": "#3f4750",
		},
	}

	doc, err := SublimeToFleet(scheme)
	require.NoError(t, err)

	assert.Equal(t, "Dark", doc.Meta.Kind)
	assert.Equal(t, "#C695C6", doc.Palette["Keyword"])
	assert.Equal(t, "#EC5F66", doc.Palette["Red"])
	_, hasFont := doc.Palette["font_face"]
	assert.False(t, hasFont)

	// line_highlight's literal matches the selection variable's value, so
	// reverse lookup lands on the first palette entry holding it.
	assert.Equal(t, "Selection", doc.Colors["editor.currentLine.background.default"])
	assert.Equal(t, "Selection", doc.Colors["background.primary"])
	assert.Equal(t, "Selection", doc.Colors["tab.background.selected"])

	comment := doc.TextAttributes["comment"]
	assert.Equal(t, "Comment", comment.ForegroundColor)
	require.NotNil(t, comment.FontModifier)
	assert.True(t, comment.FontModifier.Italic)

	heading := doc.TextAttributes["markup.heading"]
	assert.Equal(t, "Keyword", heading.ForegroundColor)
	require.NotNil(t, heading.FontModifier)
	assert.True(t, heading.FontModifier.Bold)

	assert.Equal(t, "DiffInserted", doc.TextAttributes["diff.added"].BackgroundColor)
	assert.Equal(t, "Selection", doc.TextAttributes["editor.selection"].BackgroundColor)
	assert.Equal(t, "Selection", doc.TextAttributes["editor.indentGuide"].ForegroundColor)

	// Keyword is present, so the fallback chain never reaches Purple.
	assert.Equal(t, "Keyword", doc.TextAttributes["keyword"].ForegroundColor)
	// String chain: String present.
	assert.Equal(t, "String", doc.TextAttributes["string"].ForegroundColor)
	// Function absent, Blue absent, Cyan absent -> default Text.
	assert.Equal(t, "Text", doc.TextAttributes["identifier.function.call"].ForegroundColor)
}

func TestSublimeToFleetBackfillsFromRules(t *testing.T) {
	scheme := &sublime.Scheme{
		Name: "Scoped",
		Variables: map[string]string{
			"background": "#FDF6E3",
			"textcolor":  "#657B83",
		},
		Globals: map[string]string{
			"background": "var(background)",
			"foreground": "var(textcolor)",
		},
		Rules: []sublime.Rule{
			{Scope: "keyword.control.flow", Foreground: "#859900"},
			{Scope: "comment.line.double-slash", Foreground: "#93A1A1"},
			{Scope: "totally.unknown.scope", Foreground: "#FF0000"},
		},
	}

	doc, err := SublimeToFleet(scheme)
	require.NoError(t, err)

	assert.Equal(t, "Light", doc.Meta.Kind)
	assert.Equal(t, "#859900", doc.Palette["Keyword"])
	assert.Equal(t, "#93A1A1", doc.Palette["Comment"])
	for _, hex := range doc.Palette {
		assert.NotEqual(t, "#FF0000", hex, "unmapped scope must contribute nothing")
	}
}

func TestSublimeToFleetVariableWinsOverRule(t *testing.T) {
	scheme := &sublime.Scheme{
		Name: "Both",
		Variables: map[string]string{
			"background":    "#101010",
			"textcolor":     "#EEEEEE",
			"keyword_color": "#C695C6",
		},
		Globals: map[string]string{"background": "var(background)", "foreground": "var(textcolor)"},
		Rules: []sublime.Rule{
			{Scope: "keyword", Foreground: "#111111"},
		},
	}

	doc, err := SublimeToFleet(scheme)
	require.NoError(t, err)
	assert.Equal(t, "#C695C6", doc.Palette["Keyword"])
}

func TestSublimeToFleetAbortsOnCycle(t *testing.T) {
	scheme := &sublime.Scheme{
		Name: "Broken",
		Variables: map[string]string{
			"a": "var(b)",
			"b": "var(a)",
		},
		Globals: map[string]string{},
	}

	_, err := SublimeToFleet(scheme)
	require.Error(t, err)
	assert.True(t, errors.Is(err, resolver.ErrCycleDetected))
}

func TestSublimeToFleetAbortsOnUnresolvedReference(t *testing.T) {
	scheme := &sublime.Scheme{
		Name: "Broken",
		Variables: map[string]string{
			"background": "var(missing)",
		},
		Globals: map[string]string{},
	}

	_, err := SublimeToFleet(scheme)
	require.Error(t, err)
	assert.True(t, errors.Is(err, resolver.ErrUnresolvedReference))
}

func TestSublimeToFleetEmptyScheme(t *testing.T) {
	doc, err := SublimeToFleet(&sublime.Scheme{
		Variables: map[string]string{},
		Globals:   map[string]string{},
	})
	require.NoError(t, err)
	assert.Equal(t, "Converted Theme", doc.Meta.Name)
	assert.Equal(t, "Dark", doc.Meta.Kind)
	// Only Transparent exists, so every chain bottoms out there.
	assert.Equal(t, "Transparent", doc.Colors["editor.text"])
}
