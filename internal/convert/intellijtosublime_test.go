package convert

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemeforge/themeport/internal/dialect/intellij"
	"github.com/schemeforge/themeport/internal/dialect/sublime"
)

func darculaLike() *intellij.Scheme {
	return &intellij.Scheme{
		Name: "Darcula Test",
		Colors: map[string]string{
			"SELECTION_BACKGROUND": "#214283",
			"CARET_ROW_COLOR":      "#323232",
			"LINE_NUMBERS_COLOR":   "#606366",
		},
		Attributes: map[string]intellij.Attribute{
			"TEXT":                 {Name: "TEXT", Foreground: "#BBBBBB", Background: "#2B2B2B"},
			"DEFAULT_KEYWORD":      {Name: "DEFAULT_KEYWORD", Foreground: "#CC7832", Bold: true},
			"DEFAULT_LINE_COMMENT": {Name: "DEFAULT_LINE_COMMENT", Foreground: "#808080", Italic: true},
			"DEFAULT_STRING":       {Name: "DEFAULT_STRING", Foreground: "#6A8759"},
			"CUSTOM_VENDOR_ATTR":   {Name: "CUSTOM_VENDOR_ATTR", Foreground: "#123456"},
		},
	}
}

func findRule(t *testing.T, rules []sublime.Rule, name string) sublime.Rule {
	t.Helper()
	for _, r := range rules {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no rule named %q", name)
	return sublime.Rule{}
}

func findRuleByScope(rules []sublime.Rule, scope string) (sublime.Rule, bool) {
	for _, r := range rules {
		if r.Scope == scope {
			return r, true
		}
	}
	return sublime.Rule{}, false
}

func TestIntelliJToSublimeDarkScheme(t *testing.T) {
	out, err := IntelliJToSublime(darculaLike())
	require.NoError(t, err)

	assert.Equal(t, "Darcula Test", out.Name)
	assert.Equal(t, "Converted from IntelliJ theme", out.Author)

	vars := out.Variables
	assert.Equal(t, "#BBBBBB", vars["textcolor"])
	assert.Equal(t, "#2B2B2B", vars["background"])
	assert.Equal(t, "#214283", vars["selection_background"])
	assert.Equal(t, "#323232", vars["line_highlight_color"])
	assert.Equal(t, "#606366", vars["gutter_foreground_color"])

	// Dark accent set.
	assert.Equal(t, "#dd7b70", vars["--redish"])
	assert.Equal(t, "#334f40", vars["inserted"])
	assert.Equal(t, "#ff6d62", vars["popup_redish"])

	// Popup background is the editor background shifted up 20 per channel.
	assert.Equal(t, "#3F3F3F", vars["popup_bg"])
	assert.Equal(t, "#3F3F3F", vars["mdpopups_background"])
	assert.Equal(t, "#3F3F3F", vars["popups_background"])

	assert.Equal(t, "#CC7832", vars["keyword_color"])
	assert.Equal(t, "#808080", vars["comment_color"])
	assert.Equal(t, "#6A8759", vars["string_color"])

	// Unstyled key groups inherit the text color.
	assert.Equal(t, "#BBBBBB", vars["json_key_color"])
	assert.Equal(t, "#BBBBBB", vars["yaml_key_color"])

	globals := out.Globals
	assert.Equal(t, "var(background)", globals["background"])
	assert.Equal(t, "var(textcolor)", globals["foreground"])
	assert.Equal(t, "var(line_highlight_color)", globals["line_highlight"])
	assert.Equal(t, "var(line_highlight_color)", globals["active_guide"])
	assert.Equal(t, "var(selection_background)", globals["selection"])
	assert.Equal(t, "var(gutter_foreground_color)", globals["gutter_foreground"])
	assert.Equal(t, "10", globals["line_diff_width"])
	assert.Equal(t, "var(--greenish)", globals["line_diff_added"])
	assert.Equal(t, "var(--redish)", globals["line_diff_deleted"])
	assert.Contains(t, globals["popup_css"], ".mdpopups")

	keywords := findRule(t, out.Rules, "Keywords")
	assert.Equal(t, "var(keyword_color)", keywords.Foreground)
	assert.Equal(t, "bold", keywords.FontStyle)

	comments := findRule(t, out.Rules, "Comments")
	assert.Equal(t, "var(comment_color)", comments.Foreground)
	assert.Equal(t, "italic", comments.FontStyle)

	strRule := findRule(t, out.Rules, "Strings")
	assert.Equal(t, "var(string_color)", strRule.Foreground)
	assert.Empty(t, strRule.FontStyle)

	bh, ok := findRuleByScope(out.Rules, "brackethighlighter")
	require.True(t, ok)
	assert.Equal(t, "var(selection_background)", bh.Background)

	dbg, ok := findRuleByScope(out.Rules, "debugger.selection")
	require.True(t, ok)
	assert.Equal(t, "var(selection_background)", dbg.Background)

	inserted := findRule(t, out.Rules, "Inserted")
	assert.Equal(t, "var(textcolor)", inserted.Foreground)
	assert.Equal(t, "var(inserted)", inserted.Background)

	// The unmapped vendor attribute must not leak a variable or rule.
	for name := range vars {
		assert.NotEqual(t, "#123456", vars[name])
	}
}

func TestIntelliJToSublimeLightScheme(t *testing.T) {
	scheme := &intellij.Scheme{
		Name:   "Daylight",
		Colors: map[string]string{},
		Attributes: map[string]intellij.Attribute{
			"TEXT": {Name: "TEXT", Foreground: "#000000", Background: "#FFFFFF"},
		},
	}

	out, err := IntelliJToSublime(scheme)
	require.NoError(t, err)

	// Light accent set.
	assert.Equal(t, "#9b362b", out.Variables["--redish"])
	assert.Equal(t, "#BEE6BE", out.Variables["inserted"])

	// Offset is negative for light themes, and the generic popup background
	// takes over the popups slot.
	assert.Equal(t, "#EEEEEE", out.Variables["popup_bg"])
	assert.Equal(t, "#fff1cc", out.Variables["popups_background"])
	assert.Equal(t, "#EEEEEE", out.Variables["mdpopups_background"])

	// No caret row or gutter colors: globals fall back.
	assert.Equal(t, "var(background)", out.Globals["line_highlight"])
	assert.Equal(t, "var(textcolor)", out.Globals["gutter_foreground"])

	_, ok := findRuleByScope(out.Rules, "brackethighlighter")
	assert.False(t, ok)
}

func TestIntelliJToSublimeColorFallbacks(t *testing.T) {
	scheme := &intellij.Scheme{
		Colors: map[string]string{
			"FOREGROUND": "#D4D4D4",
			"BACKGROUND": "#1E1E1E",
		},
		Attributes: map[string]intellij.Attribute{},
	}

	out, err := IntelliJToSublime(scheme)
	require.NoError(t, err)

	assert.Equal(t, "Converted Theme", out.Name)
	assert.Equal(t, "#D4D4D4", out.Variables["textcolor"])
	assert.Equal(t, "#1E1E1E", out.Variables["background"])
}

// DEFAULT_NUMBER may not displace the color DEFAULT_CONSTANT already gave
// the Constants group.
func TestIntelliJToSublimeConstantAttributeOrder(t *testing.T) {
	scheme := &intellij.Scheme{
		Colors: map[string]string{},
		Attributes: map[string]intellij.Attribute{
			"TEXT":             {Name: "TEXT", Foreground: "#BBBBBB", Background: "#2B2B2B"},
			"DEFAULT_NUMBER":   {Name: "DEFAULT_NUMBER", Foreground: "#AAAAAA"},
			"DEFAULT_CONSTANT": {Name: "DEFAULT_CONSTANT", Foreground: "#9876AA"},
		},
	}

	out, err := IntelliJToSublime(scheme)
	require.NoError(t, err)
	assert.Equal(t, "#9876AA", out.Variables["constant_color"])
}

func TestIntelliJToSublimeOutputResolves(t *testing.T) {
	out, err := IntelliJToSublime(darculaLike())
	require.NoError(t, err)

	for name, value := range out.Variables {
		assert.False(t, strings.HasPrefix(value, "var("), "variable %q still a reference", name)
	}
}

func TestIntelliJToSublimePopupCSSDefinesItsVariables(t *testing.T) {
	out, err := IntelliJToSublime(darculaLike())
	require.NoError(t, err)
	css := out.Globals["popup_css"]

	assert.Contains(t, css, "html {")
	assert.Contains(t, css, "--popup_redish: #ff6d62;")
	assert.Contains(t, css, "--mdpopups_background: #3F3F3F;")
	assert.Contains(t, css, "--popups_background: #3F3F3F;")

	defined := map[string]bool{}
	for _, m := range regexp.MustCompile(`(--[A-Za-z0-9_-]+)\s*:`).FindAllStringSubmatch(css, -1) {
		defined[m[1]] = true
	}
	for _, m := range regexp.MustCompile(`var\((--[A-Za-z0-9_-]+)\)`).FindAllStringSubmatch(css, -1) {
		name := m[1]
		if _, ok := out.Variables[name]; ok {
			// minihtml derives CSS variables for the scheme's own accent
			// variables, so those need no declaration in the css itself.
			continue
		}
		assert.Truef(t, defined[name], "popup_css references %s without defining it", name)
	}
}
