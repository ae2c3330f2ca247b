package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schemeforge/themeport/internal/dialect/intellij"
	"github.com/schemeforge/themeport/internal/dialect/sublime"
	"github.com/schemeforge/themeport/internal/log"
	"github.com/schemeforge/themeport/internal/resolver"
	"github.com/schemeforge/themeport/internal/theme"
)

// groupColor is the color an IntelliJ attribute contributed to a semantic
// group, plus any style flags riding along.
type groupColor struct {
	foreground string
	background string
	bold       bool
	italic     bool
}

// IntelliJToSublime converts an .icls scheme into a Sublime color scheme.
// Syntax rules reference scheme variables with var(); only the variable
// table carries literal hex.
func IntelliJToSublime(scheme *intellij.Scheme) (*sublime.Scheme, error) {
	out := &sublime.Scheme{
		Name:      scheme.Name,
		Author:    "Converted from IntelliJ theme",
		Variables: make(map[string]string),
		Globals:   make(map[string]string),
	}
	if out.Name == "" {
		out.Name = "Converted Theme"
	}

	foreground := scheme.TextForeground()
	background := scheme.TextBackground()
	if background == "" {
		background = scheme.Colors["BACKGROUND"]
	}
	if foreground == "" {
		foreground = scheme.Colors["FOREGROUND"]
	}

	groups := collectGroupColors(scheme)

	// The WCAG variant backs the accent-palette choice here; quick
	// brightness backs the same decision in the Fleet direction.
	polarity := theme.ClassifyWCAG(background)
	accents := theme.AccentsFor(polarity)
	popupBG := theme.PopupBackground(background, accents)

	vars := out.Variables
	vars["popup_bg"] = popupBG
	for name, hex := range accents.Variables {
		vars[name] = hex
	}
	for name, hex := range accents.GitDiff {
		vars[name] = hex
	}
	popupColors := make(map[string]string, len(accents.Popup)+2)
	for name, hex := range accents.Popup {
		vars[name] = hex
		popupColors[name] = hex
	}
	vars["mdpopups_background"] = popupBG
	popupColors["mdpopups_background"] = popupBG
	genericBG := accents.GenericPopupBG
	if genericBG == "" {
		genericBG = popupBG
	}
	vars["popups_background"] = genericBG
	popupColors["popups_background"] = genericBG

	if foreground != "" {
		vars["textcolor"] = foreground
	}
	if background != "" {
		vars["background"] = background
	}
	if sel, ok := scheme.Colors["SELECTION_BACKGROUND"]; ok {
		vars["selection_background"] = sel
	}
	if caretRow, ok := scheme.Colors["CARET_ROW_COLOR"]; ok {
		vars["line_highlight_color"] = caretRow
	}
	if gutter, ok := scheme.Colors["LINE_NUMBERS_COLOR"]; ok {
		vars["gutter_foreground_color"] = gutter
	}

	// JSON and YAML keys inherit the text color when the source scheme
	// does not style them.
	for _, name := range []string{"JSON Keys", "YAML Keys"} {
		if gc, ok := groups[name]; !ok || gc.foreground == "" {
			fallback := vars["textcolor"]
			if fallback == "" {
				fallback = "#000000"
			}
			groups[name] = groupColor{foreground: fallback}
		}
	}

	for _, group := range sublimeGroups {
		gc, ok := groups[group.name]
		if !ok || gc.foreground == "" {
			continue
		}
		vars[group.variable] = gc.foreground
	}

	globals := out.Globals
	globals["background"] = resolver.Ref("background")
	globals["foreground"] = resolver.Ref("textcolor")
	globals["find_highlight_foreground"] = resolver.Ref("textcolor")
	globals["caret"] = resolver.Ref("textcolor")
	lineHighlight := resolver.Ref("background")
	if _, ok := vars["line_highlight_color"]; ok {
		lineHighlight = resolver.Ref("line_highlight_color")
	}
	globals["line_highlight"] = lineHighlight
	globals["active_guide"] = lineHighlight
	globals["selection"] = resolver.Ref("selection_background")
	globals["inactive_selection"] = resolver.Ref("selection_background")
	globals["find_highlight"] = resolver.Ref("selection_background")
	globals["selection_foreground"] = resolver.Ref("textcolor")
	gutterFg := resolver.Ref("textcolor")
	if _, ok := vars["gutter_foreground_color"]; ok {
		gutterFg = resolver.Ref("gutter_foreground_color")
	}
	globals["gutter_foreground"] = gutterFg
	globals["gutter_background"] = resolver.Ref("background")

	globals["line_diff_width"] = "10"
	globals["line_diff_added"] = resolver.Ref("--greenish")
	globals["line_diff_modified"] = resolver.Ref("selection_background")
	globals["line_diff_deleted"] = resolver.Ref("--redish")
	globals["popup_css"] = buildPopupCSS(popupColors)

	out.Rules = buildSublimeRules(scheme, groups, vars)

	if _, err := resolver.ResolveAll(out.Variables); err != nil {
		return nil, err
	}
	return out, nil
}

// buildPopupCSS prepends an html block declaring the popup palette as CSS
// variables to the static rule body. minihtml only derives CSS variables for
// the stock scheme colors, so every --popup_* name the rules reference has
// to be defined here explicitly.
func buildPopupCSS(colors map[string]string) string {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("\nhtml {\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  --%s: %s;\n", name, colors[name])
	}
	b.WriteString("}\n")
	b.WriteString(popupCSSRules)
	return b.String()
}

// collectGroupColors gathers per-group colors from the scheme's attributes.
// Within a group the first attribute with a color wins unless a priority
// attribute overrides it.
func collectGroupColors(scheme *intellij.Scheme) map[string]groupColor {
	groups := make(map[string]groupColor)
	unmapped := 0
	mapped := make(map[string]bool)
	for _, group := range sublimeGroups {
		for _, name := range group.attrs {
			mapped[name] = true
		}
	}
	for name := range scheme.Attributes {
		if !mapped[name] {
			unmapped++
			log.Debugf("no semantic group for attribute %q, dropping", name)
		}
	}
	if unmapped > 0 {
		log.Debugf("%d attributes had no semantic group", unmapped)
	}

	for _, group := range sublimeGroups {
		for _, attrName := range group.attrs {
			attr, ok := scheme.Attributes[attrName]
			if !ok {
				continue
			}
			gc, have := groups[group.name]
			if have && gc.foreground != "" && !sublimePriorityAttrs[attrName] {
				continue
			}
			if attr.Foreground != "" {
				gc.foreground = attr.Foreground
			}
			if attr.Background != "" {
				gc.background = attr.Background
			}
			gc.bold = attr.Bold
			gc.italic = attr.Italic
			groups[group.name] = gc
		}
	}
	return groups
}

func buildSublimeRules(scheme *intellij.Scheme, groups map[string]groupColor, vars map[string]string) []sublime.Rule {
	var rules []sublime.Rule

	for _, group := range sublimeGroups {
		gc, ok := groups[group.name]
		if !ok || (gc.foreground == "" && gc.background == "") {
			continue
		}
		rule := sublime.Rule{Name: group.name, Scope: group.scopes}
		if _, ok := vars[group.variable]; ok {
			rule.Foreground = resolver.Ref(group.variable)
		} else if gc.foreground != "" {
			rule.Foreground = gc.foreground
		}
		if gc.background != "" {
			rule.Background = gc.background
		}
		rule.FontStyle = fontStyle(gc.bold, gc.italic)
		rules = append(rules, rule)
	}

	if _, ok := scheme.Colors["SELECTION_BACKGROUND"]; ok {
		rules = append(rules, sublime.Rule{
			Scope:      "brackethighlighter",
			Background: resolver.Ref("selection_background"),
		})
	}

	for _, region := range []struct{ name, scope string }{
		{"region red color", "region.redish"},
		{"region blue color", "region.bluish"},
		{"", "debugger.selection"},
		{"region orange color", "region.orangish"},
		{"region yellow color", "region.yellowish"},
		{"region green color", "region.greenish"},
		{"region purple color", "region.purplish"},
		{"region pink color", "region.pinkish"},
	} {
		bg := resolver.Ref("background")
		if region.scope == "debugger.selection" {
			bg = resolver.Ref("selection_background")
		}
		rules = append(rules, sublime.Rule{Name: region.name, Scope: region.scope, Background: bg})
	}

	diffRule := func(name, scope, bgVar string) sublime.Rule {
		return sublime.Rule{
			Name:       name,
			Scope:      scope,
			Foreground: resolver.Ref("textcolor"),
			Background: resolver.Ref(bgVar),
		}
	}
	rules = append(rules,
		diffRule("Inserted", "markup.inserted", "inserted"),
		diffRule("Changed", "markup.changed", "modified"),
		diffRule("Deleted", "markup.deleted", "deleted"),
		diffRule("Diff Deleted", "diff.deleted", "modified"),
		diffRule("Diff deleted char", "diff.deleted.char", "modified"),
		diffRule("Diff inserted", "diff.inserted", "modified"),
		diffRule("Diff inserted char", "diff.inserted.char", "modified"),
	)

	for _, lsp := range []struct{ name, scope, fgVar string }{
		{"lsp info color", "markup.info.lsp", "--bluish"},
		{"lsp hint color", "markup.info.hint.lsp", "--greenish"},
		{"lsp warning color", "markup.warning.lsp", "--yellowish"},
		{"lsp error color", "markup.error.lsp", "--redish"},
	} {
		rules = append(rules, sublime.Rule{
			Name:       lsp.name,
			Scope:      lsp.scope,
			Foreground: resolver.Ref(lsp.fgVar),
			Background: resolver.Ref("background"),
		})
	}

	rules = append(rules,
		diffRule("Sbs compare diff deleted", "diff.deleted.sbs-compare", "deleted"),
		diffRule("Sbs compare diff char deleted", "diff.deleted.char.sbs-compare", "modified"),
		diffRule("Sbs compare diff inserted", "diff.inserted.sbs-compare", "inserted"),
		diffRule("Sbs compare diff inserted char", "diff.inserted.char.sbs-compare", "modified"),
	)

	return rules
}

func fontStyle(bold, italic bool) string {
	var parts []string
	if bold {
		parts = append(parts, "bold")
	}
	if italic {
		parts = append(parts, "italic")
	}
	return strings.Join(parts, " ")
}
