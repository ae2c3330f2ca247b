package convert

import (
	"fmt"

	"github.com/schemeforge/themeport/internal/dialect/fleet"
	"github.com/schemeforge/themeport/internal/dialect/sublime"
	"github.com/schemeforge/themeport/internal/log"
	"github.com/schemeforge/themeport/internal/palette"
	"github.com/schemeforge/themeport/internal/resolver"
	"github.com/schemeforge/themeport/internal/taxonomy"
	"github.com/schemeforge/themeport/internal/theme"
)

// SublimeToFleet converts a Sublime color scheme into a Fleet theme. The
// output's colors and textAttributes sections reference palette names only;
// literal hex appears nowhere outside the palette itself.
func SublimeToFleet(scheme *sublime.Scheme) (*fleet.Document, error) {
	if _, err := resolver.ResolveAll(scheme.Variables); err != nil {
		return nil, fmt.Errorf("resolving variables: %w", err)
	}

	pal, err := palette.Synthesize(scheme.Variables, fleetNamings)
	if err != nil {
		return nil, fmt.Errorf("synthesizing palette: %w", err)
	}
	backfillFromRules(pal, scheme)

	background, err := resolveValue(scheme.Globals["background"], scheme.Variables)
	if err != nil {
		return nil, err
	}
	foreground, err := resolveValue(scheme.Globals["foreground"], scheme.Variables)
	if err != nil {
		return nil, err
	}
	// Schemes that name their base variables something else still get Base
	// and Text, taken from the resolved globals.
	if background != "" && !pal.Has("Base") {
		pal.Set("Base", background)
	}
	if foreground != "" && !pal.Has("Text") {
		pal.Set("Text", foreground)
	}
	polarity := theme.Classify(background)

	name := scheme.Name
	if name == "" {
		name = "Converted Theme"
	}
	doc := fleet.New(name, polarity.String())

	for _, slot := range fleetColorSlots {
		doc.Colors[slot.key] = pal.Pick(slot.chain)
	}

	lineHighlight, err := resolveValue(scheme.Globals["line_highlight"], scheme.Variables)
	if err != nil {
		return nil, err
	}
	selection, err := resolveValue(scheme.Globals["selection"], scheme.Variables)
	if err != nil {
		return nil, err
	}

	// Reverse-resolve the globals to palette names, registering the literal
	// under the fallback name when nothing holds it yet. Output sections must
	// never carry a name the palette lacks.
	lineHL := pal.PickNames("LineHighlight", "Selection", "Base")
	if lineHighlight != "" {
		lineHL = pal.FindByColor(lineHighlight, "LineHighlight")
		if !pal.Has(lineHL) {
			pal.Set(lineHL, lineHighlight)
		}
	}
	doc.Colors["editor.currentLine.background.default"] = lineHL
	doc.Colors["editor.currentLine.background.focused"] = lineHL

	sel := pal.PickNames("Selection", "LineHighlight", "Base")
	if selection != "" {
		sel = pal.FindByColor(selection, "Selection")
		if !pal.Has(sel) {
			pal.Set(sel, selection)
		}
	}
	doc.Colors["background.primary"] = sel
	doc.Colors["tab.background.selected"] = sel
	doc.Colors["tab.background.selectedFocused"] = sel

	for _, slot := range fleetAttrSlots {
		attr := fleet.TextAttribute{FontModifier: slot.font}
		if hasChain(slot.fg) {
			attr.ForegroundColor = pal.Pick(slot.fg)
		}
		if hasChain(slot.bg) {
			attr.BackgroundColor = pal.Pick(slot.bg)
		}
		doc.TextAttributes[slot.key] = attr
	}

	doc.TextAttributes["editor.selection"] = fleet.TextAttribute{BackgroundColor: sel}
	doc.TextAttributes["editor.selection.focused"] = fleet.TextAttribute{BackgroundColor: sel}
	doc.TextAttributes["editor.indentGuide"] = fleet.TextAttribute{ForegroundColor: sel}
	doc.TextAttributes["editor.indentGuide.current"] = fleet.TextAttribute{ForegroundColor: sel}

	added := pal.PickNames("DiffInserted", "Green")
	deleted := pal.PickNames("DiffDeleted", "Red")
	modified := pal.PickNames("DiffModified", "Blue")
	for key, name := range map[string]string{
		"diff.added":         added,
		"diff.added.word":    added,
		"diff.deleted":       deleted,
		"diff.deleted.word":  deleted,
		"diff.modified":      modified,
		"diff.modified.word": modified,
	} {
		doc.TextAttributes[key] = fleet.TextAttribute{BackgroundColor: name}
	}

	for name, hex := range pal.Colors() {
		doc.Palette[name] = hex
	}

	return doc, nil
}

var fleetScopes = taxonomy.NewTable(fleetScopeRules)

// backfillFromRules fills palette entries from scope rules when the scheme
// does not carry the corresponding semantic variable. Unmapped scopes are
// dropped, not errors.
func backfillFromRules(pal *palette.Palette, scheme *sublime.Scheme) {
	semanticName := make(map[string]string, len(fleetBackfill))
	for _, entry := range fleetBackfill {
		semanticName[entry.semantic] = entry.name
	}

	unmapped := 0
	for _, rule := range scheme.Rules {
		if rule.Scope == "" || rule.Foreground == "" {
			continue
		}
		semantic, ok := fleetScopes.Classify(rule.Scope)
		if !ok {
			unmapped++
			log.Debugf("no semantic mapping for scope %q, dropping", rule.Scope)
			continue
		}
		name, ok := semanticName[semantic]
		if !ok || pal.Has(name) {
			continue
		}
		hex, err := resolveValue(rule.Foreground, scheme.Variables)
		if err != nil || hex == "" {
			continue
		}
		pal.Set(name, hex)
	}
	if unmapped > 0 {
		log.Debugf("%d scope rules had no semantic mapping", unmapped)
	}
}

func hasChain(c palette.Chain) bool {
	return len(c.Names) > 0 || c.Default != ""
}
