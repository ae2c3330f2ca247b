package convert

import (
	"strings"

	"github.com/schemeforge/themeport/internal/color"
	"github.com/schemeforge/themeport/internal/dialect/intellij"
	"github.com/schemeforge/themeport/internal/dialect/zed"
	"github.com/schemeforge/themeport/internal/log"
)

const zedFallbackForeground = "#BBBBBB"

// IntelliJToZed converts an .icls scheme into a Zed theme. Author defaults
// to "Converted from IntelliJ (<name>)" when empty.
func IntelliJToZed(scheme *intellij.Scheme, author string) (*zed.Document, error) {
	name := scheme.Name
	if name == "" {
		name = "Converted Theme"
	}
	if author == "" {
		author = "Converted from IntelliJ (" + name + ")"
	}

	index := flattenColors(scheme)
	ui := mapUIColors(index)
	syntax := mapSyntax(scheme)

	fallback := ui["editor.foreground"]
	if fallback == "" {
		fallback = zedFallbackForeground
	}
	fillEssentialTokens(syntax, fallback)
	applyAdditionalMappings(ui)

	appearance := zedAppearance(ui["background"])

	for _, slot := range []string{"info", "warning", "error", "hint", "success"} {
		if _, ok := ui[slot]; !ok {
			ui[slot] = fallback
		}
	}

	caretRow := index["CARET_ROW_COLOR"]
	if caretRow == "" {
		caretRow = ui["editor.background"]
	}
	if caretRow != "" {
		if appearance == zed.AppearanceLight {
			ui["border"] = color.AdjustBrightness(caretRow, 0.85)
		} else {
			ui["border"] = color.AdjustBrightness(caretRow, 1.2)
		}
	}

	extras := zedDarkExtras
	if appearance == zed.AppearanceLight {
		extras = zedLightExtras
	}
	for slot, hex := range extras {
		ui[slot] = mustHex(hex)
	}

	doc := zed.New(name, author, appearance)
	style := &doc.Themes[0].Style
	style.Colors = ui
	style.Syntax = syntax
	style.Players = defaultPlayers()
	return doc, nil
}

// flattenColors indexes the scheme's colors section under bare names and its
// attribute colors under NAME.FOREGROUND / NAME.BACKGROUND.
func flattenColors(scheme *intellij.Scheme) map[string]string {
	index := make(map[string]string, len(scheme.Colors)+2*len(scheme.Attributes))
	for name, hex := range scheme.Colors {
		index[name] = hex
	}
	for name, attr := range scheme.Attributes {
		if attr.Foreground != "" {
			index[name+".FOREGROUND"] = attr.Foreground
		}
		if attr.Background != "" {
			index[name+".BACKGROUND"] = attr.Background
		}
	}
	return index
}

func mapUIColors(index map[string]string) map[string]string {
	ui := make(map[string]string)
	for _, mapping := range zedColorMapping {
		hex, ok := index[mapping.key]
		if !ok {
			continue
		}
		for _, slot := range mapping.slots {
			ui[slot] = hex
		}
	}

	if bg, ok := index["TEXT.BACKGROUND"]; ok {
		if _, have := ui["background"]; !have {
			ui["background"] = bg
		}
		if _, have := ui["editor.background"]; !have {
			ui["editor.background"] = bg
		}
		darker := color.AdjustBrightness(bg, 0.98)
		for _, slot := range zedDerivedSlots {
			if _, have := ui[slot]; !have {
				ui[slot] = darker
			}
		}
		if _, have := ui["element.hover"]; !have {
			ui["element.hover"] = color.AdjustBrightness(bg, 1.1)
		}
		if _, have := ui["element.active"]; !have {
			ui["element.active"] = color.AdjustBrightness(bg, 0.9)
		}
		if _, have := ui["element.disabled"]; !have {
			ui["element.disabled"] = color.AdjustSaturation(color.AdjustBrightness(bg, 0.7), 0.5)
		}
	}
	if fg, ok := index["TEXT.FOREGROUND"]; ok {
		if _, have := ui["text"]; !have {
			ui["text"] = fg
		}
		if _, have := ui["editor.foreground"]; !have {
			ui["editor.foreground"] = fg
		}
	}
	return ui
}

// mapSyntax applies the syntax table in two passes: DEFAULT_ attributes
// first, then the rest without overriding anything a DEFAULT_ attribute
// already claimed.
func mapSyntax(scheme *intellij.Scheme) map[string]zed.Highlight {
	syntax := make(map[string]zed.Highlight)
	unmapped := 0

	for _, mapping := range zedSyntaxMapping {
		if !strings.HasPrefix(mapping.attr, "DEFAULT_") {
			continue
		}
		attr, ok := scheme.Attributes[mapping.attr]
		if !ok {
			continue
		}
		hl, ok := highlightFrom(attr)
		if !ok {
			continue
		}
		for _, token := range mapping.tokens {
			syntax[token] = hl
		}
	}

	for _, mapping := range zedSyntaxMapping {
		if strings.HasPrefix(mapping.attr, "DEFAULT_") {
			continue
		}
		attr, ok := scheme.Attributes[mapping.attr]
		if !ok {
			continue
		}
		hl, ok := highlightFrom(attr)
		if !ok {
			continue
		}
		claimed := false
		for _, token := range mapping.tokens {
			if _, have := syntax[token]; have {
				claimed = true
				break
			}
		}
		if claimed {
			continue
		}
		for _, token := range mapping.tokens {
			syntax[token] = hl
		}
	}

	mapped := make(map[string]bool, len(zedSyntaxMapping))
	for _, mapping := range zedSyntaxMapping {
		mapped[mapping.attr] = true
	}
	for name := range scheme.Attributes {
		if !mapped[name] {
			unmapped++
			log.Debugf("no syntax token for attribute %q, dropping", name)
		}
	}
	if unmapped > 0 {
		log.Debugf("%d attributes had no syntax token", unmapped)
	}
	return syntax
}

func highlightFrom(attr intellij.Attribute) (zed.Highlight, bool) {
	var hl zed.Highlight
	hl.Color = attr.Foreground
	if attr.Italic {
		style := "italic"
		hl.FontStyle = &style
	}
	if attr.Bold {
		weight := "bold"
		hl.FontWeight = &weight
	}
	if hl.Color == "" && hl.FontStyle == nil && hl.FontWeight == nil {
		return zed.Highlight{}, false
	}
	return hl, true
}

func fillEssentialTokens(syntax map[string]zed.Highlight, fallback string) {
	for _, token := range zedEssentialTokens {
		hl, ok := syntax[token]
		if !ok {
			syntax[token] = zed.Highlight{Color: fallback}
			continue
		}
		if hl.Color == "" {
			hl.Color = fallback
			syntax[token] = hl
		}
	}
}

func applyAdditionalMappings(ui map[string]string) {
	for _, mapping := range zedAdditionalMappings {
		if _, have := ui[mapping.target]; have {
			continue
		}
		if strings.HasPrefix(mapping.source, "#") {
			ui[mapping.target] = mustHex(mapping.source)
			continue
		}
		if hex, ok := ui[mapping.source]; ok {
			ui[mapping.target] = hex
			continue
		}
		// text.muted and text.placeholder borrow text.disabled when the
		// preferred source never got a value.
		if mapping.source == "text.muted" || mapping.source == "text.placeholder" {
			if hex, ok := ui["text.disabled"]; ok {
				ui[mapping.target] = hex
			}
		}
	}
}

// zedAppearance keeps the channel-sum heuristic this direction has always
// used; it can disagree with the luminance classifiers near mid gray.
func zedAppearance(background string) string {
	if background == "" {
		return zed.AppearanceDark
	}
	rgb := color.HexToRGB(background)
	if (rgb.R+rgb.G+rgb.B)*255 > 384 {
		return zed.AppearanceLight
	}
	return zed.AppearanceDark
}

func defaultPlayers() []zed.Player {
	players := make([]zed.Player, 0, len(zedPlayerColors))
	for _, c := range zedPlayerColors {
		base := mustHex(c)
		players = append(players, zed.Player{
			Cursor:     color.WithAlpha(base, 1.0),
			Background: color.WithAlpha(base, 1.0),
			Selection:  color.WithAlpha(base, 0.24),
		})
	}
	return players
}

func mustHex(raw string) string {
	hex, err := color.Normalize(raw)
	if err != nil {
		return raw
	}
	return hex
}
