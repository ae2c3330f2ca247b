// Package theme classifies a theme's polarity from its base background and
// carries the immutable per-polarity accent configuration the drivers select
// from. Accent tables are plain values handed to each conversion run, so
// parallel runs share nothing mutable.
package theme

import (
	"strings"

	"github.com/schemeforge/themeport/internal/color"
)

// Polarity is the light/dark classification of a theme.
type Polarity int

const (
	Dark Polarity = iota
	Light
)

func (p Polarity) String() string {
	if p == Light {
		return "Light"
	}
	return "Dark"
}

// Classify derives polarity from the base background with the
// perceptual-weighted quick brightness check, threshold 128. Absent,
// malformed, or non-6-digit backgrounds default to Dark.
func Classify(background string) Polarity {
	if !isPlainHex(background) {
		return Dark
	}
	if color.QuickBrightness(background) > 128 {
		return Light
	}
	return Dark
}

// ClassifyWCAG derives polarity from WCAG relative luminance, threshold 0.5.
// The IntelliJ-to-Sublime direction uses this variant for parity with the
// accent palettes it ships; it can disagree with Classify for backgrounds
// near mid gray.
func ClassifyWCAG(background string) Polarity {
	if !isPlainHex(background) {
		return Dark
	}
	if color.RelativeLuminance(background) > 0.5 {
		return Light
	}
	return Dark
}

func isPlainHex(s string) bool {
	return len(s) == 7 && strings.HasPrefix(s, "#") && color.IsLiteral(s)
}

// Accents is the hard-coded secondary color set for one polarity: the named
// accent variables, git diff backgrounds, and popup colors the source dialect
// does not supply.
type Accents struct {
	Variables       map[string]string
	GitDiff         map[string]string
	Popup           map[string]string
	GenericPopupBG  string
	PopupFallbackBG string
	// PopupOffset is the additive per-channel shift applied to the editor
	// background to derive the popup background.
	PopupOffset int
}

var lightAccents = Accents{
	Variables: map[string]string{
		"--bluish":    "#343e5e",
		"--cyanish":   "#316a6a",
		"--greenish":  "#388E3C",
		"--orangish":  "#F78D8C",
		"--pinkish":   "#D3859A",
		"--purplish":  "#e5bb00",
		"--redish":    "#9b362b",
		"--yellowish": "#B28C00",
	},
	GitDiff: map[string]string{
		"inserted": "#BEE6BE",
		"deleted":  "#e4bbb2",
		"modified": "#C2D8F2",
	},
	Popup: map[string]string{
		"popup_redish":    "#cc6b61",
		"popup_yellowish": "#B28C00",
		"popup_greenish":  "#BEE6BE",
		"popup_bluish":    "#C2D8F2",
		"popup_cyanish":   "#316a6a",
	},
	GenericPopupBG:  "#fff1cc",
	PopupFallbackBG: "#404040",
	PopupOffset:     -17,
}

var darkAccents = Accents{
	Variables: map[string]string{
		"--cyanish":   "#9acd87",
		"--bluish":    "#85dacc",
		"--greenish":  "#b8bb26",
		"--orangish":  "#ebdbb2",
		"--pinkish":   "#d3859a",
		"--purplish":  "#ebdbb2",
		"--redish":    "#dd7b70",
		"--yellowish": "#fabd2f",
	},
	GitDiff: map[string]string{
		"inserted": "#334f40",
		"deleted":  "#774F51",
		"modified": "#43607c",
	},
	Popup: map[string]string{
		"popup_redish":    "#ff6d62",
		"popup_bluish":    "#43607c",
		"popup_greenish":  "#334f40",
		"popup_yellowish": "#fabd2f",
		"popup_cyanish":   "#9acd87",
	},
	GenericPopupBG:  "",
	PopupFallbackBG: "#c0c0c0",
	PopupOffset:     20,
}

// AccentsFor returns the accent set for a polarity. Maps are copied so a
// driver can extend them without touching package data.
func AccentsFor(p Polarity) Accents {
	src := darkAccents
	if p == Light {
		src = lightAccents
	}
	out := src
	out.Variables = copyMap(src.Variables)
	out.GitDiff = copyMap(src.GitDiff)
	out.Popup = copyMap(src.Popup)
	return out
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// PopupBackground derives the popup background a fixed offset from the main
// background for contrast against it. Non-6-digit backgrounds get the
// polarity's fixed fallback.
func PopupBackground(background string, a Accents) string {
	if !isPlainHex(background) {
		return a.PopupFallbackBG
	}
	return color.OffsetChannels(background, a.PopupOffset)
}
