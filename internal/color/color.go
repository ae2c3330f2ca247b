// Package color implements the pure color algebra the converters are built
// on: hex normalization, luminance, brightness/saturation scaling and alpha
// composition. All functions take and return canonical uppercase hex strings
// ("#RRGGBB" or "#RRGGBBAA"); two colors are equal iff their canonical forms
// are byte-identical.
package color

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidColor reports a malformed hex literal.
var ErrInvalidColor = errors.New("invalid color")

type RGB struct {
	R, G, B float64
}

// Normalize canonicalizes a raw color string: whitespace stripped, "#" prefix
// added when missing, 3/4-digit shorthand expanded by per-channel
// duplication, uppercased. Idempotent over its own output.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "#")

	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, raw)
	}

	for _, c := range s {
		if !isHexDigit(c) {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, raw)
		}
	}

	if len(s) <= 4 {
		var b strings.Builder
		for _, c := range s {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		s = b.String()
	}

	return "#" + strings.ToUpper(s), nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsLiteral reports whether raw normalizes to a concrete hex color.
func IsLiteral(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

func HexToRGB(hex string) RGB {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return RGB{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

func RGBToHex(rgb RGB) string {
	r := math.Max(0, math.Min(1, rgb.R))
	g := math.Max(0, math.Min(1, rgb.G))
	b := math.Max(0, math.Min(1, rgb.B))
	return fmt.Sprintf("#%02X%02X%02X", int(r*255), int(g*255), int(b*255))
}

// channels splits a normalized color into 8-bit channel values, alpha
// included when present. ok is false for anything that is not 6 or 8 hex
// digits.
func channels(hex string) ([]int, bool) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, false
	}
	out := make([]int, len(s)/2)
	for i := range out {
		var v int
		if _, err := fmt.Sscanf(s[i*2:i*2+2], "%02x", &v); err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func joinChannels(ch []int) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, v := range ch {
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}

func clamp255(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func sRGBToLinear(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance is the WCAG formula: gamma-decoded channels combined as
// 0.2126 R + 0.7152 G + 0.0722 B. This backs the accent-palette choice in the
// IntelliJ-to-Sublime direction (threshold 0.5).
func RelativeLuminance(hex string) float64 {
	rgb := HexToRGB(hex)
	return 0.2126*sRGBToLinear(rgb.R) + 0.7152*sRGBToLinear(rgb.G) + 0.0722*sRGBToLinear(rgb.B)
}

// QuickBrightness is the perceptual-weighted check (299 R + 587 G + 114 B) /
// 1000 over 0-255 channels. This backs theme polarity (threshold 128). It can
// disagree with RelativeLuminance for backgrounds near the threshold, which
// is why each decision pins its formula.
func QuickBrightness(hex string) float64 {
	ch, ok := channels(hex)
	if !ok {
		return 0
	}
	return (float64(ch[0])*299 + float64(ch[1])*587 + float64(ch[2])*114) / 1000
}

func ContrastRatio(hexFg, hexBg string) float64 {
	lumFg := RelativeLuminance(hexFg)
	lumBg := RelativeLuminance(hexBg)
	lighter := math.Max(lumFg, lumBg)
	darker := math.Min(lumFg, lumBg)
	return (lighter + 0.05) / (darker + 0.05)
}

// AdjustBrightness multiplies each channel by factor and clamps to [0,255].
// factor < 1 darkens, > 1 lightens. Alpha, when present, is untouched.
func AdjustBrightness(hex string, factor float64) string {
	ch, ok := channels(hex)
	if !ok {
		return hex
	}
	for i := 0; i < 3; i++ {
		ch[i] = clamp255(int(float64(ch[i]) * factor))
	}
	return joinChannels(ch)
}

// AdjustSaturation blends each channel toward the (max+min)/2 midpoint.
// factor 0 fully desaturates, 1 is identity, > 1 exaggerates. Grays pass
// through untouched.
func AdjustSaturation(hex string, factor float64) string {
	ch, ok := channels(hex)
	if !ok {
		return hex
	}
	maxC := math.Max(math.Max(float64(ch[0]), float64(ch[1])), float64(ch[2]))
	minC := math.Min(math.Min(float64(ch[0]), float64(ch[1])), float64(ch[2]))
	if maxC == minC {
		return joinChannels(ch)
	}
	mid := (maxC + minC) / 2
	for i := 0; i < 3; i++ {
		ch[i] = clamp255(int(mid + (float64(ch[i])-mid)*factor))
	}
	return joinChannels(ch)
}

// OffsetChannels shifts each channel additively, clamped to [0,255]. Used to
// derive popup backgrounds a fixed distance from the editor background.
func OffsetChannels(hex string, delta int) string {
	ch, ok := channels(hex)
	if !ok {
		return hex
	}
	for i := 0; i < 3; i++ {
		ch[i] = clamp255(ch[i] + delta)
	}
	return joinChannels(ch)
}

// WithAlpha appends round(frac*255) as a hex alpha channel, replacing any
// existing alpha.
func WithAlpha(hex string, frac float64) string {
	ch, ok := channels(hex)
	if !ok {
		return hex
	}
	frac = math.Max(0, math.Min(1, frac))
	alpha := int(math.Round(frac * 255))
	return joinChannels(append(ch[:3], alpha))
}
