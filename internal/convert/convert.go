// Package convert implements the conversion drivers. Each driver is a pure
// function from a parsed source document to a target document tree: it
// resolves the source's variable table up front, synthesizes a palette,
// classifies polarity, and fills the target's slots from static tables.
// Any resolution error aborts the whole conversion; callers must not write
// partial output.
package convert

import (
	"errors"

	"github.com/schemeforge/themeport/internal/color"
	"github.com/schemeforge/themeport/internal/resolver"
)

// resolveValue resolves a literal-or-reference value to canonical hex.
// Returns "" for values that resolve to something other than a color.
// Unresolved references and cycles propagate so the driver can abort.
func resolveValue(value string, vars map[string]string) (string, error) {
	if value == "" {
		return "", nil
	}
	hex, err := resolver.Resolve(value, vars, resolver.DefaultDepth)
	if err != nil {
		if errors.Is(err, color.ErrInvalidColor) {
			return "", nil
		}
		return "", err
	}
	return hex, nil
}
