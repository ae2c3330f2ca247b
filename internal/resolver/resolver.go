// Package resolver resolves symbolic color references against an immutable
// variable table. A value is either a literal hex color or a "var(name)"
// indirection whose target may itself be another indirection. Resolution
// carries an explicit depth budget so a reference cycle is a typed failure
// rather than a stack overflow.
package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/schemeforge/themeport/internal/color"
)

// DefaultDepth bounds reference chains. Real themes nest two or three levels;
// anything deeper than this is a cycle in practice.
const DefaultDepth = 32

var (
	ErrUnresolvedReference = errors.New("unresolved reference")
	ErrCycleDetected       = errors.New("reference cycle detected")
)

// RefName extracts the variable name from a "var(name)" wrapper. ok is false
// when the value is not a reference.
func RefName(value string) (string, bool) {
	v := strings.TrimSpace(value)
	if strings.HasPrefix(v, "var(") && strings.HasSuffix(v, ")") {
		return v[4 : len(v)-1], true
	}
	return "", false
}

// Ref wraps a variable name in the reference syntax.
func Ref(name string) string {
	return "var(" + name + ")"
}

// Resolve reduces value to a normalized literal color against vars. The depth
// budget is decremented per indirection; exhausting it fails with
// ErrCycleDetected, an absent variable with ErrUnresolvedReference, and a
// terminal non-color literal with color.ErrInvalidColor.
func Resolve(value string, vars map[string]string, depth int) (string, error) {
	name, isRef := RefName(value)
	if !isRef {
		return color.Normalize(value)
	}
	if depth <= 0 {
		return "", fmt.Errorf("%w: via %q", ErrCycleDetected, value)
	}
	next, ok := vars[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnresolvedReference, name)
	}
	return Resolve(next, vars, depth-1)
}

// ResolveAll resolves the full closure of a variable table, failing fast on
// the first dangling reference or cycle. Variables whose terminal value is
// not a color (font names, widths) are omitted from the result rather than
// treated as failures. The input table is left untouched.
func ResolveAll(vars map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(vars))
	for name, value := range vars {
		resolved, err := Resolve(value, vars, DefaultDepth)
		if err != nil {
			if errors.Is(err, color.ErrInvalidColor) {
				continue
			}
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}
		out[name] = resolved
	}
	return out, nil
}
