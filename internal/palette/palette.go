// Package palette synthesizes the deduplicated named color set backing a
// converted theme and answers slot lookups over it. Entries keep insertion
// order so "first entry" fallbacks are deterministic, and every value is a
// fully resolved literal color, never a reference.
package palette

import (
	"errors"

	"github.com/schemeforge/themeport/internal/color"
	"github.com/schemeforge/themeport/internal/resolver"
)

// TransparentName is the synthetic always-present entry.
const TransparentName = "Transparent"

// TransparentColor is full transparency: white with a zero alpha channel.
const TransparentColor = "#FFFFFF00"

// Naming maps a source variable (or semantic category) to the human-readable
// palette name its resolved color is stored under.
type Naming struct {
	Variable string
	Name     string
}

// Chain is the ordered preference list used to pick a palette entry for one
// output slot, with a terminal default tried after the preferred names.
type Chain struct {
	Names   []string
	Default string
}

// Palette is an insertion-ordered name to literal color mapping. Built once
// per conversion run, read-only afterwards.
type Palette struct {
	names  []string
	colors map[string]string
}

func New() *Palette {
	return &Palette{colors: make(map[string]string)}
}

// Synthesize resolves each named source variable through the table and
// assigns it the palette name from the naming list, in list order. Variables
// absent from the table or resolving to something that is not a literal
// color contribute no entry; dangling references and cycles abort. Distinct
// names keep their own entry even when they resolve to the same concrete
// color. The Transparent entry is appended unconditionally.
func Synthesize(vars map[string]string, namings []Naming) (*Palette, error) {
	p := New()
	for _, naming := range namings {
		raw, ok := vars[naming.Variable]
		if !ok {
			continue
		}
		resolved, err := resolver.Resolve(raw, vars, resolver.DefaultDepth)
		if err != nil {
			if errors.Is(err, color.ErrInvalidColor) {
				continue
			}
			return nil, err
		}
		p.Set(naming.Name, resolved)
	}
	p.Set(TransparentName, TransparentColor)
	return p, nil
}

// Set adds or replaces an entry. A replaced entry keeps its original
// position.
func (p *Palette) Set(name, hex string) {
	if _, ok := p.colors[name]; !ok {
		p.names = append(p.names, name)
	}
	p.colors[name] = hex
}

func (p *Palette) Get(name string) (string, bool) {
	c, ok := p.colors[name]
	return c, ok
}

func (p *Palette) Has(name string) bool {
	_, ok := p.colors[name]
	return ok
}

func (p *Palette) Len() int {
	return len(p.names)
}

// Names returns the entry names in insertion order.
func (p *Palette) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Colors returns a plain map copy of the palette.
func (p *Palette) Colors() map[string]string {
	out := make(map[string]string, len(p.colors))
	for k, v := range p.colors {
		out[k] = v
	}
	return out
}

// Pick walks the chain and returns the first name present, then the chain's
// default, then the first-inserted entry. The last resort is a deliberately
// weak guarantee: callers needing strict existence must ensure every terminal
// default is always synthesized. An empty palette returns "".
func (p *Palette) Pick(chain Chain) string {
	for _, name := range chain.Names {
		if p.Has(name) {
			return name
		}
	}
	if chain.Default != "" && p.Has(chain.Default) {
		return chain.Default
	}
	if len(p.names) > 0 {
		return p.names[0]
	}
	return ""
}

// PickNames is Pick over an ad-hoc preference list with a default of "Text",
// matching the most common slot policy.
func (p *Palette) PickNames(names ...string) string {
	return p.Pick(Chain{Names: names, Default: "Text"})
}

// FindByColor reverse-resolves a concrete color to the first palette name
// holding exactly that normalized value. Unmatched (or unparseable) colors
// return the fallback name so output sections stay reference-only.
func (p *Palette) FindByColor(hex, fallback string) string {
	normalized, err := color.Normalize(hex)
	if err != nil {
		return fallback
	}
	for _, name := range p.names {
		if p.colors[name] == normalized {
			return name
		}
	}
	return fallback
}
