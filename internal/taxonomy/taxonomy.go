// Package taxonomy maps source-dialect classification keys (TextMate scope
// paths, attribute identifiers) onto canonical semantic categories through an
// ordered rule table. An unmatched key is not an error: the caller treats it
// as "no opinion" and drops the source entry, which keeps conversion lossy by
// policy instead of failing on vocabulary the table never heard of.
package taxonomy

import "strings"

// Rule pairs a source key (exact dotted path or prefix) with the canonical
// category it classifies to.
type Rule struct {
	Key      string
	Category string
}

// Table is an ordered rule set. Insertion order is the tie-break between
// rules of equal prefix length, so specific overrides must be listed before
// generic catch-alls.
type Table struct {
	rules []Rule
	index map[string]int
}

// NewTable builds a table from rules in order. A duplicate key keeps its
// first occurrence.
func NewTable(rules []Rule) *Table {
	t := &Table{
		rules: rules,
		index: make(map[string]int, len(rules)),
	}
	for i, r := range rules {
		if _, ok := t.index[r.Key]; !ok {
			t.index[r.Key] = i
		}
	}
	return t
}

// Len reports the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}

// Classify resolves a source key to its canonical category. The full key is
// tried first; compound keys are then split on commas and each candidate is
// reduced dot component by dot component from most to least specific. The
// first table hit wins. ok is false when no rule matches at any granularity.
func (t *Table) Classify(sourceKey string) (string, bool) {
	if i, hit := t.index[sourceKey]; hit {
		return t.rules[i].Category, true
	}

	for _, candidate := range strings.Split(sourceKey, ",") {
		candidate = strings.TrimSpace(candidate)
		parts := strings.Split(candidate, ".")
		for n := len(parts); n > 0; n-- {
			prefix := strings.Join(parts[:n], ".")
			if i, hit := t.index[prefix]; hit {
				return t.rules[i].Category, true
			}
		}
	}

	return "", false
}
