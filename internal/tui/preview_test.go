package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette() map[string]string {
	return map[string]string{
		"Base":        "#303841",
		"Text":        "#D8DEE9",
		"Red":         "#EC5F66",
		"Green":       "#99C794",
		"Keyword":     "#C695C6",
		"Transparent": "#FFFFFF00",
	}
}

func TestNewModelSortsStably(t *testing.T) {
	a := NewModel("x", testPalette())
	b := NewModel("x", testPalette())

	require.Len(t, a.entries, 6)
	for i := range a.entries {
		assert.Equal(t, a.entries[i], b.entries[i])
	}
}

func TestModelNavigation(t *testing.T) {
	m := NewModel("x", testPalette())
	assert.Equal(t, 0, m.cursor)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	m = next.(Model)
	assert.Equal(t, len(m.entries)-1, m.cursor)

	// Down at the bottom stays put.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, len(m.entries)-1, m.cursor)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
}

func TestViewListsEveryEntry(t *testing.T) {
	m := NewModel("Mariana Palette", testPalette())
	view := m.View()

	assert.Contains(t, view, "Mariana Palette")
	assert.Contains(t, view, "6 colors")
	for name := range testPalette() {
		assert.Contains(t, view, name)
	}
	assert.Contains(t, view, "#EC5F66")
}

func TestWindowFollowsCursor(t *testing.T) {
	m := NewModel("x", testPalette())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 9})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	m = next.(Model)

	view := m.View()
	last := m.entries[len(m.entries)-1]
	assert.Contains(t, view, last.Name)
	assert.Equal(t, 3, strings.Count(view, "#"), "three visible rows")
}
