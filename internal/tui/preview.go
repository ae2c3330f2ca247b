// Package tui renders an interactive palette preview for a converted theme:
// one hue-sorted swatch row per palette entry, navigable with the arrow keys.
package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Entry is one named palette color.
type Entry struct {
	Name string
	Hex  string
}

// Model is the preview's bubbletea model.
type Model struct {
	title   string
	entries []Entry
	cursor  int
	height  int
	styles  Styles
}

// NewModel builds a preview over a palette map. Entries are sorted by hue so
// related colors sit next to each other, grays first.
func NewModel(title string, colors map[string]string) Model {
	entries := make([]Entry, 0, len(colors))
	for name, hex := range colors {
		entries = append(entries, Entry{Name: name, Hex: hex})
	}
	sortByHue(entries)
	return Model{
		title:   title,
		entries: entries,
		styles:  defaultStyles(),
	}
}

// sortByHue orders entries by HCL hue, then lightness, with ties broken by
// name so the order is stable across runs. Unparseable colors sort last.
func sortByHue(entries []Entry) {
	type key struct {
		ok     bool
		hue    float64
		chroma float64
		light  float64
	}
	keys := make(map[string]key, len(entries))
	for _, e := range entries {
		c, err := colorful.Hex(strings.ToLower(trimAlpha(e.Hex)))
		if err != nil {
			keys[e.Name] = key{}
			continue
		}
		h, ch, l := c.Hcl()
		keys[e.Name] = key{ok: true, hue: h, chroma: ch, light: l}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		ki, kj := keys[entries[i].Name], keys[entries[j].Name]
		if ki.ok != kj.ok {
			return ki.ok
		}
		if ki.hue != kj.hue {
			return ki.hue < kj.hue
		}
		if ki.light != kj.light {
			return ki.light < kj.light
		}
		return entries[i].Name < entries[j].Name
	})
}

// trimAlpha drops a trailing alpha channel; go-colorful parses 6-digit hex
// only.
func trimAlpha(hex string) string {
	if len(hex) == 9 && strings.HasPrefix(hex, "#") {
		return hex[:7]
	}
	return hex
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.entries) - 1
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%d colors", len(m.entries))))
	b.WriteString("\n\n")

	start, end := m.window()
	for i := start; i < end; i++ {
		entry := m.entries[i]
		marker := "  "
		if i == m.cursor {
			marker = m.styles.Cursor.Render("> ")
		}
		swatch := m.styles.Swatch.
			Background(lipgloss.Color(trimAlpha(entry.Hex))).
			Render("      ")
		b.WriteString(marker)
		b.WriteString(swatch)
		b.WriteString("  ")
		b.WriteString(m.styles.Name.Render(entry.Name))
		b.WriteString(m.styles.Hex.Render(entry.Hex))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("↑/↓ move · q quit"))
	return b.String()
}

// window returns the visible entry range, keeping the cursor on screen when
// the terminal is shorter than the palette.
func (m Model) window() (int, int) {
	rows := len(m.entries)
	visible := rows
	if m.height > 6 && m.height-6 < rows {
		visible = m.height - 6
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > rows {
		end = rows
	}
	return start, end
}

// Run shows the preview until the user quits.
func Run(title string, colors map[string]string) error {
	p := tea.NewProgram(NewModel(title, colors), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
