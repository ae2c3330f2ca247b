package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/schemeforge/themeport/internal/color"
	"github.com/schemeforge/themeport/internal/dialect/intellij"
	"github.com/schemeforge/themeport/internal/dialect/sublime"
	"github.com/schemeforge/themeport/internal/log"
	"github.com/schemeforge/themeport/internal/resolver"
	"github.com/schemeforge/themeport/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview <theme file>",
	Short: "Show the colors of a theme file as terminal swatches",
	Long:  "Show the colors of an IntelliJ, Sublime, Fleet, or Zed theme file as terminal swatches",
	Args:  cobra.ExactArgs(1),
	Run:   runPreview,
}

func init() {
	previewCmd.Flags().BoolP("interactive", "i", false, "Browse the palette interactively")
}

func runPreview(cmd *cobra.Command, args []string) {
	fs := afero.NewOsFs()
	interactive, _ := cmd.Flags().GetBool("interactive")

	title, colors, background, err := loadPalette(fs, args[0])
	if err != nil {
		log.Fatalf("Error reading %s: %v", args[0], err)
	}
	if len(colors) == 0 {
		log.Fatalf("No colors found in %s", args[0])
	}

	if interactive {
		if err := tui.Run(title, colors); err != nil {
			log.Fatalf("Error running preview: %v", err)
		}
		return
	}

	dumpSwatches(cmd, title, colors, background)
}

// loadPalette extracts a name-to-color map from any supported theme file,
// along with a display title and the theme's base background when it has one.
func loadPalette(fs afero.Fs, path string) (string, map[string]string, string, error) {
	if strings.EqualFold(filepath.Ext(path), ".icls") {
		scheme, err := intellij.Load(fs, path)
		if err != nil {
			return "", nil, "", err
		}
		colors := make(map[string]string, len(scheme.Colors)+len(scheme.Attributes))
		for name, hex := range scheme.Colors {
			colors[name] = hex
		}
		for name, attr := range scheme.Attributes {
			if attr.Foreground != "" {
				colors[name] = attr.Foreground
			}
		}
		return scheme.Name, colors, scheme.TextBackground(), nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", nil, "", err
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", nil, "", err
	}

	switch {
	case probe["palette"] != nil:
		return fleetPalette(probe)
	case probe["variables"] != nil:
		return sublimePalette(data)
	case probe["themes"] != nil:
		return zedPalette(probe)
	}
	return "", nil, "", fmt.Errorf("unrecognized theme format")
}

func fleetPalette(probe map[string]json.RawMessage) (string, map[string]string, string, error) {
	var pal map[string]string
	if err := json.Unmarshal(probe["palette"], &pal); err != nil {
		return "", nil, "", err
	}
	title := "Fleet theme"
	var meta map[string]any
	if probe["meta"] != nil {
		if err := json.Unmarshal(probe["meta"], &meta); err == nil {
			if name, ok := meta["theme.name"].(string); ok && name != "" {
				title = name
			}
		}
	}
	return title, pal, pal["Base"], nil
}

func sublimePalette(data []byte) (string, map[string]string, string, error) {
	scheme, err := sublime.Parse(data)
	if err != nil {
		return "", nil, "", err
	}
	colors, err := resolver.ResolveAll(scheme.Variables)
	if err != nil {
		return "", nil, "", err
	}
	title := scheme.Name
	if title == "" {
		title = "Sublime color scheme"
	}
	background, _ := resolveGlobal(scheme, "background")
	return title, colors, background, nil
}

func resolveGlobal(scheme *sublime.Scheme, key string) (string, error) {
	value, ok := scheme.Globals[key]
	if !ok {
		return "", nil
	}
	return resolver.Resolve(value, scheme.Variables, resolver.DefaultDepth)
}

func zedPalette(probe map[string]json.RawMessage) (string, map[string]string, string, error) {
	var themes []map[string]json.RawMessage
	if err := json.Unmarshal(probe["themes"], &themes); err != nil {
		return "", nil, "", err
	}
	if len(themes) == 0 {
		return "", nil, "", fmt.Errorf("no themes in document")
	}
	var style map[string]any
	if err := json.Unmarshal(themes[0]["style"], &style); err != nil {
		return "", nil, "", err
	}
	colors := make(map[string]string)
	for slot, value := range style {
		hex, ok := value.(string)
		if !ok || !color.IsLiteral(hex) {
			continue
		}
		colors[slot] = hex
	}
	title := "Zed theme"
	var name string
	if probe["name"] != nil {
		if err := json.Unmarshal(probe["name"], &name); err == nil && name != "" {
			title = name
		}
	}
	return title, colors, colors["background"], nil
}

func dumpSwatches(cmd *cobra.Command, title string, colors map[string]string, background string) {
	names := make([]string, 0, len(colors))
	width := 0
	for name := range colors {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d colors)\n\n", title, len(names))
	swatch := lipgloss.NewStyle()
	for _, name := range names {
		hex := colors[name]
		block := swatch.Background(lipgloss.Color(hex)).Render("      ")
		line := fmt.Sprintf("%s  %-*s  %s", block, width, name, hex)
		if background != "" && hex != background {
			line += fmt.Sprintf("  %.2f:1", color.ContrastRatio(hex, background))
		}
		fmt.Fprintln(out, line)
	}
}
