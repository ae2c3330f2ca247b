package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/schemeforge/themeport/internal/convert"
	"github.com/schemeforge/themeport/internal/dialect/fleet"
	"github.com/schemeforge/themeport/internal/dialect/intellij"
	"github.com/schemeforge/themeport/internal/dialect/sublime"
	"github.com/schemeforge/themeport/internal/dialect/zed"
	"github.com/schemeforge/themeport/internal/log"
)

var intellijToSublimeCmd = &cobra.Command{
	Use:   "intellij-to-sublime <in.icls> <out.sublime-color-scheme>",
	Short: "Convert an IntelliJ scheme to a Sublime color scheme",
	Args:  cobra.ExactArgs(2),
	Run:   runIntelliJToSublime,
}

var intellijToZedCmd = &cobra.Command{
	Use:   "intellij-to-zed <in.icls>",
	Short: "Convert an IntelliJ scheme to a Zed theme",
	Args:  cobra.ExactArgs(1),
	Run:   runIntelliJToZed,
}

var sublimeToFleetCmd = &cobra.Command{
	Use:   "sublime-to-fleet <in.sublime-color-scheme> <out.json>",
	Short: "Convert a Sublime color scheme to a Fleet theme",
	Args:  cobra.ExactArgs(2),
	Run:   runSublimeToFleet,
}

func init() {
	intellijToZedCmd.Flags().StringP("output", "o", "", "Output path (default <in>.json next to the input)")
	intellijToZedCmd.Flags().StringP("author", "a", "", "Author credited in the theme")
}

func runIntelliJToSublime(cmd *cobra.Command, args []string) {
	fs := afero.NewOsFs()

	scheme, err := intellij.Load(fs, args[0])
	if err != nil {
		log.Fatalf("Error reading %s: %v", args[0], err)
	}

	out, err := convert.IntelliJToSublime(scheme)
	if err != nil {
		log.Fatalf("Error converting %s: %v", args[0], err)
	}

	writeOutput(fs, args[1], func(path string) error {
		return sublime.Save(fs, path, out)
	})
	log.Infof("Wrote %s", args[1])
}

func runIntelliJToZed(cmd *cobra.Command, args []string) {
	fs := afero.NewOsFs()
	output, _ := cmd.Flags().GetString("output")
	author, _ := cmd.Flags().GetString("author")

	if output == "" {
		base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		output = filepath.Join(filepath.Dir(args[0]), base+".json")
	}

	scheme, err := intellij.Load(fs, args[0])
	if err != nil {
		log.Fatalf("Error reading %s: %v", args[0], err)
	}

	doc, err := convert.IntelliJToZed(scheme, author)
	if err != nil {
		log.Fatalf("Error converting %s: %v", args[0], err)
	}

	writeOutput(fs, output, func(path string) error {
		return zed.Save(fs, path, doc)
	})
	log.Infof("Wrote %s", output)
}

func runSublimeToFleet(cmd *cobra.Command, args []string) {
	fs := afero.NewOsFs()

	scheme, err := sublime.Load(fs, args[0])
	if err != nil {
		log.Fatalf("Error reading %s: %v", args[0], err)
	}

	doc, err := convert.SublimeToFleet(scheme)
	if err != nil {
		log.Fatalf("Error converting %s: %v", args[0], err)
	}

	writeOutput(fs, args[1], func(path string) error {
		return fleet.Save(fs, path, doc)
	})
	log.Infof("Wrote %s", args[1])
}

// writeOutput creates the output directory and runs the save. Conversion has
// already succeeded by the time this runs, so a failure here never leaves a
// partial theme behind a successful exit code.
func writeOutput(fs afero.Fs, path string, save func(path string) error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Error creating %s: %v", dir, err)
		}
	}
	if err := save(path); err != nil {
		log.Fatalf("Error writing %s: %v", path, err)
	}
}
