package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/schemeforge/themeport/internal/log"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "themeport",
	Short:   "Convert editor color themes between dialects",
	Long:    "Convert color themes between IntelliJ .icls, Sublime Text, JetBrains Fleet, and Zed formats",
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		log.SetDebug(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.AddCommand(intellijToSublimeCmd, intellijToZedCmd, sublimeToFleetCmd, previewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
