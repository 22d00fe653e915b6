// Package cmd provides the CLI commands for the timeline dashboard.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"
	// Commit is set at build time via ldflags.
	Commit = "none"
	// Date is set at build time via ldflags.
	Date = "unknown"
)

var (
	cfgFile   string
	dataFile  string
	noColor   bool
	logLevel  string
	logFormat string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Project timeline dashboard",
	Long: `timeline renders a read-only project timeline: steps grouped into
sections, each pending, in progress or completed, with an overall
progress summary.

The same data can be viewed as a terminal report (status, list), an
interactive terminal UI (tui) or an HTTP dashboard (serve).

Data comes from the file named by --data or the config's dataset key,
falling back to the dataset compiled into the binary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .timeline/config.yaml, timeline.yaml or timeline.toml)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "dataset file (.json, .yaml, .yml, .csv); overrides the config")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(listCmd)
}
