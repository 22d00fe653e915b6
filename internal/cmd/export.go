package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cokomi/timeline/pkg/timeline"
)

var (
	exportFormat  string
	exportSection string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the dataset to stdout",
	Long: `Write the steps of the dataset, optionally limited to one section, in
any of the supported dataset formats. The output can be loaded back with
--data.

Examples:
    timeline export --format csv > steps.csv
    timeline export --format yaml --section Payments`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json, yaml, csv")
	exportCmd.Flags().StringVarP(&exportSection, "section", "s", "All", "section to export")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	steps := env.dash.Snapshot(timeline.SectionName(exportSection)).Filtered
	ds, err := timeline.New(steps)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch exportFormat {
	case "json":
		return ds.WriteJSON(w)
	case "yaml", "yml":
		return ds.WriteYAML(w)
	case "csv":
		return ds.WriteCSV(w)
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or csv)", exportFormat)
	}
}
