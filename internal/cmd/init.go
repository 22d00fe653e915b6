package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cokomi/timeline/internal/config"
	"github.com/cokomi/timeline/internal/output"
	"github.com/cokomi/timeline/pkg/timeline"
)

var (
	initForce  bool
	initFormat string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a timeline project in the current directory",
	Long: `Create a .timeline directory with a config file and a starter dataset
copied from the built-in timeline:

  .timeline/
  ├── config.yaml      # Configuration
  └── timeline.json    # Steps (json, yaml or csv per --format)

Edit the dataset by hand; the CLI never writes to it after this.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing files")
	initCmd.Flags().StringVar(&initFormat, "format", "json", "starter dataset format: json, yaml, csv")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	output.SetColor(!noColor)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	var write func(*timeline.Dataset, *os.File) error
	switch initFormat {
	case "json":
		write = func(ds *timeline.Dataset, f *os.File) error { return ds.WriteJSON(f) }
	case "yaml":
		write = func(ds *timeline.Dataset, f *os.File) error { return ds.WriteYAML(f) }
	case "csv":
		write = func(ds *timeline.Dataset, f *os.File) error { return ds.WriteCSV(f) }
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or csv)", initFormat)
	}

	dir := filepath.Join(cwd, ".timeline")
	configFile := filepath.Join(dir, "config.yaml")
	datasetName := "timeline." + initFormat
	datasetFile := filepath.Join(dir, datasetName)

	if !initForce {
		var existing []string
		for _, f := range []string{configFile, datasetFile} {
			if _, err := os.Stat(f); err == nil {
				existing = append(existing, f)
			}
		}
		if len(existing) > 0 {
			cmd.Printf("%s The following files already exist:\n", output.Color("Warning:", output.Yellow))
			for _, f := range existing {
				cmd.Printf("  %s\n", f)
			}
			cmd.Println()
			cmd.Printf("%s\n", output.Color("Use --force to overwrite", output.Dim))
			return NewExitError(1, "timeline project already initialized")
		}
	}

	cmd.Printf("Creating timeline project in %s\n\n", dir)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create .timeline directory: %w", err)
	}

	ds, err := timeline.Default()
	if err != nil {
		return err
	}
	f, err := os.Create(datasetFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", datasetName, err)
	}
	if err := write(ds, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", datasetName, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", datasetName, err)
	}
	cmd.Printf("  %s Created %s\n", output.Color("✓", output.Green), datasetFile)

	cfg := config.DefaultConfig()
	cfg.Timeline.Dataset = datasetName
	if err := cfg.Save(configFile); err != nil {
		return err
	}
	cmd.Printf("  %s Created %s\n", output.Color("✓", output.Green), configFile)

	cmd.Println()
	cmd.Printf("%s\n", output.Color("✓ Timeline initialized successfully!", output.Green))
	cmd.Println()
	cmd.Println("Next steps:")
	cmd.Printf("  1. Edit %s with your own steps\n", datasetFile)
	cmd.Println("  2. Run 'timeline validate' to check it")
	cmd.Println("  3. Run 'timeline status' or 'timeline serve' to see progress")

	return nil
}
