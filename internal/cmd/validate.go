package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cokomi/timeline/internal/output"
	"github.com/cokomi/timeline/pkg/timeline"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the dataset loads",
	Long: `Load the configured dataset and report its shape.

Problems (duplicate ids, unknown status values, missing sections, parse
errors) are listed and the command exits with status 1.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	width := output.TerminalWidth()
	cmd.Println(output.Header("Dataset Validation", width))
	cmd.Println()

	cmd.Printf("  Config:  %s\n", s.configLabel())
	cmd.Printf("  Dataset: %s\n", s.datasetLabel())
	cmd.Println()

	ds, err := s.loadDataset()
	if err != nil {
		var verr *timeline.ValidationError
		if errors.As(err, &verr) {
			for _, p := range verr.Problems {
				cmd.Printf("  %s %s\n", output.Color("[FAIL]", output.Red), p)
			}
		} else {
			cmd.Printf("  %s %v\n", output.Color("[FAIL]", output.Red), err)
		}
		cmd.Println()
		cmd.Printf("Status: %s\n", output.Color("INVALID", output.Red))
		s.logger.Debug("dataset validation failed", "error", err)
		return NewExitError(1, "dataset validation failed")
	}

	sections := timeline.NewDashboard(ds).Sections()
	cmd.Printf("  %s %d steps in %d sections\n", output.Color("[PASS]", output.Green), ds.Len(), len(sections)-1)
	cmd.Printf("  %s %s\n", output.Color("[PASS]", output.Green), progressSentence(timeline.Build(ds.Steps(), timeline.AllSections).Progress))
	cmd.Println()
	cmd.Printf("Status: %s\n", output.Color("VALID", output.Green))
	return nil
}
