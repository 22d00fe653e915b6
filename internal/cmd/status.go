package cmd

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/cokomi/timeline/internal/output"
	"github.com/cokomi/timeline/internal/view"
	"github.com/cokomi/timeline/pkg/timeline"
)

var statusVerbosity int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show overall progress",
	Long: `Display the progress summary of the whole timeline.

The verbosity level controls how much detail is shown:
  (default)  Progress bar and status counts
  -v         Add a per-section breakdown`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().CountVarP(&statusVerbosity, "verbose", "v", "increase verbosity (-v)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	displaySummaryStatus(cmd, env)
	if statusVerbosity >= 1 {
		displaySectionStatus(cmd, env)
	}
	return nil
}

func displaySummaryStatus(cmd *cobra.Command, env *environment) {
	width := output.TerminalWidth()
	p := env.dash.Progress()

	cmd.Println(output.Header(env.cfg.Timeline.Title, width))
	cmd.Println()

	cmd.Printf("Progress: %s  %s\n", output.ProgressBar(p.Percentage, 40), output.FormatPercent(p.Percentage))
	cmd.Println()

	counts := timeline.StatusCounts(env.dash.Steps())
	cmd.Printf("%s %d completed  %s %d in progress  %s %d pending\n",
		output.StatusIcon(string(timeline.StatusCompleted)), counts[timeline.StatusCompleted],
		output.StatusIcon(string(timeline.StatusInProgress)), counts[timeline.StatusInProgress],
		output.StatusIcon(string(timeline.StatusPending)), counts[timeline.StatusPending])
	cmd.Println()

	cmd.Println(progressSentence(p))
}

func displaySectionStatus(cmd *cobra.Command, env *environment) {
	width := output.TerminalWidth()
	summaries := env.dash.SectionProgress()

	nameWidth := 0
	for _, s := range summaries {
		if w := runewidth.StringWidth(string(s.Section)); w > nameWidth {
			nameWidth = w
		}
	}

	cmd.Println()
	cmd.Println(output.SubHeader("Sections", width))
	cmd.Println()

	for _, s := range summaries {
		style := env.theme.Section(s.Section)
		cmd.Printf("%s %s  %s %s  (%d/%d)\n",
			view.Glyph(style.Icon),
			output.PadRight(string(s.Section), nameWidth),
			output.ProgressBar(s.Progress.Percentage, 20),
			output.PadLeft(fmt.Sprintf("%d%%", s.Progress.Percentage), 4),
			s.Progress.CompletedCount, s.Progress.TotalCount)
	}
}

// progressSentence is the one-line summary shared by every renderer.
func progressSentence(p timeline.Progress) string {
	return fmt.Sprintf("%d of %d tasks completed (%d%%)", p.CompletedCount, p.TotalCount, p.Percentage)
}
