package cmd

import (
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/cokomi/timeline/internal/output"
	"github.com/cokomi/timeline/internal/view"
	"github.com/cokomi/timeline/pkg/timeline"
)

var (
	listSection string
	listStatus  string
	listJSON    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List steps grouped by section",
	Long: `List timeline steps, grouped by section in dataset order.

Section headers are shown only when every section is listed. An unknown
section name lists nothing; it is not an error.

Examples:
    timeline list                         # every step
    timeline list --section Payments      # one section
    timeline list --status in-progress    # combine with a status filter
    timeline list --json                  # section -> steps as JSON`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSection, "section", "s", "", `section to show (default from config, else "All")`)
	listCmd.Flags().StringVar(&listStatus, "status", "", "only steps with this status: pending, in-progress, completed")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output grouped steps as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	snap := env.dash.Snapshot(env.selectedSection(listSection))
	groups := snap.Groups
	if listStatus != "" {
		status, err := timeline.ParseStatus(listStatus)
		if err != nil {
			return err
		}
		groups = timeline.GroupBySection(timeline.FilterByStatus(snap.Filtered, status))
	}

	if listJSON {
		data, err := sonic.MarshalIndent(groups, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal steps: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	displayGroups(cmd, env, snap.ShowSectionHeaders, groups)
	return nil
}

func displayGroups(cmd *cobra.Command, env *environment, headers bool, groups timeline.Groups) {
	width := output.TerminalWidth()

	if groups.Len() == 0 {
		cmd.Println("No steps in this section.")
		return
	}

	for i, g := range groups {
		if headers {
			if i > 0 {
				cmd.Println()
			}
			style := env.theme.Section(g.Section)
			cmd.Println(output.SubHeader(view.Glyph(style.Icon)+" "+string(g.Section), width))
		}

		table := output.NewStepTable(width, "", "ID", "Step", "Status", "Completed")
		for _, s := range g.Steps {
			badge := view.StatusBadge(s.Status)
			table.AddStep(s.Status.String(),
				badge.Icon,
				strconv.Itoa(s.ID),
				s.Title,
				badge.Label,
				view.FormatCompletedOn(s),
			)
		}
		cmd.Print(table.String())
	}
}
