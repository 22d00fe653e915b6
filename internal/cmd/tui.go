package cmd

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cokomi/timeline/internal/tui"
)

var tuiSection string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive dashboard",
	Long: `Open the timeline in an interactive terminal UI.

Keys:
    ←/→ (h/l)  previous/next section
    a          all sections
    ↑/↓ (k/j)  scroll
    ?          toggle help
    q          quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiSection, "section", "s", "", "section selected on start")

	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	model := tui.New(env.dash, tui.Options{
		Title:          env.cfg.Timeline.Title,
		Theme:          env.theme,
		DefaultSection: env.selectedSection(tuiSection),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, model,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
}
