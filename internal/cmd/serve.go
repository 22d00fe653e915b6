package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cokomi/timeline/internal/server"
	"github.com/cokomi/timeline/pkg/timeline"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTML dashboard",
	Long: `Start the HTTP dashboard.

Routes:
    /                       HTML dashboard (?section= selects the filter)
    /api/sections           section names
    /api/steps?section=     filtered steps
    /api/groups?section=    steps grouped by section
    /api/progress           overall progress
    /api/snapshot?section=  everything above in one document
    /healthz                liveness

The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	sc := &env.cfg.Timeline.Server
	if serveHost != "" {
		sc.Host = serveHost
	}
	if servePort != 0 {
		sc.Port = servePort
	}
	if err := env.cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(env.dash, server.Options{
		Title:           env.cfg.Timeline.Title,
		Theme:           env.theme,
		Logger:          env.logger,
		DefaultSection:  timeline.SectionName(env.cfg.Timeline.DefaultSection),
		ReadTimeout:     sc.ReadTimeout,
		RequestTimeout:  sc.RequestTimeout,
		ShutdownTimeout: sc.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Serving %s on http://%s\n", env.cfg.Timeline.Title, env.cfg.Addr())
	return srv.ListenAndServe(ctx, env.cfg.Addr())
}
