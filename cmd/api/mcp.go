package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"medisafe-companion/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdin/stdout",
	Long: `Start the Model Context Protocol server so an AI assistant can read the
schedule and record doses. Logs go to stderr.

AVAILABLE TOOLS:

  list_medications   Scheduled medications
  next_dose          Next dose and its state for that day
  log_dose           Record a dose as taken or missed
  list_logs          Recent dose logs

AVAILABLE RESOURCES:

  medisafe://adherence   Today's taken percentage against previous days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app, cleanup, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		return mcp.NewServer(app.Medications, app.Logs, app.Runner, version).Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
