package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomo/internal/adapters/mcp"
	"github.com/xvierd/pomo/internal/services"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI assistants.
The server runs a headless timer and exposes its controls as tools over stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := setupSignalHandler()

		controller := services.NewController(services.Options{Logger: app.logger})
		defer controller.Close()
		go logEvents(app.logger, controller.Subscribe(16))

		server := mcp.NewServer(controller, app.logger)
		app.logger.Info("starting MCP server", slog.String("transport", "stdio"))
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}

// logEvents records controller events until the controller closes.
func logEvents(logger *slog.Logger, events <-chan services.Event) {
	for ev := range events {
		snap := ev.Snapshot
		attrs := []any{
			slog.String("session", string(snap.State.Current)),
			slog.Bool("running", snap.Running),
			slog.Int("time_left", snap.State.Active().TimeLeft),
		}
		if ev.Type == services.EventFinished {
			logger.Info("session finished", attrs...)
			continue
		}
		logger.Debug("timer state", attrs...)
	}
}
