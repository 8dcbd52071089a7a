// Package cmd provides the CLI commands for the pomo application.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomo/internal/adapters/tui"
	"github.com/xvierd/pomo/internal/ports"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath  string
	inlineMode  bool
	verboseMode bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "pomo - A two-session Pomodoro timer for the terminal",
	Long: `pomo counts down a pomodoro (25:00) or a break (05:00).

Keys: space/s start or stop, +/- adjust by five minutes, r reset,
c or tab change session, q quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.pomo/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "Log at debug level")
	rootCmd.Flags().BoolVarP(&inlineMode, "inline", "i", false, "Compact inline timer (no fullscreen)")

	// cobra handles --version automatically
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
	rootCmd.SetVersionTemplate("pomo\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
}

// runTimer runs the interactive timer until the user quits or a signal arrives.
func runTimer(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	var gitInfo *ports.GitInfo
	if app.config.UI.ShowGit {
		gitInfo = detectGit(ctx)
	}

	inline := inlineMode || app.config.UI.Inline
	timer := tui.NewTimer(tui.Options{
		Theme:     &app.config.Theme,
		Inline:    inline,
		BigDigits: app.config.UI.BigDigits,
		Git:       gitInfo,
		Logger:    app.logger,
	})

	app.logger.Info("timer started", slog.Bool("inline", inline))
	if err := timer.Run(ctx); err != nil {
		return err
	}

	state := timer.State()
	app.logger.Info("timer exited",
		slog.String("current", string(state.Current)),
		slog.Int("pomodoro_time_left", state.Pomodoro.TimeLeft),
		slog.Int("break_time_left", state.Break.TimeLeft))
	return nil
}
