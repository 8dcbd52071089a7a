package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomo/internal/adapters/git"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/ports"
)

// appDeps groups all dependencies initialized at startup.
type appDeps struct {
	config     *config.Config
	configPath string
	logger     *slog.Logger
	logFile    *os.File
	git        ports.GitDetector
	runID      string
}

// app holds all initialized dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads configuration and sets up logging and adapters.
// The mcp command logs to stderr because stdout carries the protocol;
// every other command logs to the configured file so the terminal stays clean.
func initializeServices(cmd *cobra.Command) error {
	app = appDeps{runID: uuid.NewString()}

	path := configPath
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return err
		}
	}
	app.configPath = path

	cfg, loadErr := config.LoadFrom(path)
	if loadErr != nil {
		// If config loading fails, use defaults
		cfg = config.DefaultConfig()
		cfg.Log.File = filepath.Join(filepath.Dir(path), "pomo.log")
	}
	app.config = cfg

	level := cfg.Log.SlogLevel()
	if verboseMode {
		level = slog.LevelDebug
	}

	var out io.Writer = cmd.ErrOrStderr()
	if cmd.Name() != mcpCmd.Name() {
		f, err := openLogFile(cfg.Log.File)
		if err != nil {
			return err
		}
		app.logFile = f
		out = f
	}
	app.logger = newLogger(out, level, app.runID)
	slog.SetDefault(app.logger)

	if loadErr != nil {
		app.logger.Warn("using default config", slog.String("path", path), slog.Any("error", loadErr))
	}

	app.git = git.NewDetector()
	return nil
}

// newLogger builds the process logger; every record carries the run id.
func newLogger(w io.Writer, level slog.Level, runID string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("run", runID))
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.logFile != nil {
		err := app.logFile.Close()
		app.logFile = nil
		return err
	}
	return nil
}

// detectGit returns the repository context of the working directory, or nil
// when there is none.
func detectGit(ctx context.Context) *ports.GitInfo {
	wd, err := os.Getwd()
	if err != nil {
		app.logger.Debug("no working directory", slog.Any("error", err))
		return nil
	}
	info, err := app.git.Detect(ctx, wd)
	if err != nil {
		app.logger.Debug("git context unavailable", slog.String("dir", wd), slog.Any("error", err))
		return nil
	}
	return info
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
