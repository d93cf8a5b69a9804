package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rpggio/flick/internal/app"
	"github.com/rpggio/flick/internal/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "flick",
		Short:         "Flick - production project and task tracker",
		Long:          `Flick tracks film and video productions and their tasks, served over REST and MCP.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (default $FLICK_CONFIG_PATH)")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))

	return cmd
}

// bootstrap loads config, opens the logger and builds the application.
// The returned cleanup closes the app and any log file.
func bootstrap(ctx context.Context, opts *rootOptions, defaultLogWriter io.Writer) (*app.App, func(), error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("config error: %w", err)
	}

	logWriter := defaultLogWriter
	var logFile *os.File
	if logPath := os.Getenv("FLICK_LOG_PATH"); logPath != "" {
		fileWriter, file, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			logWriter = fileWriter
			logFile = file
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	a, err := app.New(ctx, cfg, app.WithLogger(logger), app.WithVersion(Version))
	if err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, nil, err
	}

	cleanup := func() {
		_ = a.Close()
		if logFile != nil {
			_ = logFile.Close()
		}
	}
	return a, cleanup, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
