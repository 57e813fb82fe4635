package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/jcross/internal/config"
	"github.com/alexisbeaulieu97/jcross/internal/logger"
	"github.com/alexisbeaulieu97/jcross/internal/mock"
	"github.com/alexisbeaulieu97/jcross/internal/ports"
	jcrosserrors "github.com/alexisbeaulieu97/jcross/pkg/errors"
)

// AppContext bundles the services a command needs once flags and config are resolved.
type AppContext struct {
	Config  *config.Config
	Logger  ports.Logger
	Catalog *mock.Provider
	Seed    int64

	logCloser io.Closer
}

// newAppContext loads configuration, applies flag overrides and opens the log sink.
func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", flags.configPath, err, "Check the file against the documented keys.")
	}

	applyFlagOverrides(cmd, flags, cfg)
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, newCommandError("validate flags", "command line", err, "")
	}

	writer, closer, err := openLogWriter(cfg.Log.File)
	if err != nil {
		return nil, newCommandError("open log file", cfg.Log.File, err, "Make sure the directory exists and is writable.")
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        writer,
		Component:     "jcross",
	})
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, jcrosserrors.NewValidationError("log.level", err.Error(), err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &AppContext{
		Config:    cfg,
		Logger:    log,
		Catalog:   mock.New(seed),
		Seed:      seed,
		logCloser: closer,
	}, nil
}

// applyFlagOverrides copies explicitly set flags over configuration values.
func applyFlagOverrides(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("seed") {
		cfg.Seed = flags.seed
	}
	if changed("theme") {
		cfg.ThemeID = flags.themeID
	}
	if changed("dark") {
		cfg.DarkMode = flags.dark
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if changed("log-file") {
		cfg.Log.File = flags.logFile
	}
}

func openLogWriter(path string) (io.Writer, io.Closer, error) {
	if path == "" {
		return io.Discard, nil, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return file, file, nil
}

// CommandContext returns a context carrying a fresh correlation id and a logger tagged with the command name.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
	return ctx, a.Logger.With("command", name)
}

// Close releases the log file, if one was opened.
func (a *AppContext) Close() error {
	if a == nil || a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}
