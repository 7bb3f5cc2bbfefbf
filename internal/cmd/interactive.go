package cmd

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/custsearch/internal/config"
	"github.com/Iron-Ham/custsearch/internal/errors"
	"github.com/Iron-Ham/custsearch/internal/loader"
	"github.com/Iron-Ham/custsearch/internal/logging"
	"github.com/Iron-Ham/custsearch/internal/tui"
	"github.com/Iron-Ham/custsearch/internal/tui/styles"
)

// runInteractive launches the full-screen search view.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	logger, err := openFileLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	logger = logger.WithRun(uuid.NewString()).WithSource(cfg.Source.Location)
	logger.Info("search view starting",
		"theme", cfg.TUI.Theme,
		"result_limit", cfg.Search.ResultLimit,
		"config_file", viper.ConfigFileUsed(),
	)

	app := tui.New(tui.Options{
		Location: cfg.Source.Location,
		Loader:   newLoader(cfg, logger),
		Limit:    cfg.Search.ResultLimit,
		Theme:    styles.ThemeName(cfg.TUI.Theme),
		Logger:   logger,
	})

	// Theme changes in the config file apply without a restart
	if viper.ConfigFileUsed() != "" {
		viper.OnConfigChange(func(e fsnotify.Event) {
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				return
			}
			theme := viper.GetString("tui.theme")
			if !styles.IsValidTheme(theme) {
				logger.Warn("ignoring unknown theme from config", "theme", theme, "file", e.Name)
				return
			}
			logger.Debug("config file changed", "file", e.Name)
			app.Send(tui.ThemeChangedMsg{Theme: styles.ThemeName(theme)})
		})
		viper.WatchConfig()
	}

	if err := app.Run(); err != nil {
		logger.Error("search view exited with error", "error", err.Error())
		return fmt.Errorf("TUI error: %w", err)
	}
	logger.Info("search view closed")
	return nil
}

// openFileLogger returns the rotating file logger described by cfg, or a
// no-op logger when file logging is disabled. The terminal belongs to the
// search view, so nothing is logged there.
func openFileLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}

	logger, err := logging.NewLoggerWithRotation(cfg.Logging.ResolveDir(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger, nil
}

// newLoader builds a dataset loader from the source settings.
func newLoader(cfg *config.Config, logger *logging.Logger) *loader.Loader {
	return loader.New(loader.Options{
		S3: loader.S3Options{
			Endpoint: cfg.Source.S3.Endpoint,
			Region:   cfg.Source.S3.Region,
			UseSSL:   cfg.Source.S3.UseSSL,
		},
		Logger: logger,
	})
}
