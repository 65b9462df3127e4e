package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/pricewalk/internal/config"
)

// GlobalOptions are the flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	LogLevel   string // Overrides log_level from the config file when set
}

// setup loads the configuration and builds the logger it asks for.
func setup(opts GlobalOptions) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, nil, fmt.Errorf("error loading config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	logger, err := createLogger(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	logger.Debug("Config Loaded", "path", opts.ConfigPath, "store", cfg.Store.Driver)
	return cfg, logger, nil
}
