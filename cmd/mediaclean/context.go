package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"mediaclean/internal/config"
	"mediaclean/internal/logging"
	"mediaclean/internal/metadata"
	"mediaclean/internal/metadata/omdb"
	"mediaclean/internal/metadata/tmdb"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the shared logger: console on stderr plus the log
// file under paths.log_dir.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			OutputPaths: []string{
				"stderr",
				filepath.Join(cfg.Paths.LogDir, "mediaclean.log"),
			},
		})
	})
	return c.logger, c.loggerErr
}

// provider builds the configured metadata provider, reporting a missing
// API key with a hint about where to set it.
func (c *commandContext) provider() (metadata.Provider, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	key := cfg.ProviderAPIKey()
	if key == "" {
		envVar := "TMDB_API_KEY"
		if cfg.Metadata.Provider == "omdb" {
			envVar = "OMDB_API_KEY"
		}
		return nil, fmt.Errorf("%s api key required: set %s or the matching metadata key (create a config with 'mediaclean config init')", cfg.Metadata.Provider, envVar)
	}
	if cfg.Metadata.Provider == "omdb" {
		return omdb.New(key, cfg.Metadata.Language)
	}
	return tmdb.New(key, cfg.Metadata.Language)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
