package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. API keys are not
// required here: scanning and organizing work offline, and the commands
// that need a provider report the missing key themselves.
func (c *Config) Validate() error {
	if err := c.validateMetadata(); err != nil {
		return err
	}
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if c.Extraction.ToolTimeout <= 0 {
		return errors.New("extraction.tool_timeout must be positive (seconds)")
	}
	return nil
}

func (c *Config) validateMetadata() error {
	switch c.Metadata.Provider {
	case "tmdb", "omdb":
		return nil
	default:
		return fmt.Errorf("metadata.provider must be \"tmdb\" or \"omdb\", got %q", c.Metadata.Provider)
	}
}

func (c *Config) validateOrganize() error {
	switch c.Organize.Mode {
	case "copy", "move":
	default:
		return fmt.Errorf("organize.mode must be \"copy\" or \"move\", got %q", c.Organize.Mode)
	}
	if c.Organize.OutputFolderName == "" {
		return errors.New("organize.output_folder_name must be set")
	}
	return nil
}

// ProviderAPIKey returns the API key for the configured provider.
func (c *Config) ProviderAPIKey() string {
	if c.Metadata.Provider == "omdb" {
		return c.Metadata.OMDBAPIKey
	}
	return c.Metadata.TMDBAPIKey
}
