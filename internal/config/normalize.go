package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMetadata()
	c.normalizeOrganize()
	c.normalizeExtraction()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) != "" {
		if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
			return fmt.Errorf("paths.output_dir: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMetadata() {
	c.Metadata.Provider = strings.ToLower(strings.TrimSpace(c.Metadata.Provider))
	if c.Metadata.Provider == "" {
		c.Metadata.Provider = defaultProvider
	}
	if c.Metadata.TMDBAPIKey == "" {
		if value, ok := os.LookupEnv("TMDB_API_KEY"); ok {
			c.Metadata.TMDBAPIKey = strings.TrimSpace(value)
		}
	}
	if c.Metadata.OMDBAPIKey == "" {
		if value, ok := os.LookupEnv("OMDB_API_KEY"); ok {
			c.Metadata.OMDBAPIKey = strings.TrimSpace(value)
		}
	}
	c.Metadata.Language = strings.TrimSpace(c.Metadata.Language)
	if c.Metadata.Language == "" {
		c.Metadata.Language = defaultLanguage
	}
}

func (c *Config) normalizeOrganize() {
	c.Organize.Mode = strings.ToLower(strings.TrimSpace(c.Organize.Mode))
	if c.Organize.Mode == "" {
		c.Organize.Mode = defaultMode
	}
	c.Organize.OutputFolderName = strings.TrimSpace(c.Organize.OutputFolderName)
	if c.Organize.OutputFolderName == "" {
		c.Organize.OutputFolderName = defaultOutputFolderName
	}
}

func (c *Config) normalizeExtraction() {
	if c.Extraction.ToolTimeout <= 0 {
		c.Extraction.ToolTimeout = defaultToolTimeout
	}
	c.Extraction.UnrarCandidates = trimNonEmpty(c.Extraction.UnrarCandidates)
	c.Extraction.SevenZipCandidates = trimNonEmpty(c.Extraction.SevenZipCandidates)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
