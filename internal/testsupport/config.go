package testsupport

import (
	"path/filepath"
	"testing"

	"mediaclean/internal/config"
)

// NewConfig returns a validated config whose writable paths live under
// a per-test temporary directory.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	return &cfg
}
