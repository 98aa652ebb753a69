package config_test

import (
	"path/filepath"
	"strings"
	"testing"

	"mediaclean/internal/config"
	"mediaclean/internal/testsupport"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, path, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Error("exists should be false for a missing file")
	}
	if path == "" {
		t.Error("resolved path should not be empty")
	}
	if cfg.Metadata.Provider != "tmdb" {
		t.Errorf("default provider = %q", cfg.Metadata.Provider)
	}
	if cfg.Organize.Mode != "copy" {
		t.Errorf("default mode = %q", cfg.Organize.Mode)
	}
	if cfg.Organize.OutputFolderName != "_MediaClean_Output" {
		t.Errorf("default output folder = %q", cfg.Organize.OutputFolderName)
	}
	if cfg.Extraction.ToolTimeout != 600 {
		t.Errorf("default tool timeout = %d", cfg.Extraction.ToolTimeout)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	testsupport.WriteFile(t, path, `
[metadata]
provider = "OMDB"
omdb_api_key = "abc"
language = "es-ES"

[organize]
mode = "Move"

[extraction]
unrar_candidates = ["  ", "/opt/unrar"]
`)

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("exists should be true")
	}
	if cfg.Metadata.Provider != "omdb" {
		t.Errorf("provider = %q", cfg.Metadata.Provider)
	}
	if cfg.Organize.Mode != "move" {
		t.Errorf("mode = %q", cfg.Organize.Mode)
	}
	if len(cfg.Extraction.UnrarCandidates) != 1 || cfg.Extraction.UnrarCandidates[0] != "/opt/unrar" {
		t.Errorf("unrar candidates = %#v", cfg.Extraction.UnrarCandidates)
	}
	if cfg.ProviderAPIKey() != "abc" {
		t.Errorf("ProviderAPIKey = %q", cfg.ProviderAPIKey())
	}
}

func TestLoadRejectsBadProvider(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	testsupport.WriteFile(t, path, `
[metadata]
provider = "thetvdb"
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadRejectsBadMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	testsupport.WriteFile(t, path, `
[organize]
mode = "hardlink"
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestEnvFallbackForAPIKeys(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "from-env")
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Metadata.TMDBAPIKey != "from-env" {
		t.Errorf("TMDBAPIKey = %q", cfg.Metadata.TMDBAPIKey)
	}
}

func TestOutputBaseFor(t *testing.T) {
	cfg := config.Default()
	cfg.Organize.OutputFolderName = "_MediaClean_Output"
	if got := cfg.OutputBaseFor("/downloads/show"); got != filepath.Join("/downloads/show", "_MediaClean_Output") {
		t.Errorf("OutputBaseFor = %q", got)
	}
	cfg.Paths.OutputDir = "/library"
	if got := cfg.OutputBaseFor("/downloads/show"); got != "/library" {
		t.Errorf("OutputBaseFor with output_dir = %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	expanded, err := config.ExpandPath("~/media")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if strings.HasPrefix(expanded, "~") || !filepath.IsAbs(expanded) {
		t.Errorf("expanded path = %q", expanded)
	}
}
