package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediaclean/internal/testsupport"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	testsupport.WriteFile(t, path, fmt.Sprintf(`
[paths]
log_dir = %q
data_dir = %q
`, filepath.Join(dir, "logs"), filepath.Join(dir, "data")))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	output, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(output, target) {
		t.Errorf("output should mention target path, got %q", output)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("second init without --overwrite should fail")
	}
}

func TestScanCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)
	root := filepath.Join(t.TempDir(), "The.Show.1080p")
	testsupport.MkdirAll(t, root)
	testsupport.WriteFile(t, filepath.Join(root, "The.Show.S01E01.720p.mkv"), "video")
	testsupport.WriteFile(t, filepath.Join(root, "The.Show.S01E02.720p.mkv"), "video")
	testsupport.WriteFile(t, filepath.Join(root, "readme.txt"), "not a video")

	output, err := runCommand(t, "--config", cfgPath, "scan", root)
	if err != nil {
		t.Fatalf("scan failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "The.Show.S01E01.720p.mkv") {
		t.Errorf("output should list the video, got %q", output)
	}
	if !strings.Contains(output, "2 of 2 files identified") {
		t.Errorf("output should report identification count, got %q", output)
	}
}

func TestScanCommandEmptyTree(t *testing.T) {
	cfgPath := writeTestConfig(t)
	root := t.TempDir()

	output, err := runCommand(t, "--config", cfgPath, "scan", root)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if !strings.Contains(output, "No video files found") {
		t.Errorf("output = %q", output)
	}
}

func TestOrganizeCommandOffline(t *testing.T) {
	cfgPath := writeTestConfig(t)
	root := filepath.Join(t.TempDir(), "Dark")
	testsupport.MkdirAll(t, root)
	testsupport.WriteFile(t, filepath.Join(root, "Dark.S01E01.mkv"), "video")

	output, err := runCommand(t, "--config", cfgPath, "organize", root, "--offline")
	if err != nil {
		t.Fatalf("organize failed: %v\n%s", err, output)
	}

	target := filepath.Join(root, "_MediaClean_Output", "Dark", "Season 01", "Dark - S01E01.mkv")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("organized file missing at %s: %v\n%s", target, err, output)
	}
	if _, err := os.Stat(filepath.Join(root, "Dark.S01E01.mkv")); err != nil {
		t.Errorf("copy mode should keep the original: %v", err)
	}

	// The run lands in history.
	histOutput, err := runCommand(t, "--config", cfgPath, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(histOutput, "Dark") {
		t.Errorf("history should list the run, got %q", histOutput)
	}
}

func TestHistoryCommandEmpty(t *testing.T) {
	cfgPath := writeTestConfig(t)
	output, err := runCommand(t, "--config", cfgPath, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(output, "No organize runs recorded yet") {
		t.Errorf("output = %q", output)
	}
	if !strings.Contains(output, "history.db") {
		t.Errorf("empty-history message should name the database, got %q", output)
	}
}

func TestSearchCommandRequiresAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("OMDB_API_KEY", "")
	cfgPath := writeTestConfig(t)

	output, err := runCommand(t, "--config", cfgPath, "search", "dark")
	if err == nil {
		t.Fatalf("search without an API key should fail, got %q", output)
	}
	if !strings.Contains(err.Error(), "api key required") {
		t.Errorf("error = %q, want an api key hint", err)
	}
	if !strings.Contains(err.Error(), "TMDB_API_KEY") {
		t.Errorf("error = %q, want the provider's env var named", err)
	}
}
