package extract

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Tool is one external-extractor candidate: an executable location plus the
// argument shape it expects. Candidates are attempted in order until one
// both exists and exits zero.
type Tool struct {
	Binary string
	Args   func(archivePath, destDir string) []string
}

func unrarArgs(archivePath, destDir string) []string {
	// unrar treats a trailing separator as "extract into this directory".
	return []string{"e", "-o+", "-y", archivePath, destDir + string(os.PathSeparator)}
}

func sevenZipArgs(archivePath, destDir string) []string {
	return []string{"e", "-o" + destDir, "-y", archivePath}
}

// defaultUnrarCandidates lists well-known unrar locations, bare name first
// so PATH resolution wins where available.
var defaultUnrarCandidates = []string{
	"unrar",
	"/usr/bin/unrar",
	"/usr/local/bin/unrar",
	`C:\Program Files\WinRAR\UnRAR.exe`,
	`C:\Program Files (x86)\WinRAR\UnRAR.exe`,
}

// defaultSevenZipCandidates lists well-known 7-Zip locations.
var defaultSevenZipCandidates = []string{
	"7z",
	"7za",
	"/usr/bin/7z",
	"/usr/local/bin/7z",
	`C:\Program Files\7-Zip\7z.exe`,
	`C:\Program Files (x86)\7-Zip\7z.exe`,
}

// DefaultTools returns the built-in tool chain: every unrar candidate, then
// every 7-Zip candidate.
func DefaultTools() []Tool {
	return ToolsFromCandidates(defaultUnrarCandidates, defaultSevenZipCandidates)
}

// ToolsFromCandidates builds the ordered tool chain from candidate
// executable names or paths. Empty entries are skipped; empty slices fall
// back to the built-in candidates for that tool.
func ToolsFromCandidates(unrar, sevenZip []string) []Tool {
	if len(unrar) == 0 {
		unrar = defaultUnrarCandidates
	}
	if len(sevenZip) == 0 {
		sevenZip = defaultSevenZipCandidates
	}
	tools := make([]Tool, 0, len(unrar)+len(sevenZip))
	for _, bin := range unrar {
		if bin == "" {
			continue
		}
		tools = append(tools, Tool{Binary: bin, Args: unrarArgs})
	}
	for _, bin := range sevenZip {
		if bin == "" {
			continue
		}
		tools = append(tools, Tool{Binary: bin, Args: sevenZipArgs})
	}
	return tools
}

// commandExecutor runs tools with all output discarded; the chain only
// cares about the exit status.
type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}
