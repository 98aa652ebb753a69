package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"mediaclean/internal/logging"
	"mediaclean/internal/media"
)

// ErrNoVideoFound reports that every extraction method was exhausted
// without producing a playable file.
var ErrNoVideoFound = errors.New("no video found in archive")

// DefaultToolTimeout bounds a single external-tool invocation.
const DefaultToolTimeout = 10 * time.Minute

// Executor abstracts subprocess execution for testability. Output is
// suppressed; only the exit status matters to the chain.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) error
}

// Extractor drives the extraction fallback chain.
type Extractor struct {
	logger  *slog.Logger
	exec    Executor
	tools   []Tool
	timeout time.Duration
	library func(archivePath, destDir string) (string, error)
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(e *Extractor) {
		if exec != nil {
			e.exec = exec
		}
	}
}

// WithTools overrides the ordered external-tool candidates.
func WithTools(tools []Tool) Option {
	return func(e *Extractor) {
		if len(tools) > 0 {
			e.tools = tools
		}
	}
}

// WithTimeout overrides the per-invocation subprocess ceiling.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Extractor) {
		if timeout > 0 {
			e.timeout = timeout
		}
	}
}

// WithLibraryMethod overrides the library-level extraction attempt
// (used in tests to simulate archives without real RAR fixtures).
func WithLibraryMethod(fn func(archivePath, destDir string) (string, error)) Option {
	return func(e *Extractor) {
		if fn != nil {
			e.library = fn
		}
	}
}

// New constructs an Extractor with the default method chain.
func New(logger *slog.Logger, opts ...Option) *Extractor {
	e := &Extractor{
		logger:  logging.NewComponentLogger(logger, "extract"),
		exec:    commandExecutor{},
		tools:   DefaultTools(),
		timeout: DefaultToolTimeout,
		library: extractWithLibrary,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the fallback chain for one archive, returning the path of
// the extracted video inside destDir. Every method failure is swallowed and
// the chain proceeds; exhaustion returns ErrNoVideoFound.
func (e *Extractor) Extract(ctx context.Context, archivePath, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create extraction directory: %w", err)
	}

	if path, err := e.library(archivePath, destDir); err == nil {
		e.logger.Debug("library extraction succeeded", logging.String("video", filepath.Base(path)))
		return path, nil
	} else if !errors.Is(err, ErrNoVideoFound) {
		e.logger.Debug("library extraction failed, falling back to tools", logging.Error(err))
	}

	for _, tool := range e.tools {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if path, ok := e.tryTool(ctx, tool, archivePath, destDir); ok {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNoVideoFound, filepath.Base(archivePath))
}

func (e *Extractor) tryTool(ctx context.Context, tool Tool, archivePath, destDir string) (string, bool) {
	runCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	args := tool.Args(archivePath, destDir)
	if err := e.exec.Run(runCtx, tool.Binary, args); err != nil {
		// Missing executables and timeouts are ordinary attempt
		// failures; the chain moves on.
		e.logger.Debug("extraction tool failed",
			logging.String("tool", tool.Binary),
			logging.Error(err),
		)
		return "", false
	}

	video, err := findVideoInDir(destDir)
	if err != nil || video == "" {
		return "", false
	}
	e.logger.Debug("tool extraction succeeded",
		logging.String("tool", tool.Binary),
		logging.String("video", filepath.Base(video)),
	)
	return video, true
}

// findVideoInDir returns the first video file in dir, non-recursive, in
// lexical order.
func findVideoInDir(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() && media.IsVideoFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "", nil
	}
	sort.Strings(names)
	return filepath.Join(dir, names[0]), nil
}
