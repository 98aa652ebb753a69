package organizer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mediaclean/internal/extract"
	"mediaclean/internal/fileutil"
	"mediaclean/internal/logging"
	"mediaclean/internal/scanner"
)

// Mode selects how planned files reach their targets.
type Mode string

const (
	// ModeCopy duplicates files, leaving originals untouched.
	ModeCopy Mode = "copy"
	// ModeMove relocates files out of the source tree.
	ModeMove Mode = "move"
)

// ParseMode validates a mode string, defaulting to copy.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeCopy, "":
		return ModeCopy, nil
	case ModeMove:
		return ModeMove, nil
	default:
		return "", Wrap(ErrValidation, "parse mode", raw, nil)
	}
}

// ProgressFunc receives (processed, total) after each planned record,
// where total counts records with a target path.
type ProgressFunc func(processed, total int)

// Executor carries out planned renames.
type Executor struct {
	logger    *slog.Logger
	mode      Mode
	extractor *extract.Extractor
	progress  ProgressFunc
}

// ExecOption configures an Executor.
type ExecOption func(*Executor)

// WithMode selects copy or move semantics.
func WithMode(mode Mode) ExecOption {
	return func(e *Executor) {
		if mode != "" {
			e.mode = mode
		}
	}
}

// WithExtractor overrides the archive extractor.
func WithExtractor(ex *extract.Extractor) ExecOption {
	return func(e *Executor) {
		if ex != nil {
			e.extractor = ex
		}
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) ExecOption {
	return func(e *Executor) {
		e.progress = fn
	}
}

// NewExecutor constructs an Executor. The default mode is copy.
func NewExecutor(logger *slog.Logger, opts ...ExecOption) *Executor {
	e := &Executor{
		logger:    logging.NewComponentLogger(logger, "organizer"),
		mode:      ModeCopy,
		extractor: extract.New(logger),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the plan record by record. Failures are isolated: one
// bad file yields an error outcome and the batch continues. Cancellation
// is honored between records; outcomes collected so far are returned
// alongside the context error.
func (e *Executor) Run(ctx context.Context, files []*scanner.EpisodeFile) ([]Outcome, error) {
	total := 0
	for _, f := range files {
		if f.NewPath != "" {
			total++
		}
	}

	outcomes := make([]Outcome, 0, len(files))
	processed := 0
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		source := filepath.Base(f.OriginalPath)
		if f.NewPath == "" {
			outcomes = append(outcomes, Outcome{Kind: OutcomeSkipped, Source: source})
			continue
		}

		outcome := e.processOne(ctx, f)
		outcomes = append(outcomes, outcome)
		processed++
		if e.progress != nil {
			e.progress(processed, total)
		}
	}
	return outcomes, nil
}

func (e *Executor) processOne(ctx context.Context, f *scanner.EpisodeFile) Outcome {
	source := filepath.Base(f.OriginalPath)

	if err := os.MkdirAll(filepath.Dir(f.NewPath), 0o755); err != nil {
		return Outcome{Kind: OutcomeError, Source: source, Err: Wrap(ErrFileOperation, "create target directory", f.NewPath, err)}
	}

	if f.NeedsExtract {
		return e.extractOne(ctx, f)
	}

	switch e.mode {
	case ModeMove:
		if err := fileutil.MoveFile(f.OriginalPath, f.NewPath); err != nil {
			return Outcome{Kind: OutcomeError, Source: source, Err: Wrap(ErrFileOperation, "move", source, err)}
		}
		e.logger.Info("moved", logging.String("source", source), logging.String("target", f.NewName))
		return Outcome{Kind: OutcomeMoved, Source: source, Target: f.NewName}
	default:
		if err := fileutil.CopyFile(f.OriginalPath, f.NewPath); err != nil {
			return Outcome{Kind: OutcomeError, Source: source, Err: Wrap(ErrFileOperation, "copy", source, err)}
		}
		e.logger.Info("copied", logging.String("source", source), logging.String("target", f.NewName))
		return Outcome{Kind: OutcomeCopied, Source: source, Target: f.NewName}
	}
}

func (e *Executor) extractOne(ctx context.Context, f *scanner.EpisodeFile) Outcome {
	source := filepath.Base(f.OriginalPath)
	targetDir := filepath.Dir(f.NewPath)

	extracted, err := e.extractor.Extract(ctx, f.OriginalPath, targetDir)
	if err != nil {
		return Outcome{Kind: OutcomeError, Source: source, Err: Wrap(ErrExtraction, "extract", source, err)}
	}

	// The extension guessed during scanning may not match what the
	// archive actually held; correct the plan before the final rename.
	realExt := strings.ToLower(filepath.Ext(extracted))
	if realExt != f.Extension {
		f.Extension = realExt
		f.NewName = strings.TrimSuffix(f.NewName, filepath.Ext(f.NewName)) + realExt
		f.NewPath = filepath.Join(targetDir, f.NewName)
	}

	if extracted != f.NewPath {
		if _, statErr := os.Stat(f.NewPath); statErr == nil {
			if err := os.Remove(f.NewPath); err != nil {
				return Outcome{Kind: OutcomeError, Source: source, Err: Wrap(ErrFileOperation, "replace target", f.NewName, err)}
			}
		}
		if err := fileutil.MoveFile(extracted, f.NewPath); err != nil {
			return Outcome{Kind: OutcomeError, Source: source, Err: Wrap(ErrFileOperation, "place extracted video", f.NewName, err)}
		}
	}

	e.logger.Info("extracted", logging.String("source", source), logging.String("target", f.NewName))
	return Outcome{Kind: OutcomeExtracted, Source: source, Target: f.NewName}
}
