package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"mediaclean/internal/episodeid"
	"mediaclean/internal/logging"
	"mediaclean/internal/media"
)

// Scanner discovers episode files beneath a root directory.
type Scanner struct {
	logger *slog.Logger
	peek   func(path string) string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithArchivePeek overrides archive content inspection (used in tests).
func WithArchivePeek(peek func(path string) string) Option {
	return func(s *Scanner) {
		if peek != nil {
			s.peek = peek
		}
	}
}

// New constructs a Scanner.
func New(logger *slog.Logger, opts ...Option) *Scanner {
	s := &Scanner{
		logger: logging.NewComponentLogger(logger, "scanner"),
		peek:   peekArchiveVideoExtension,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks root recursively and returns the identified batch, sorted by
// (season, episode) with unresolved values ordering first. Identification
// heuristics never fail; only the inability to enumerate the root is an
// error. Cancellation is checked between directories.
func (s *Scanner) Scan(ctx context.Context, root string) ([]*EpisodeFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", root)
	}

	seriesGuess := episodeid.GuessSeriesName(filepath.Base(root))
	var files []*EpisodeFile
	if err := s.scanDir(ctx, root, seriesGuess, &files); err != nil {
		return nil, err
	}

	InferSeasons(files, root)

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].SeasonOrZero() != files[j].SeasonOrZero() {
			return files[i].SeasonOrZero() < files[j].SeasonOrZero()
		}
		return files[i].EpisodeOrZero() < files[j].EpisodeOrZero()
	})

	s.logger.Info("scan completed",
		logging.String("root", root),
		logging.String("series_guess", seriesGuess),
		logging.Int("files", len(files)),
	)
	return files, nil
}

func (s *Scanner) scanDir(ctx context.Context, dir, seriesGuess string, files *[]*EpisodeFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Only the scan root is fatal; unreadable subdirectories are
		// logged and skipped so one bad mount cannot sink the batch.
		s.logger.Warn("skipping unreadable directory", logging.String("dir", dir), logging.Error(err))
		return nil
	}

	dirHasVideo := false
	firstRAR := ""

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := s.scanDir(ctx, path, seriesGuess, files); err != nil {
				return err
			}
			continue
		}
		switch {
		case media.IsVideoFile(path):
			dirHasVideo = true
			*files = append(*files, s.identifyVideo(path, seriesGuess))
		case firstRAR == "" && media.IsFirstVolumeRAR(path):
			firstRAR = path
		}
	}

	// A directory with archives but no playable video contributes one
	// record standing in for the episode inside the archive.
	if !dirHasVideo && firstRAR != "" {
		*files = append(*files, s.identifyArchive(firstRAR, seriesGuess))
	}
	return nil
}

func (s *Scanner) identifyVideo(path, seriesGuess string) *EpisodeFile {
	file := newEpisodeFile(path, seriesGuess)
	file.Season, file.Episode = parseWithParentFallback(path)
	s.logger.Debug("video identified",
		logging.String("file", filepath.Base(path)),
		logging.Int("season", file.SeasonOrZero()),
		logging.Int("episode", file.EpisodeOrZero()),
	)
	return file
}

func (s *Scanner) identifyArchive(path, seriesGuess string) *EpisodeFile {
	file := newEpisodeFile(path, seriesGuess)
	file.NeedsExtract = true
	file.Extension = s.peek(path)
	file.Season, file.Episode = parseWithParentFallback(path)
	s.logger.Debug("archive queued for extraction",
		logging.String("file", filepath.Base(path)),
		logging.String("guessed_extension", file.Extension),
	)
	return file
}

// parseWithParentFallback parses the filename and, when that yields nothing,
// retries with the immediate parent folder name.
func parseWithParentFallback(path string) (*int, *int) {
	season, episode := episodeid.Parse(filepath.Base(path))
	if season == nil && episode == nil {
		season, episode = episodeid.Parse(filepath.Base(filepath.Dir(path)))
	}
	return season, episode
}
