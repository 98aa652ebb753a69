package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"mediaclean/internal/extract"
	"mediaclean/internal/history"
	"mediaclean/internal/logging"
	"mediaclean/internal/metadata"
	"mediaclean/internal/organizer"
	"mediaclean/internal/scanner"
	"mediaclean/internal/textutil"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var (
		seasonFlag   int
		seriesIDFlag int64
		modeFlag     string
		offlineFlag  bool
	)

	cmd := &cobra.Command{
		Use:   "organize <folder>",
		Short: "Scan a download tree and organize it into a clean library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			root, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve scan root: %w", err)
			}

			mode, err := organizer.ParseMode(firstNonEmpty(modeFlag, cfg.Organize.Mode))
			if err != nil {
				return err
			}

			files, err := scanner.New(logger).Scan(cmd.Context(), root)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintln(out, "No video files found")
				return nil
			}
			if seasonFlag > 0 {
				scanner.OverrideSeason(files, seasonFlag)
			}

			series := resolveSeries(cmd.Context(), ctx, logger, files, seriesIDFlag, offlineFlag)

			outputBase := cfg.OutputBaseFor(root)
			organizer.Plan(files, series, outputBase)

			if err := os.MkdirAll(outputBase, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			lock := flock.New(filepath.Join(outputBase, ".mediaclean.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire output lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another organize run is already writing to %s", outputBase)
			}
			defer func() {
				_ = lock.Unlock()
			}()

			extractor := extract.New(logger,
				extract.WithTools(extract.ToolsFromCandidates(cfg.Extraction.UnrarCandidates, cfg.Extraction.SevenZipCandidates)),
				extract.WithTimeout(time.Duration(cfg.Extraction.ToolTimeout)*time.Second),
			)
			executor := organizer.NewExecutor(logger,
				organizer.WithMode(mode),
				organizer.WithExtractor(extractor),
				organizer.WithProgress(func(processed, total int) {
					fmt.Fprintf(out, "\r%d/%d processed", processed, total)
				}),
			)

			startedAt := time.Now()
			outcomes, runErr := executor.Run(cmd.Context(), files)
			fmt.Fprintln(out)

			colors := stdoutIsTerminal()
			for _, o := range outcomes {
				line := o.String()
				switch o.Kind {
				case organizer.OutcomeError:
					line = colorize(line, ansiRed, colors)
				case organizer.OutcomeCopied, organizer.OutcomeMoved, organizer.OutcomeExtracted:
					line = colorize(line, ansiGreen, colors)
				}
				fmt.Fprintln(out, line)
			}

			counts := organizer.Summary(outcomes)
			fmt.Fprintf(out, "\nDone: %d copied, %d moved, %d extracted, %d skipped, %d failed\n",
				counts[organizer.OutcomeCopied], counts[organizer.OutcomeMoved],
				counts[organizer.OutcomeExtracted], counts[organizer.OutcomeSkipped],
				counts[organizer.OutcomeError])
			fmt.Fprintf(out, "Library: %s\n", outputBase)

			recordRun(cmd.Context(), ctx, logger, root, string(mode), seriesName(series, files), startedAt, outcomes)
			return runErr
		},
	}

	cmd.Flags().IntVar(&seasonFlag, "season", 0, "Force this season for every file")
	cmd.Flags().Int64Var(&seriesIDFlag, "series-id", 0, "Provider series id to use instead of searching")
	cmd.Flags().StringVar(&modeFlag, "mode", "", "File mode: copy or move (overrides config)")
	cmd.Flags().BoolVar(&offlineFlag, "offline", false, "Skip metadata lookups; filenames get no episode titles")
	return cmd
}

// resolveSeries fetches series metadata and episode titles. Metadata is
// best-effort: any failure logs a warning and organizing proceeds with
// the guessed name and no titles.
func resolveSeries(ctx context.Context, cmdCtx *commandContext, logger *slog.Logger, files []*scanner.EpisodeFile, seriesID int64, offline bool) *metadata.Series {
	if offline || len(files) == 0 {
		return nil
	}
	provider, err := cmdCtx.provider()
	if err != nil {
		logger.Warn("metadata disabled", logging.Error(err))
		return nil
	}

	var series metadata.Series
	if seriesID > 0 {
		series, err = provider.SeriesDetails(ctx, seriesID)
	} else {
		var results []metadata.Series
		results, err = provider.Search(ctx, files[0].SeriesGuess)
		if err == nil && len(results) == 0 {
			err = fmt.Errorf("no matches for %q", files[0].SeriesGuess)
		}
		if err == nil {
			series = results[0]
		}
	}
	if err != nil {
		logger.Warn("series lookup failed", logging.Error(err))
		return nil
	}

	if err := provider.LoadEpisodes(ctx, &series, distinctSeasons(files)); err != nil {
		logger.Warn("episode lookup failed", logging.String("series", series.Name), logging.Error(err))
	}
	return &series
}

func distinctSeasons(files []*scanner.EpisodeFile) []int {
	seen := make(map[int]struct{})
	var seasons []int
	for _, f := range files {
		if f.Season == nil {
			continue
		}
		if _, ok := seen[*f.Season]; ok {
			continue
		}
		seen[*f.Season] = struct{}{}
		seasons = append(seasons, *f.Season)
	}
	return seasons
}

func seriesName(series *metadata.Series, files []*scanner.EpisodeFile) string {
	if series != nil && series.Name != "" {
		return series.Name
	}
	if len(files) > 0 {
		// Match the planner's fallback so history rows carry the same
		// name the library folder got.
		return textutil.FallbackTitle(files[0].SeriesGuess)
	}
	return ""
}

// recordRun persists the run to the history database, best-effort.
func recordRun(ctx context.Context, cmdCtx *commandContext, logger *slog.Logger, root, mode, series string, startedAt time.Time, outcomes []organizer.Outcome) {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return
	}
	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		logger.Warn("history unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	counts := organizer.Summary(outcomes)
	ops := make([]history.Operation, 0, len(outcomes))
	for _, o := range outcomes {
		op := history.Operation{Kind: string(o.Kind), Source: o.Source, Target: o.Target}
		if o.Err != nil {
			op.Detail = o.Err.Error()
		}
		ops = append(ops, op)
	}

	_, err = store.RecordRun(ctx, history.Run{
		Root:       root,
		Series:     series,
		Mode:       mode,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
		Copied:     counts[organizer.OutcomeCopied],
		Moved:      counts[organizer.OutcomeMoved],
		Extracted:  counts[organizer.OutcomeExtracted],
		Skipped:    counts[organizer.OutcomeSkipped],
		Failed:     counts[organizer.OutcomeError],
	}, ops)
	if err != nil {
		logger.Warn("history write failed", logging.String("db", store.Path()), logging.Error(err))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
