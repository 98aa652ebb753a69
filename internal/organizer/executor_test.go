package organizer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mediaclean/internal/extract"
	"mediaclean/internal/logging"
	"mediaclean/internal/organizer"
	"mediaclean/internal/scanner"
	"mediaclean/internal/testsupport"
)

type failingExecutor struct{}

func (failingExecutor) Run(context.Context, string, []string) error {
	return errors.New("binary not found")
}

func TestParseMode(t *testing.T) {
	if mode, err := organizer.ParseMode(""); err != nil || mode != organizer.ModeCopy {
		t.Errorf("ParseMode(\"\") = %v, %v", mode, err)
	}
	if mode, err := organizer.ParseMode("Move"); err != nil || mode != organizer.ModeMove {
		t.Errorf("ParseMode(Move) = %v, %v", mode, err)
	}
	if _, err := organizer.ParseMode("link"); !errors.Is(err, organizer.ErrValidation) {
		t.Errorf("ParseMode(link) err = %v", err)
	}
}

func TestRunCopyMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source", "show.s01e01.mkv")
	testsupport.WriteFile(t, src, "video")

	f := &scanner.EpisodeFile{
		OriginalPath: src,
		Season:       intPtr(1),
		Episode:      intPtr(1),
		SeriesGuess:  "Show",
		Extension:    ".mkv",
	}
	organizer.Plan([]*scanner.EpisodeFile{f}, nil, filepath.Join(dir, "out"))

	var calls [][2]int
	exec := organizer.NewExecutor(logging.NewNop(), organizer.WithProgress(func(done, total int) {
		calls = append(calls, [2]int{done, total})
	}))
	outcomes, err := exec.Run(context.Background(), []*scanner.EpisodeFile{f})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(outcomes) != 1 || outcomes[0].Kind != organizer.OutcomeCopied {
		t.Fatalf("outcomes = %#v", outcomes)
	}
	if _, err := os.Stat(f.NewPath); err != nil {
		t.Errorf("target missing: %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("copy mode should keep the original: %v", err)
	}
	if len(calls) != 1 || calls[0] != [2]int{1, 1} {
		t.Errorf("progress calls = %v", calls)
	}
}

func TestRunMoveMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source", "show.s01e02.mkv")
	testsupport.WriteFile(t, src, "video")

	f := &scanner.EpisodeFile{
		OriginalPath: src,
		Season:       intPtr(1),
		Episode:      intPtr(2),
		SeriesGuess:  "Show",
		Extension:    ".mkv",
	}
	organizer.Plan([]*scanner.EpisodeFile{f}, nil, filepath.Join(dir, "out"))

	exec := organizer.NewExecutor(logging.NewNop(), organizer.WithMode(organizer.ModeMove))
	outcomes, err := exec.Run(context.Background(), []*scanner.EpisodeFile{f})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if outcomes[0].Kind != organizer.OutcomeMoved {
		t.Fatalf("outcomes = %#v", outcomes)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("move mode should remove the original, stat err = %v", err)
	}
	if _, err := os.Stat(f.NewPath); err != nil {
		t.Errorf("target missing: %v", err)
	}
}

func TestRunSkipsUnplanned(t *testing.T) {
	f := &scanner.EpisodeFile{OriginalPath: "/src/mystery.mkv", Extension: ".mkv"}
	exec := organizer.NewExecutor(logging.NewNop())
	outcomes, err := exec.Run(context.Background(), []*scanner.EpisodeFile{f})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(outcomes) != 1 || outcomes[0].Kind != organizer.OutcomeSkipped {
		t.Fatalf("outcomes = %#v", outcomes)
	}
}

func TestRunExtractCorrectsExtension(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source", "show.s01e03.rar")
	testsupport.WriteFile(t, src, "not a real archive")

	f := &scanner.EpisodeFile{
		OriginalPath: src,
		Season:       intPtr(1),
		Episode:      intPtr(3),
		SeriesGuess:  "Show",
		Extension:    ".mkv", // guessed during scan
		NeedsExtract: true,
	}
	organizer.Plan([]*scanner.EpisodeFile{f}, nil, filepath.Join(dir, "out"))

	extractor := extract.New(logging.NewNop(), extract.WithLibraryMethod(func(_, destDir string) (string, error) {
		out := filepath.Join(destDir, "inner.avi")
		testsupport.WriteFile(t, out, "video payload")
		return out, nil
	}))
	exec := organizer.NewExecutor(logging.NewNop(), organizer.WithExtractor(extractor))

	outcomes, err := exec.Run(context.Background(), []*scanner.EpisodeFile{f})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if outcomes[0].Kind != organizer.OutcomeExtracted {
		t.Fatalf("outcomes = %#v", outcomes)
	}
	if f.Extension != ".avi" {
		t.Errorf("extension should be corrected, got %q", f.Extension)
	}
	if f.NewName != "Show - S01E03.avi" {
		t.Errorf("NewName = %q", f.NewName)
	}
	if _, err := os.Stat(f.NewPath); err != nil {
		t.Errorf("final target missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(f.NewPath), "inner.avi")); !os.IsNotExist(err) {
		t.Errorf("extracted temp name should be renamed away, stat err = %v", err)
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	badRAR := filepath.Join(dir, "source", "broken.s01e01.rar")
	goodSrc := filepath.Join(dir, "source", "show.s01e02.mkv")
	testsupport.WriteFile(t, badRAR, "junk")
	testsupport.WriteFile(t, goodSrc, "video")

	files := []*scanner.EpisodeFile{
		{OriginalPath: badRAR, Season: intPtr(1), Episode: intPtr(1), SeriesGuess: "Show", Extension: ".mkv", NeedsExtract: true},
		{OriginalPath: goodSrc, Season: intPtr(1), Episode: intPtr(2), SeriesGuess: "Show", Extension: ".mkv"},
	}
	organizer.Plan(files, nil, filepath.Join(dir, "out"))

	extractor := extract.New(logging.NewNop(),
		extract.WithExecutor(failingExecutor{}),
		extract.WithLibraryMethod(func(_, _ string) (string, error) {
			return "", extract.ErrNoVideoFound
		}))
	exec := organizer.NewExecutor(logging.NewNop(), organizer.WithExtractor(extractor))

	outcomes, err := exec.Run(context.Background(), files)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("outcomes = %#v", outcomes)
	}
	if outcomes[0].Kind != organizer.OutcomeError || !errors.Is(outcomes[0].Err, organizer.ErrExtraction) {
		t.Errorf("first outcome = %+v", outcomes[0])
	}
	if outcomes[1].Kind != organizer.OutcomeCopied {
		t.Errorf("second record should still be processed, got %+v", outcomes[1])
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &scanner.EpisodeFile{OriginalPath: "/src/x.mkv", Extension: ".mkv"}
	exec := organizer.NewExecutor(logging.NewNop())
	outcomes, err := exec.Run(ctx, []*scanner.EpisodeFile{f})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if len(outcomes) != 0 {
		t.Errorf("outcomes = %#v", outcomes)
	}
}

func TestOutcomeStrings(t *testing.T) {
	o := organizer.Outcome{Kind: organizer.OutcomeCopied, Source: "a.mkv", Target: "Show - S01E01.mkv"}
	if got := o.String(); got != "COPY: a.mkv  -->  Show - S01E01.mkv" {
		t.Errorf("String() = %q", got)
	}
	counts := organizer.Summary([]organizer.Outcome{
		{Kind: organizer.OutcomeCopied},
		{Kind: organizer.OutcomeCopied},
		{Kind: organizer.OutcomeSkipped},
	})
	if counts[organizer.OutcomeCopied] != 2 || counts[organizer.OutcomeSkipped] != 1 {
		t.Errorf("Summary = %#v", counts)
	}
}
