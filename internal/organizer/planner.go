package organizer

import (
	"fmt"
	"path/filepath"

	"mediaclean/internal/metadata"
	"mediaclean/internal/scanner"
	"mediaclean/internal/textutil"
)

// BuildName assembles a Plex-compatible filename:
//
//	Show Name - S01E01 - Episode Title.ext
//
// The title segment is omitted when no episode title is known.
func BuildName(seriesName string, season, episode int, episodeTitle, extension string) string {
	safeSeries := textutil.SanitizeName(seriesName)
	code := fmt.Sprintf("S%02dE%02d", season, episode)
	if episodeTitle != "" {
		return fmt.Sprintf("%s - %s - %s%s", safeSeries, code, textutil.SanitizeName(episodeTitle), extension)
	}
	return fmt.Sprintf("%s - %s%s", safeSeries, code, extension)
}

// Plan assigns NewName and NewPath to every identified record, using
// episode titles from series metadata when loaded. Records without both
// season and episode are left unplanned. No file operations happen here.
//
// A nil series falls back to the batch's series guess, run through
// textutil.FallbackTitle so raw lowercase folder guesses still produce a
// presentable library folder; an empty guess yields "Unknown Series".
func Plan(files []*scanner.EpisodeFile, series *metadata.Series, outputBase string) {
	seriesName := ""
	if series != nil {
		seriesName = series.Name
	}
	if seriesName == "" {
		guess := ""
		if len(files) > 0 {
			guess = files[0].SeriesGuess
		}
		seriesName = textutil.FallbackTitle(guess)
	}

	seriesDir := filepath.Join(outputBase, textutil.SanitizeName(seriesName))
	for _, f := range files {
		if !f.Identified() {
			continue
		}
		season, episode := *f.Season, *f.Episode

		title := ""
		if series != nil {
			if ep, ok := series.Episode(season, episode); ok {
				title = ep.Title
			}
		}

		f.NewName = BuildName(seriesName, season, episode, title, f.Extension)
		f.NewPath = filepath.Join(seriesDir, fmt.Sprintf("Season %02d", season), f.NewName)
	}
}
