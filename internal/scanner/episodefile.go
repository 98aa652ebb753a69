package scanner

import (
	"path/filepath"
	"strings"
)

// EpisodeFile is one physical media unit discovered during a scan: a video
// file, or a first-volume archive standing in for a not-yet-extracted one.
//
// Season and Episode stay nil until some layer of the identification
// pipeline resolves them. NewName and NewPath are populated only by the
// rename planner and cleared whenever the identity changes afterwards, so a
// non-empty NewPath always reflects the current season/episode.
type EpisodeFile struct {
	OriginalPath string
	Season       *int
	Episode      *int
	SeriesGuess  string

	// Extension is the lower-cased extension of the playable file. For
	// archives pending extraction it is a best guess of the contained
	// type, corrected once extraction completes.
	Extension    string
	NeedsExtract bool

	NewName string
	NewPath string
}

func newEpisodeFile(path, seriesGuess string) *EpisodeFile {
	return &EpisodeFile{
		OriginalPath: path,
		SeriesGuess:  seriesGuess,
		Extension:    strings.ToLower(filepath.Ext(path)),
	}
}

// SetSeason overrides the season and invalidates any existing plan.
func (e *EpisodeFile) SetSeason(season int) {
	e.Season = &season
	e.ClearPlan()
}

// SetEpisode overrides the episode number and invalidates any existing plan.
func (e *EpisodeFile) SetEpisode(episode int) {
	e.Episode = &episode
	e.ClearPlan()
}

// ClearPlan drops the planned target name and path.
func (e *EpisodeFile) ClearPlan() {
	e.NewName = ""
	e.NewPath = ""
}

// Identified reports whether both season and episode are resolved.
func (e *EpisodeFile) Identified() bool {
	return e.Season != nil && e.Episode != nil
}

// SeasonOrZero returns the season or 0 when unresolved.
func (e *EpisodeFile) SeasonOrZero() int {
	if e.Season == nil {
		return 0
	}
	return *e.Season
}

// EpisodeOrZero returns the episode or 0 when unresolved.
func (e *EpisodeFile) EpisodeOrZero() int {
	if e.Episode == nil {
		return 0
	}
	return *e.Episode
}

// OverrideSeason assigns season to every record in the batch, clearing any
// plans. Used when the caller forces a season for the whole scan.
func OverrideSeason(files []*EpisodeFile, season int) {
	for _, f := range files {
		f.SetSeason(season)
	}
}
