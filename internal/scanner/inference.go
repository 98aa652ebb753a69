package scanner

import (
	"path/filepath"

	"mediaclean/internal/episodeid"
)

// InferSeasons fills in missing seasons for a scanned batch. Heuristics run
// in fixed priority, each a weaker signal than the last:
//
//  1. season markers in the folders between the file and the scan root
//  2. a season marker in the scan root's own name
//  3. batch consensus, when every resolved record agrees on one season
//  4. the terminal default, season 1
//
// After this pass no record has a nil season.
func InferSeasons(files []*EpisodeFile, root string) {
	root = filepath.Clean(root)

	for _, f := range files {
		if f.Season != nil {
			continue
		}
		if season := seasonFromPath(f.OriginalPath, root); season != nil {
			f.Season = season
			continue
		}
		if season := episodeid.SeasonFromString(filepath.Base(root)); season != nil {
			f.Season = season
		}
	}

	// Consensus is safe only when the batch is unambiguous.
	known := map[int]struct{}{}
	for _, f := range files {
		if f.Season != nil {
			known[*f.Season] = struct{}{}
		}
	}
	if len(known) == 1 {
		var consensus int
		for s := range known {
			consensus = s
		}
		for _, f := range files {
			if f.Season == nil {
				season := consensus
				f.Season = &season
			}
		}
	}

	for _, f := range files {
		if f.Season == nil {
			season := 1
			f.Season = &season
		}
	}
}

// seasonFromPath walks the folders from the file's parent up to (excluding)
// the scan root, returning the first bounded season marker found.
func seasonFromPath(path, root string) *int {
	current := filepath.Dir(filepath.Clean(path))
	for current != root {
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		if season := episodeid.SeasonFromString(filepath.Base(current)); season != nil {
			return season
		}
		current = parent
	}
	return nil
}
