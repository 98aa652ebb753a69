package episodeid

import "strconv"

// Season marker sanity bounds. A folder called "T73" is more likely a
// release tag than a seventy-third season.
const (
	minSeasonMarker = 1
	maxSeasonMarker = 50
)

// SeasonFromString extracts a standalone season number from a folder name
// ("Season 4", "Temporada 4", "S04", "T4"). Returns nil when no bounded
// marker is present.
func SeasonFromString(text string) *int {
	for _, r := range seasonMarkerRules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n >= minSeasonMarker && n <= maxSeasonMarker {
			return intPtr(n)
		}
	}
	return nil
}
