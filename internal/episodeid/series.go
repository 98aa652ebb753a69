package episodeid

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// GuessSeriesName derives a best-effort series title from a folder name.
//
// The name is cut at the first season/episode marker (anything after the
// marker is release metadata, not title), standalone season markers and
// quality/codec/language junk tokens are stripped, separators are
// normalized to spaces, and the result is trimmed of whitespace and dashes.
func GuessSeriesName(folderName string) string {
	name := folderName

	// Cut at the earliest season/episode marker.
	for _, re := range seriesCutPatterns {
		if loc := re.FindStringIndex(name); loc != nil {
			name = name[:loc[0]]
		}
	}

	for _, re := range seriesStripPatterns {
		name = re.ReplaceAllString(name, "")
	}
	for _, re := range junkPatterns {
		name = re.ReplaceAllString(name, "")
	}

	name = strings.ReplaceAll(name, ".", " ")
	name = strings.ReplaceAll(name, "_", " ")
	name = whitespaceRun.ReplaceAllString(name, " ")
	return strings.Trim(name, " -–—")
}
