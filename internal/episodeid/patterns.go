package episodeid

import "regexp"

// rule pairs a name (used in tests and debug logs) with its pattern.
// Two-capture rules extract season and episode in one match; episode-only
// rules capture a single number that is resolved by digit-width heuristics.
type rule struct {
	name string
	re   *regexp.Regexp
}

// seasonEpisodeRules are tried first, most specific first. The first rule
// whose match yields two valid non-negative captures wins outright.
var seasonEpisodeRules = []rule{
	// S01E01, s01e01, S1E1, S01.E01, S01-E01, S01_E01, S01 E01
	{"s-e", regexp.MustCompile(`[Ss](\d{1,2})[\s._-]*[Ee](\d{1,3})`)},
	// 1x01, 01x01
	{"n-x-n", regexp.MustCompile(`(\d{1,2})[xX](\d{1,3})`)},
	// T01E01, T1E01 (Spanish: Temporada / Episodio)
	{"t-e", regexp.MustCompile(`[Tt](\d{1,2})[\s._-]*[Ee](\d{1,3})`)},
	// Season 1 Episode 1, Season.1.Episode.1, Season 1 - Episode 1
	{"season-episode", regexp.MustCompile(`[Ss]eason[\s._-]*(\d{1,2})[\s._-]*[-–—]?[\s._-]*[Ee]pisode[\s._-]*(\d{1,3})`)},
	// Temporada 1 Capitulo 5, Temp.1.Ep.5, Temporada 1 Episodio 5
	{"temporada-capitulo", regexp.MustCompile(`[Tt](?:emporada|emp)[\s._-]*(\d{1,2})[\s._-]*[-–—]?[\s._-]*(?:[Cc]ap(?:itulo)?|[Ee](?:p(?:isodio)?)?)[\s._-]*(\d{1,3})`)},
}

// episodeOnlyRules are tried only when no two-capture rule matched. Each
// captures one number; group 1 is the digits, any earlier group is consumed
// context (Go's regexp has no lookbehind). Ordering encodes confidence:
// verbose markers beat bare numbers.
var episodeOnlyRules = []rule{
	// Capitulo 01, Cap 01, Cap.401, Capítulo 5
	{"capitulo", regexp.MustCompile(`[Cc]ap(?:[ií]tulo)?[\s._-]*(\d{1,4})`)},
	// Episode 01, Episodio 01, Ep.01, Ep01
	{"episode-word", regexp.MustCompile(`[Ee]p(?:isodio|isode)?[\s._-]*(\d{1,4})`)},
	// Standalone E01 not preceded by an S/T marker or another digit
	{"bare-e", regexp.MustCompile(`(?:^|[^SsTt\d])[Ee](\d{2,3})(?:[\s._\-\[\(]|$)`)},
	// Bare number after a dash separator: "- 01", "- 001"
	{"dash-number", regexp.MustCompile(`[\-–—]\s*(\d{2,4})(?:[\s._\[\(]|$)`)},
	// Bare 2-4 digit number bounded by separators (last resort),
	// e.g. "Series.Name.01.720p" or "Series Name - 01 - Title"
	{"bare-number", regexp.MustCompile(`[\s._\-](\d{2,4})(?:[\s._\-\[\(]|$)`)},
}

// episodeOnlyGroup returns the index of the digits capture for an
// episode-only rule match.
const episodeOnlyGroup = 1

// seasonMarkerRules recognize standalone season markers in folder names.
// Used by season inference, bounded to plausible season values by the caller.
var seasonMarkerRules = []rule{
	// "Season 4", "Temporada 4", "Temp 4", "Temp.4"
	{"season-word", regexp.MustCompile(`(?i)(?:season|temporada|temp)[\s.]*(\d{1,2})`)},
	// "S04", "S4" standalone
	{"bare-s", regexp.MustCompile(`\b[Ss](\d{1,2})\b`)},
	// "T04", "T4" standalone (Spanish)
	{"bare-t", regexp.MustCompile(`\b[Tt](\d{1,2})\b`)},
}

// seriesCutPatterns mark where a folder name stops being a title: everything
// from the first season/episode marker onward is release metadata.
var seriesCutPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[Ss]\d{1,2}[\s._-]*[Ee]\d`),
	regexp.MustCompile(`[Tt]\d{1,2}[\s._-]*[Ee]\d`),
	regexp.MustCompile(`\d{1,2}[xX]\d{1,3}`),
	regexp.MustCompile(`(?i)[Ss]eason[\s._-]*\d`),
	regexp.MustCompile(`(?i)[Tt](?:emporada|emp)[\s._-]*\d`),
	regexp.MustCompile(`(?i)[Cc]ap(?:i(?:tulo)?)?[\s._-]*\d`),
}

// seriesStripPatterns remove standalone season markers left inside a title.
var seriesStripPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[Ss]\d{1,2}\b`),
	regexp.MustCompile(`(?i)\b[Ss]eason\s*\d{1,2}\b`),
	regexp.MustCompile(`\b[Tt]\d{1,2}\b`),
}

// junkPatterns match quality, codec, release-group, and language tokens that
// never belong in a series title.
var junkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(720p|1080p|2160p|4k|uhd)\b`),
	regexp.MustCompile(`(?i)\b(bluray|bdrip|brrip|webrip|web-dl|webdl|hdtv|dvdrip|hdrip)\b`),
	regexp.MustCompile(`(?i)\b(x264|x265|h\.?264|h\.?265|hevc|avc|aac|ac3|dts|flac|mp3)\b`),
	regexp.MustCompile(`(?i)\b(proper|repack|internal|real)\b`),
	regexp.MustCompile(`(?i)\b(multi|dual|spanish|english|latino|castellano|spa|eng)\b`),
	regexp.MustCompile(`\[[^\]]*\]`),
	regexp.MustCompile(`\([^\)]*\)`),
	regexp.MustCompile(`\{[^\}]*\}`),
}
