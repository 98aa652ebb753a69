package episodeid

import (
	"path/filepath"
	"strconv"
	"strings"
)

// False-positive bounds for bare numeric captures. A 4-digit token inside
// this window is far more likely a release year than an episode number.
const (
	yearWindowStart = 1950
	yearWindowEnd   = 2030
)

// resolutionHeights are vertical resolutions that show up as bare numbers
// ("720p" with the p separated, "1080", ...).
var resolutionHeights = map[int]struct{}{
	480: {}, 576: {}, 720: {}, 1080: {}, 2160: {}, 4320: {},
}

// codecNumbers are the numeric parts of h.264/h.265 style codec tags.
var codecNumbers = map[int]struct{}{
	264: {}, 265: {},
}

// Parse extracts season and episode numbers from a file or folder name.
// Either value may be nil when the name carries no usable evidence.
//
// Explicit two-capture markers are tried first and return immediately.
// Episode-only markers are tried afterwards; their captured number is
// screened by the false-positive filter (a rejected match falls through to
// the next rule, not to a hard failure) and then resolved by digit-width
// heuristics.
func Parse(name string) (season, episode *int) {
	name = stripExtension(name)

	for _, r := range seasonEpisodeRules {
		m := r.re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		s, err1 := strconv.Atoi(m[1])
		e, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil && s >= 0 && e >= 0 {
			return intPtr(s), intPtr(e)
		}
	}

	for _, r := range episodeOnlyRules {
		m := r.re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		raw := m[episodeOnlyGroup]
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		if isFalsePositive(n, raw) {
			continue
		}
		return resolveBareNumber(raw)
	}

	return nil, nil
}

// stripExtension drops a trailing file extension, but only when the final
// dot-separated token is alphabetic. "Cap.401" keeps its digits; "ep05.mkv"
// loses the ".mkv".
func stripExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name
	}
	tail := name[idx+1:]
	if tail == "" {
		return name
	}
	for _, r := range tail {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return name
		}
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// isFalsePositive reports whether a bare numeric capture is actually a
// release year, resolution height, or codec identifier.
func isFalsePositive(n int, raw string) bool {
	if len(raw) == 4 && n >= yearWindowStart && n <= yearWindowEnd {
		return true
	}
	if _, ok := resolutionHeights[n]; ok {
		return true
	}
	if _, ok := codecNumbers[n]; ok {
		return true
	}
	return false
}

func intPtr(v int) *int { return &v }
