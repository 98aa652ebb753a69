package media

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// videoExtensions is the set of file extensions treated as playable video.
var videoExtensions = map[string]struct{}{
	".mkv":  {},
	".avi":  {},
	".mp4":  {},
	".m4v":  {},
	".wmv":  {},
	".flv":  {},
	".mov":  {},
	".mpg":  {},
	".mpeg": {},
	".ts":   {},
	".webm": {},
	".ogv":  {},
	".divx": {},
	".xvid": {},
	".3gp":  {},
	".asf":  {},
	".vob":  {},
	".rm":   {},
	".rmvb": {},
}

// DefaultVideoExtension is assumed for archives whose contents cannot be
// inspected before extraction.
const DefaultVideoExtension = ".mkv"

var rarPartPattern = regexp.MustCompile(`\.part(\d+)\.rar$`)

// IsVideoFile reports whether path has a known video extension.
func IsVideoFile(path string) bool {
	return IsVideoExtension(filepath.Ext(path))
}

// IsVideoExtension reports whether ext (including the leading dot) belongs
// to the known video extension set. Matching is case-insensitive.
func IsVideoExtension(ext string) bool {
	_, ok := videoExtensions[strings.ToLower(ext)]
	return ok
}

// IsFirstVolumeRAR reports whether path names the entry-point volume of a
// RAR archive set. A plain .rar file counts; file.partN.rar counts only for
// N == 1. Continuation volumes (.r00, .r01, file.part2.rar, ...) do not.
func IsFirstVolumeRAR(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	if !strings.HasSuffix(name, ".rar") {
		return false
	}
	if m := rarPartPattern.FindStringSubmatch(name); m != nil {
		n, err := strconv.Atoi(m[1])
		return err == nil && n == 1
	}
	return true
}
