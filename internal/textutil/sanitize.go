package textutil

import (
	"regexp"
	"strings"
)

// illegalPathChars are characters not allowed in file or folder names on at
// least one supported filesystem.
var illegalPathChars = regexp.MustCompile(`[\\/:*?"<>|]`)

var spaceRun = regexp.MustCompile(`\s+`)

// SanitizeName removes characters illegal in file paths and collapses runs
// of whitespace to single spaces. Idempotent: sanitizing an already-clean
// name returns it unchanged.
func SanitizeName(name string) string {
	name = illegalPathChars.ReplaceAllString(name, "")
	name = spaceRun.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
