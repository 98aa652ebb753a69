package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// FallbackTitle turns a raw folder- or file-derived string into a
// presentable title: separators become spaces, everything non-alphanumeric
// is dropped, and the result is title-cased. Used when no metadata provider
// supplied a proper series name.
func FallbackTitle(raw string) string {
	var cleaned strings.Builder
	prevSpace := false
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Unknown Series"
	}
	return titleCaser.String(title)
}
