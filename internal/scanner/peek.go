package scanner

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/nwaples/rardecode/v2"

	"mediaclean/internal/media"
)

// peekArchiveVideoExtension inspects a RAR archive for the extension of the
// video file it contains. Best-effort: any read failure falls back to the
// default guess, which the executor corrects after real extraction.
func peekArchiveVideoExtension(path string) string {
	rc, err := rardecode.OpenReader(path)
	if err != nil {
		return media.DefaultVideoExtension
	}
	defer rc.Close()

	for {
		header, err := rc.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return media.DefaultVideoExtension
			}
			break
		}
		if header.IsDir {
			continue
		}
		ext := strings.ToLower(filepath.Ext(header.Name))
		if media.IsVideoExtension(ext) {
			return ext
		}
	}
	return media.DefaultVideoExtension
}
