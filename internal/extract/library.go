package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nwaples/rardecode/v2"

	"mediaclean/internal/media"
)

// extractWithLibrary extracts the first video entry of a RAR archive
// directly into destDir, flattening any internal subfolder. Returns
// ErrNoVideoFound when the archive opens cleanly but holds no video.
func extractWithLibrary(archivePath, destDir string) (string, error) {
	rc, err := rardecode.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer rc.Close()

	for {
		header, err := rc.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", fmt.Errorf("read archive entry: %w", err)
		}
		if header.IsDir {
			continue
		}
		ext := strings.ToLower(filepath.Ext(header.Name))
		if !media.IsVideoExtension(ext) {
			continue
		}

		// Flatten: archives often wrap the video in one subfolder.
		target := filepath.Join(destDir, filepath.Base(header.Name))
		out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return "", fmt.Errorf("create extracted file: %w", err)
		}
		if _, err := io.Copy(out, rc); err != nil {
			out.Close()
			_ = os.Remove(target)
			return "", fmt.Errorf("extract %s: %w", header.Name, err)
		}
		if err := out.Close(); err != nil {
			return "", err
		}
		return target, nil
	}
	return "", ErrNoVideoFound
}
