package organizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks bad input (missing plan, unreadable source).
	ErrValidation = errors.New("validation error")
	// ErrExtraction marks archive extraction failures.
	ErrExtraction = errors.New("extraction error")
	// ErrFileOperation marks copy/move failures.
	ErrFileOperation = errors.New("file operation error")
)

// Wrap builds an error message that includes operation context while
// tagging it with the provided marker for later classification. The
// marker should be one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrFileOperation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "organizer failure"
	}
	return strings.Join(parts, ": ")
}
