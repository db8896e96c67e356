package errors

import (
	"strings"
	"unicode"
)

// maxPathLength bounds input file paths accepted from the CLI and API.
const maxPathLength = 500

// ValidatePath validates a path to an input layout file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..) when relative
//
// Absolute paths are allowed: the CLI reads whatever the user points it at.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if !strings.HasPrefix(path, "/") && strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "relative path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateRank validates the decimal text of a 1-based path rank before it
// is parsed into a 128-bit integer.
func ValidateRank(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return New(ErrCodeInvalidInput, "rank cannot be empty")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return New(ErrCodeInvalidInput, "rank must be a decimal integer: %q", s)
		}
	}
	if strings.TrimLeft(s, "0") == "" {
		return New(ErrCodePrecondition, "rank is 1-based, got %s", s)
	}
	return nil
}
