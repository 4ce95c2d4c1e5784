package errors

import (
	"strings"
	"unicode"
)

// MinLineLen is the smallest accepted header-line limit. A standard header
// for a single k-mer unitig already needs a few dozen bytes.
const MinLineLen = 64

// ValidateKmerSize validates a k-mer size for graph construction.
//
// Validation rules:
//   - k must be positive
//   - k must be odd unless allowEven is set; even k lets a k-mer equal its own
//     reverse complement, which produces self-loops in the graph
func ValidateKmerSize(k int, allowEven bool) error {
	if k <= 0 {
		return New(ErrCodeInvalidInput, "k-mer size must be positive, got %d", k)
	}
	if k%2 == 0 && !allowEven {
		return New(ErrCodeInvalidInput, "k-mer size %d is even; use an odd k to avoid self-loops", k)
	}
	return nil
}

// ValidateMaxLineLen validates the maximum header-line length.
func ValidateMaxLineLen(n int) error {
	if n < MinLineLen {
		return New(ErrCodeInvalidInput, "max line length must be at least %d, got %d", MinLineLen, n)
	}
	return nil
}

// ValidatePath validates an input or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path has leading or trailing whitespace")
	}

	return nil
}
