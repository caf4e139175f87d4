package errors

import (
	"strings"
	"unicode"
)

// ValidateLetterName validates a letter identifier for safety and correctness.
// It rejects names that could be used for path traversal or injection attacks
// when the letter is used in cache keys or file names.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 16 characters (letters are at most a glyph plus a dash)
//
// Whether the letter is actually part of the derivation alphabet is checked
// separately by the sequence loader.
func ValidateLetterName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidLetter, "letter cannot be empty")
	}

	if len(name) > 16 {
		return New(ErrCodeInvalidLetter, "letter too long (max 16 bytes)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLetter, "letter contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return New(ErrCodeInvalidLetter, "letter contains invalid characters")
	}

	return nil
}

// ValidateManifestFilename validates a manifest filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}

	// No hidden files (starting with .)
	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be a hidden file")
	}

	return nil
}

// ValidatePath validates a file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
