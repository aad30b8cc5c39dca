package errors

import (
	"strings"
	"unicode"
)

// ValidateDocumentName validates the name used to address a document in a
// store backend (a file path, a Redis key or a Mongo document ID).
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - Maximum length of 1024 characters
//
// Backend-specific rules (such as path traversal for keys) are checked by
// ValidateKey.
func ValidateDocumentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidName, "document name cannot be empty")
	}

	const maxNameLength = 1024
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "document name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "document name contains invalid control characters")
		}
	}

	return nil
}

// ValidateKey validates a document name used as a key in a shared backend.
// Keys are namespaced by the store, so separators that would escape the
// namespace are rejected.
func ValidateKey(key string) error {
	if err := ValidateDocumentName(key); err != nil {
		return err
	}

	const maxKeyLength = 256
	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidName, "key too long (max %d characters)", maxKeyLength)
	}

	for _, pattern := range []string{"..", "\\", " "} {
		if strings.Contains(key, pattern) {
			return New(ErrCodeInvalidName, "key contains invalid characters: %q", pattern)
		}
	}

	return nil
}
