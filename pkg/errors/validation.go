package errors

import (
	"strings"
	"unicode"
)

// ValidateMPN validates a raw part-number string before it enters the
// resolution pipeline. Resolution itself never fails on bad input, but
// batch and API entry points want to reject garbage early with a useful
// message instead of silently classifying it as unknown.
//
// The rules are intentionally conservative:
//   - No empty strings
//   - No control characters or null bytes
//   - Maximum length of 64 characters (the longest real MPNs are ~40)
func ValidateMPN(mpn string) error {
	trimmed := strings.TrimSpace(mpn)
	if trimmed == "" {
		return New(ErrCodeInvalidMPN, "part number cannot be empty")
	}

	if len(trimmed) > 64 {
		return New(ErrCodeInvalidMPN, "part number too long (max 64 characters)")
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidMPN, "part number contains control characters")
		}
	}

	return nil
}

// ValidateManufacturerID validates a user-supplied catalog manufacturer
// identifier. IDs are lowercase slugs used as pattern-registry owner keys,
// so anything that could collide or confuse lookups is rejected here.
func ValidateManufacturerID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidCatalog, "manufacturer id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidCatalog, "manufacturer id too long (max 64 characters)")
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return New(ErrCodeInvalidCatalog, "manufacturer id must be a lowercase slug: %q", id)
		}
	}

	return nil
}

// ValidateCatalogPath validates a user-supplied catalog file path.
// It prevents path traversal and ensures reasonable path length.
func ValidateCatalogPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "catalog path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "catalog path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "catalog path contains invalid characters")
		}
	}

	return nil
}
