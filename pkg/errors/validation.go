package errors

import (
	"strings"
	"unicode"
)

// maxSeriesIDLength bounds series ids accepted from chart files and requests.
const maxSeriesIDLength = 256

// ValidateSeriesID validates a series id for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters or null bytes
//   - No leading or trailing whitespace
//   - Maximum length of 256 characters
func ValidateSeriesID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidSeries, "series id cannot be empty")
	}

	if len(id) > maxSeriesIDLength {
		return New(ErrCodeInvalidSeries, "series id too long (max %d characters)", maxSeriesIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSeries, "series id %q contains control characters", id)
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidSeries, "series id %q has surrounding whitespace", id)
	}

	return nil
}

// ValidateGroups checks declared groups for structural problems.
//
// Validation rules:
//   - Every group has at least one member
//   - Every member is a valid series id
//   - No id appears twice inside the same group
//
// A series may belong to several groups; the group index assigner merges
// such groups transitively, so overlap is not an error.
func ValidateGroups(groups [][]string) error {
	for i, g := range groups {
		if len(g) == 0 {
			return New(ErrCodeInvalidGroup, "group %d is empty", i)
		}
		seen := make(map[string]bool, len(g))
		for _, id := range g {
			if err := ValidateSeriesID(id); err != nil {
				return Wrap(ErrCodeInvalidGroup, err, "group %d", i)
			}
			if seen[id] {
				return New(ErrCodeInvalidGroup, "group %d lists %q twice", i, id)
			}
			seen[id] = true
		}
	}
	return nil
}

// ValidatePath validates a data file path referenced from a chart file.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative to the chart file)
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

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateOneOf checks that value is a member of allowed.
// Empty values are accepted; callers apply defaults afterwards.
func ValidateOneOf(code Code, field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return New(code, "invalid %s: %q (must be one of: %s)", field, value, strings.Join(allowed, ", "))
}
