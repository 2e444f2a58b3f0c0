// File: stringx.go
// Title: Core String Utility Functions
// Description: Small string helpers shared by the pattern parser, the type
//              registry and the schema binder.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-18 v0.2.0: Reduced to blank handling and affix helpers

package stringx

import (
	"strings"
	"unicode"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first non-blank string, or "" if there is none.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// FromBlankDefault returns s unless it is blank, in which case defaultValue
// is returned.
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// Enclosed reports whether s starts with open and ends with close without
// the two overlapping.
func Enclosed(s, open, close string) bool {
	return len(s) >= len(open)+len(close) &&
		strings.HasPrefix(s, open) &&
		strings.HasSuffix(s, close)
}

// Unwrap removes open and close from the ends of s when Enclosed holds and
// reports whether it did.
func Unwrap(s, open, close string) (string, bool) {
	if !Enclosed(s, open, close) {
		return s, false
	}
	return s[len(open) : len(s)-len(close)], true
}

// CutPrefix removes prefix from s. An empty prefix never matches.
func CutPrefix(s, prefix string) (string, bool) {
	if prefix == "" {
		return s, false
	}
	return strings.CutPrefix(s, prefix)
}
