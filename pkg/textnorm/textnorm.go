// Copyright (c) 2026 Tutoria. All rights reserved.

// Package textnorm folds arbitrary Unicode strings into stable lookup keys.
//
// # Usage
//
// Dictionary values arrive in many scripts and casings ("Héllo", "hello ").
// Search and de-duplication need a canonical form, so every value is folded
// through [Key] before comparison or indexing.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key converts an arbitrary Unicode string into a canonical lookup key.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Collapses internal whitespace runs to a single space and trims the ends.
func Key(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, err := transform.String(t, s)
	if err != nil {
		// Fold the raw input instead of failing the lookup.
		result = s
	}

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Collapse whitespace
	return strings.Join(strings.Fields(result), " ")
}

// isMn reports whether the rune is a nonspacing combining mark.
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
