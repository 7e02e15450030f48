// Copyright (c) 2026 NailDesigns.art. All rights reserved.

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are the canonical public identifiers for designs and categories
// (e.g., "french-tip-1"). This package handles accent folding, lowercasing,
// and character sanitization, and is deterministic: the same title always
// produces the same slug.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonWord matches any character that is not a word character or hyphen.
	nonWord = regexp.MustCompile(`[^a-z0-9_-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and strips combining marks (é → e).
// 2. Converts to lowercase.
// 3. Replaces spaces with hyphens.
// 4. Strips all remaining non-word characters.
// 5. Collapses repeated hyphens and trims leading/trailing hyphens.
//
// Example: "French Tip #1!" → "french-tip-1".
func From(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Spaces become hyphens
	result = strings.ReplaceAll(result, " ", "-")

	// 4. Strip everything that is not a word character or hyphen
	result = nonWord.ReplaceAllString(result, "")

	// 5. Clean up hyphenation
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
