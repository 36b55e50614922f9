// Package util provides common utility functions.
package util

import "strings"

// NormalizeTagName converts user input to a canonical tag name.
// The normalized name is the source of truth for tag identity: two inputs
// that normalize to the same string refer to the same tag record.
//
// Normalization rules:
//  1. Trim leading/trailing whitespace
//  2. Lowercase
//
// Examples:
//
//	" Quiet "  → "quiet"
//	"QUIET"    → "quiet"
//	"dog friendly" → "dog friendly"
func NormalizeTagName(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
