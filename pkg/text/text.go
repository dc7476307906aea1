// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package text normalises user-supplied text before it is validated or stored.
package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean trims surrounding whitespace and normalises s to Unicode NFC, so that
// visually identical input compares and counts the same.
func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// CleanPtr applies [Clean] through a pointer, preserving nil.
func CleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := Clean(*s)
	return &cleaned
}

// Fold returns the lower-cased NFC form of s, for case-insensitive identifiers
// such as usernames and email addresses.
func Fold(s string) string {
	return strings.ToLower(Clean(s))
}
