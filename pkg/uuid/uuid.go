// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides the identifiers used for every Vidtube entity.

  - New produces a Version 7 value, ordered by creation time, so that primary
    key indexes stay append-mostly.
  - Valid is the single source of truth for "is this a well-formed identifier".
*/
package uuid

import (
	"github.com/google/uuid"
)

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// Valid reports whether s is a UUID in canonical form: 36 characters,
// hyphenated, lower-case hex.
//
// Upper-case, URN and braced forms accepted by [uuid.Parse] are rejected so
// that only values this package could have produced pass. Services compare
// identifiers as strings, so one spelling per id is required.
func Valid(s string) bool {
	if len(s) != 36 {
		return false
	}
	id, err := uuid.Parse(s)
	return err == nil && id.String() == s
}
