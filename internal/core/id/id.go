// Package id provides UUID v7 based identifiers.
// UUID v7 is time-ordered which gives better index locality in Postgres
// and lets us recover the creation instant from the identifier itself.
package id

import (
	"time"

	"github.com/google/uuid"
)

// ID is the identifier type used across all entities
type ID = uuid.UUID

// Nil is the zero ID
var Nil = uuid.Nil

// New generates a new UUID v7.
// Falls back to v4 in the (practically impossible) case v7 generation fails.
func New() ID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// Parse parses an ID from string
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse parses an ID from string, panics on error.
// Use only in tests and for compile-time constants.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// IsNil checks if ID is the zero value
func IsNil(id ID) bool {
	return id == uuid.Nil
}

// Timestamp recovers the creation time embedded in a v7 ID.
// Returns the zero time for non-v7 identifiers.
func Timestamp(id ID) time.Time {
	if id.Version() != 7 {
		return time.Time{}
	}
	sec, nsec := id.Time().UnixTime()
	return time.Unix(sec, nsec)
}
