// Package ident provides the identifier and clock primitives shared by the
// todo service: UUID record identifiers and ISO-8601 timestamps.
package ident

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NewID returns a fresh random UUIDv4 string.
func NewID() string {
	return uuid.NewString()
}

// Valid reports whether s is a syntactically well-formed UUID. It says nothing
// about whether a record with that id exists.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Now returns the current UTC instant as an ISO-8601 string with millisecond
// precision. All three todo timestamp columns use this format, which keeps
// calendar-day prefix matching (`YYYY-MM-DD%`) valid against createdAt.
func Now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// ValidDate reports whether s matches the literal YYYY-MM-DD pattern used by
// the date search operation.
func ValidDate(s string) bool {
	return datePattern.MatchString(s)
}
