// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "time"

// DateLayout is the calendar-date wire format used for attendance dates.
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a syntactically valid calendar date in
// YYYY-MM-DD form. Parsing is strict: no fuzzy formats, no time component.
//
// Example:
//
//	utils.ValidDate("2026-02-04") // true
//	utils.ValidDate("2026-2-4")   // false
//	utils.ValidDate("2026-02-30") // false
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the current UTC calendar date in YYYY-MM-DD form.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// FormatUTC renders t as an ISO-8601 / RFC 3339 string with an explicit UTC
// marker (trailing "Z"), e.g. "2026-02-04T09:15:00Z".
func FormatUTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
