package item

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted date format.
const DateLayout = "2006-01-02"

// Date is a calendar date in canonical YYYY-MM-DD form. The zero value
// is the absent date. Dates are comparable, and because the canonical
// form is fixed-width, lexicographic order of String() equals
// chronological order.
type Date struct {
	s string
}

// ParseDate validates and canonicalizes a YYYY-MM-DD string. The date
// must be a real calendar day: month 1-12, day valid for that month,
// February 29 only in leap years.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return Date{s: t.Format(DateLayout)}, nil
}

// MustDate is ParseDate for known-good literals; it panics on error.
// Intended for tests and fixtures.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the canonical 10-character form, or "" for the zero Date.
func (d Date) String() string {
	return d.s
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool {
	return d.s == ""
}

// Before reports whether d is chronologically earlier than other.
func (d Date) Before(other Date) bool {
	return d.s < other.s
}
