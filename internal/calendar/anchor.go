package calendar

import (
	"fmt"
	"time"
)

// BSDay is a bare BS calendar day with 1-indexed month and day.
type BSDay struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d BSDay) Compare(other BSDay) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is before other.
func (d BSDay) Before(other BSDay) bool {
	return d.Compare(other) < 0
}

// String formats the day as "year-month-day" without zero padding.
func (d BSDay) String() string {
	return fmt.Sprintf("%d-%d-%d", d.Year, d.Month, d.Day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Anchor binds a BS day to the Gregorian day it falls on. Both converters
// walk from it.
type Anchor struct {
	BS BSDay
	AD time.Time // midnight UTC
}

// DefaultAnchor returns 1 Baishakh 2000 BS = 14 April 1943 AD.
func DefaultAnchor() Anchor {
	return Anchor{
		BS: BSDay{Year: 2000, Month: 1, Day: 1},
		AD: time.Date(1943, time.April, 14, 0, 0, 0, 0, time.UTC),
	}
}

// validate checks that the anchor sits on the first year of the table and
// names a real day of it.
func (a Anchor) validate(t *Table) error {
	if a.BS.Year != t.FirstYear() {
		return fmt.Errorf("%w: anchor year %d is not the first table year %d", ErrInvalidTable, a.BS.Year, t.FirstYear())
	}
	if a.BS.Month < 1 || a.BS.Month > 12 {
		return fmt.Errorf("%w: anchor month %d", ErrInvalidTable, a.BS.Month)
	}
	if a.BS.Day < 1 || a.BS.Day > t.MonthLength(a.BS.Year, a.BS.Month-1) {
		return fmt.Errorf("%w: anchor day %s", ErrInvalidTable, a.BS)
	}
	return nil
}

// yearOffset is the approximate distance in years between the two
// calendars, used only by the boundary fallback.
func (a Anchor) yearOffset() int {
	return a.BS.Year - a.AD.Year()
}
