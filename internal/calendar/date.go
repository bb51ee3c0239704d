package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidDate is returned for structurally invalid input such as a
	// month outside 1..12.
	ErrInvalidDate = errors.New("invalid date")

	// ErrOutOfRange is returned by operations that need exact month lengths
	// for a year the table does not cover.
	ErrOutOfRange = errors.New("year outside calendar table")
)

// BSDate is the result of converting a Gregorian date to Bikram Sambat.
type BSDate struct {
	Year      int          `json:"year"`
	Month     int          `json:"month"`
	Day       int          `json:"day"`
	MonthName string       `json:"month_name"`
	Weekday   time.Weekday `json:"day_of_week"`
	ADDate    string       `json:"ad_date"`
	BSDate    string       `json:"bs_date"`

	// Approximate is set when the date lies outside the table and was
	// estimated rather than looked up.
	Approximate bool `json:"approximate,omitempty"`
}

// BSDay returns the bare BS day.
func (d BSDate) BSDay() BSDay {
	return BSDay{Year: d.Year, Month: d.Month, Day: d.Day}
}

// ADDate is the result of converting a Bikram Sambat date to Gregorian.
type ADDate struct {
	Year      int          `json:"year"`
	Month     int          `json:"month"`
	Day       int          `json:"day"`
	MonthName string       `json:"month_name"`
	Weekday   time.Weekday `json:"day_of_week"`
	ADDate    string       `json:"ad_date"`
	BSDate    string       `json:"bs_date"`

	Approximate bool `json:"approximate,omitempty"`
}

// Time returns the date as midnight UTC.
func (d ADDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// ParseDateString parses a date string in YYYY-MM-DD format
func ParseDateString(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return formatAD(date.Year(), int(date.Month()), date.Day())
}

// ParseBSString parses "year-month-day", with or without zero padding.
// The year may carry a leading minus sign; nothing else besides digits and
// the two separators is accepted. Only the shape is checked; ranges are left
// to the converter.
func ParseBSString(s string) (BSDay, error) {
	bad := fmt.Errorf("%w: %q is not year-month-day", ErrInvalidDate, s)

	neg := strings.HasPrefix(s, "-")
	parts := strings.Split(strings.TrimPrefix(s, "-"), "-")
	if len(parts) != 3 {
		return BSDay{}, bad
	}

	var nums [3]int
	for i, p := range parts {
		if p == "" || strings.TrimLeft(p, "0123456789") != "" {
			return BSDay{}, bad
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return BSDay{}, bad
		}
		nums[i] = n
	}
	if neg {
		nums[0] = -nums[0]
	}
	return BSDay{Year: nums[0], Month: nums[1], Day: nums[2]}, nil
}

// formatAD keeps four digit years. Years before 1 AD follow astronomical
// numbering (0 is 1 BC) and are written with a leading minus, as in
// ISO 8601 expanded years: -0056-01-01.
func formatAD(year, month, day int) string {
	if year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -year, month, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func formatBS(year, month, day int) string {
	return fmt.Sprintf("%d-%d-%d", year, month, day)
}

// civilDay drops the clock reading and location of t, keeping the calendar
// date it shows.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
