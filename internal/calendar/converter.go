package calendar

import (
	"fmt"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// Converter converts between BS and AD dates using a Table and an Anchor.
// A Converter never changes after New returns, so one value can serve any
// number of goroutines.
type Converter struct {
	table   *Table
	anchor  Anchor
	lenient bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithAnchor replaces DefaultAnchor.
func WithAnchor(a Anchor) Option {
	return func(c *Converter) {
		c.anchor = a
	}
}

// WithLenientDays makes BSToAD accept a day past the end of its month and
// carry the excess into the following month(s), instead of returning
// ErrInvalidDate.
func WithLenientDays() Option {
	return func(c *Converter) {
		c.lenient = true
	}
}

// New returns a Converter over table. The anchor must fall on the first
// year of the table.
func New(table *Table, opts ...Option) (*Converter, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: nil table", ErrInvalidTable)
	}
	c := &Converter{
		table:  table,
		anchor: DefaultAnchor(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.anchor.AD = civilDay(c.anchor.AD)
	if err := c.anchor.validate(table); err != nil {
		return nil, err
	}
	return c, nil
}

// WithTable returns a new Converter over t that keeps c's anchor and day
// handling. c itself is left unchanged.
func (c *Converter) WithTable(t *Table) (*Converter, error) {
	opts := []Option{WithAnchor(c.anchor)}
	if c.lenient {
		opts = append(opts, WithLenientDays())
	}
	return New(t, opts...)
}

// Table returns the table the converter walks.
func (c *Converter) Table() *Table { return c.table }

// Anchor returns the reference anchor.
func (c *Converter) Anchor() Anchor { return c.anchor }

// Lenient reports whether out-of-month days are carried over by BSToAD.
func (c *Converter) Lenient() bool { return c.lenient }

// ADToBS converts the calendar date shown by t to Bikram Sambat. The clock
// reading and location of t are ignored. Dates before the anchor are
// estimated by the boundary fallback; dates past the end of the table walk
// on with FallbackMonthLength months and are marked Approximate.
func (c *Converter) ADToBS(t time.Time) BSDate {
	date := civilDay(t)
	// Unix seconds rather than time.Sub, which saturates after ~292 years.
	remaining := int((date.Unix() - c.anchor.AD.Unix()) / secondsPerDay)
	if remaining < 0 {
		return c.adToBSFallback(date)
	}

	year, monthIndex, dayOfMonth := c.anchor.BS.Year, c.anchor.BS.Month-1, c.anchor.BS.Day
	for {
		// Whole years can be skipped from the first day of a year.
		if monthIndex == 0 && dayOfMonth == 1 {
			if yl := c.table.YearLength(year); remaining >= yl {
				remaining -= yl
				year++
				continue
			}
		}

		left := c.table.MonthLength(year, monthIndex) - dayOfMonth + 1
		if remaining < left {
			dayOfMonth += remaining
			break
		}
		remaining -= left
		dayOfMonth = 1
		monthIndex++
		if monthIndex > 11 {
			monthIndex = 0
			year++
		}
	}

	month := monthIndex + 1
	return BSDate{
		Year:        year,
		Month:       month,
		Day:         dayOfMonth,
		MonthName:   MonthName(month),
		Weekday:     date.Weekday(),
		ADDate:      FormatDate(date),
		BSDate:      formatBS(year, month, dayOfMonth),
		Approximate: !c.table.Contains(year),
	}
}

// BSToAD converts a BS date to Gregorian. Month must be 1..12 and day at
// least 1. Unless the converter is lenient, day must also fit in the month.
// Years outside the table are estimated by the boundary fallback and never
// fail for being out of range.
func (c *Converter) BSToAD(year, month, dayOfMonth int) (ADDate, error) {
	if month < 1 || month > 12 {
		return ADDate{}, fmt.Errorf("%w: month %d not in 1..12", ErrInvalidDate, month)
	}
	if dayOfMonth < 1 {
		return ADDate{}, fmt.Errorf("%w: day %d", ErrInvalidDate, dayOfMonth)
	}
	if !c.table.Contains(year) {
		return c.bsToADFallback(year, month, dayOfMonth)
	}
	if n := c.table.MonthLength(year, month-1); dayOfMonth > n && !c.lenient {
		return ADDate{}, invalidDay(year, month, dayOfMonth)
	}

	date := c.anchor.AD.AddDate(0, 0, c.daysFromAnchor(year, month, dayOfMonth))
	return newADDate(date, formatBS(year, month, dayOfMonth), false), nil
}

// daysFromAnchor counts the days between the anchor and a BS date.
func (c *Converter) daysFromAnchor(year, month, dayOfMonth int) int {
	total := 0
	for y := c.anchor.BS.Year; y < year; y++ {
		total += c.table.YearLength(y)
	}
	for m := 0; m < month-1; m++ {
		total += c.table.MonthLength(year, m)
	}
	total += dayOfMonth - 1

	// Offset of the anchor itself within its year.
	for m := 0; m < c.anchor.BS.Month-1; m++ {
		total -= c.table.MonthLength(c.anchor.BS.Year, m)
	}
	total -= c.anchor.BS.Day - 1
	return total
}

// DaysInMonth returns the exact length of a BS month, or ErrOutOfRange when
// the year is not in the table.
func (c *Converter) DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month %d not in 1..12", ErrInvalidDate, month)
	}
	if !c.table.Contains(year) {
		return 0, fmt.Errorf("%w: %d not in %d..%d", ErrOutOfRange, year, c.table.FirstYear(), c.table.LastYear())
	}
	return c.table.MonthLength(year, month-1), nil
}

func newADDate(date time.Time, bs string, approximate bool) ADDate {
	return ADDate{
		Year:        date.Year(),
		Month:       int(date.Month()),
		Day:         date.Day(),
		MonthName:   date.Month().String(),
		Weekday:     date.Weekday(),
		ADDate:      FormatDate(date),
		BSDate:      bs,
		Approximate: approximate,
	}
}

func invalidDay(year, month, dayOfMonth int) error {
	return fmt.Errorf("%w: %s %d has no day %d", ErrInvalidDate, MonthName(month), year, dayOfMonth)
}
