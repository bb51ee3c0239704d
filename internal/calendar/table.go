// Package calendar converts dates between the Bikram Sambat (BS) calendar and
// the Gregorian (AD) calendar.
//
// Conversion walks a table of BS month lengths from a fixed reference date
// where both calendars are known to agree. Years outside the table still
// convert, but only approximately (see Approximate on BSDate and ADDate).
package calendar

import (
	"errors"
	"fmt"
	"slices"
)

// Month length bounds observed in every published BS year.
const (
	MinMonthLength = 29
	MaxMonthLength = 32

	// FallbackMonthLength is used for years the table does not cover.
	FallbackMonthLength = 30
)

// ErrInvalidTable is returned when calendar rows cannot form a Table.
var ErrInvalidTable = errors.New("invalid calendar table")

// YearRow holds the day count of each month of one BS year,
// Baishakh (index 0) through Chaitra (index 11).
type YearRow struct {
	Year   int     `json:"year"`
	Months [12]int `json:"months"`
}

// Days returns the length of the year.
func (r YearRow) Days() int {
	total := 0
	for _, n := range r.Months {
		total += n
	}
	return total
}

// Table is an immutable lookup of month lengths for a contiguous range of BS
// years. A Table is safe for concurrent use.
type Table struct {
	first int
	rows  [][12]int
}

// NewTable validates rows and builds a Table from them. Rows must be sorted by
// year with no gaps, and every month length must lie in
// [MinMonthLength, MaxMonthLength].
func NewTable(rows []YearRow) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidTable)
	}

	t := &Table{
		first: rows[0].Year,
		rows:  make([][12]int, len(rows)),
	}
	for i, row := range rows {
		if want := t.first + i; row.Year != want {
			return nil, fmt.Errorf("%w: expected year %d at position %d, got %d", ErrInvalidTable, want, i, row.Year)
		}
		for m, n := range row.Months {
			if n < MinMonthLength || n > MaxMonthLength {
				return nil, fmt.Errorf("%w: year %d month %d has %d days", ErrInvalidTable, row.Year, m+1, n)
			}
		}
		t.rows[i] = row.Months
	}
	return t, nil
}

// DefaultRows returns a copy of the built-in rows (BS 2000-2090).
func DefaultRows() []YearRow {
	rows := make([]YearRow, len(defaultRows))
	copy(rows, defaultRows)
	return rows
}

// MergeRows overlays updates on base, replacing rows for years both contain,
// and returns the result sorted by year. Duplicate years within updates are
// rejected; whether the result forms a valid Table is left to NewTable.
func MergeRows(base, updates []YearRow) ([]YearRow, error) {
	byYear := make(map[int]YearRow, len(base)+len(updates))
	for _, r := range base {
		byYear[r.Year] = r
	}
	seen := make(map[int]bool, len(updates))
	for _, r := range updates {
		if seen[r.Year] {
			return nil, fmt.Errorf("%w: year %d listed twice", ErrInvalidTable, r.Year)
		}
		seen[r.Year] = true
		byYear[r.Year] = r
	}

	rows := make([]YearRow, 0, len(byYear))
	for _, r := range byYear {
		rows = append(rows, r)
	}
	slices.SortFunc(rows, func(a, b YearRow) int { return a.Year - b.Year })
	return rows, nil
}

// DefaultTable returns a Table built from DefaultRows.
func DefaultTable() *Table {
	t, err := NewTable(defaultRows)
	if err != nil {
		panic(err)
	}
	return t
}

// FirstYear returns the earliest BS year in the table.
func (t *Table) FirstYear() int { return t.first }

// LastYear returns the latest BS year in the table.
func (t *Table) LastYear() int { return t.first + len(t.rows) - 1 }

// Contains reports whether year is covered by the table.
func (t *Table) Contains(year int) bool {
	return year >= t.FirstYear() && year <= t.LastYear()
}

// MonthLength returns the number of days in month monthIndex0 (0 = Baishakh)
// of the given BS year. For years outside the table, or a month index outside
// 0..11, it returns FallbackMonthLength. Callers that need an exact answer must
// check Contains first.
func (t *Table) MonthLength(year, monthIndex0 int) int {
	if !t.Contains(year) || monthIndex0 < 0 || monthIndex0 > 11 {
		return FallbackMonthLength
	}
	return t.rows[year-t.first][monthIndex0]
}

// YearLength returns the number of days in a BS year.
func (t *Table) YearLength(year int) int {
	if !t.Contains(year) {
		return 12 * FallbackMonthLength
	}
	return YearRow{Year: year, Months: t.rows[year-t.first]}.Days()
}

// Row returns the row for year.
func (t *Table) Row(year int) (YearRow, bool) {
	if !t.Contains(year) {
		return YearRow{}, false
	}
	return YearRow{Year: year, Months: t.rows[year-t.first]}, true
}

// Rows returns a copy of all rows in year order.
func (t *Table) Rows() []YearRow {
	rows := make([]YearRow, len(t.rows))
	for i, months := range t.rows {
		rows[i] = YearRow{Year: t.first + i, Months: months}
	}
	return rows
}

// Len returns the number of years in the table.
func (t *Table) Len() int { return len(t.rows) }
