package calendar

import (
	"context"
	"fmt"

	"github.com/zapponejosh/patro-api/internal/database"
)

// SourceBuiltin tags rows seeded from DefaultRows.
const SourceBuiltin = "builtin"

// TableSource is where persisted calendar rows come from.
// This allows us to use either *database.DB or a stub in tests.
type TableSource interface {
	ListCalendarYears(ctx context.Context) ([]database.CalendarYear, error)
}

// TableStore is a TableSource that can also be written to.
type TableStore interface {
	TableSource
	ImportCalendarYears(ctx context.Context, action database.RevisionAction, source string, years []database.CalendarYear) error
}

// LoadTable reads every stored year from src and builds a Table.
func LoadTable(ctx context.Context, src TableSource) (*Table, error) {
	years, err := src.ListCalendarYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calendar years: %w", err)
	}

	rows := make([]YearRow, len(years))
	for i, y := range years {
		rows[i] = YearRow{Year: y.Year, Months: y.Months}
	}
	return NewTable(rows)
}

// EnsureSeeded stores DefaultRows when the store holds no years yet.
// It reports whether it wrote anything.
func EnsureSeeded(ctx context.Context, store TableStore) (bool, error) {
	years, err := store.ListCalendarYears(ctx)
	if err != nil {
		return false, fmt.Errorf("list calendar years: %w", err)
	}
	if len(years) > 0 {
		return false, nil
	}

	if err := store.ImportCalendarYears(ctx, database.RevisionSeed, SourceBuiltin, SeedRows(DefaultRows(), SourceBuiltin)); err != nil {
		return false, fmt.Errorf("seed calendar years: %w", err)
	}
	return true, nil
}

// SeedRows converts built-in rows to database records tagged with source.
func SeedRows(rows []YearRow, source string) []database.CalendarYear {
	years := make([]database.CalendarYear, len(rows))
	for i, r := range rows {
		years[i] = database.CalendarYear{
			Year:   r.Year,
			Months: r.Months,
			Source: source,
		}
	}
	return years
}
