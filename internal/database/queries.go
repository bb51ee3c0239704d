package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// querier is satisfied by both *DB and *Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns nil if parsing fails.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return &t
		}
	}
	return nil
}

// =============================================================================
// Calendar Year Queries
// =============================================================================

const calendarYearColumns = `year, months, source, created_at, updated_at`

// ListCalendarYears returns every stored year in ascending order.
// This is what the API loads its conversion table from.
func (db *DB) ListCalendarYears(ctx context.Context) ([]CalendarYear, error) {
	return listCalendarYears(ctx, db)
}

func listCalendarYears(ctx context.Context, q querier) ([]CalendarYear, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+calendarYearColumns+` FROM calendar_years ORDER BY year ASC`)
	if err != nil {
		return nil, fmt.Errorf("query calendar years: %w", err)
	}
	defer rows.Close()

	var years []CalendarYear
	for rows.Next() {
		y, err := scanCalendarYear(rows)
		if err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calendar years: %w", err)
	}

	return years, nil
}

// GetCalendarYear returns one stored year.
// Returns ErrNotFound if the year is not stored.
func (db *DB) GetCalendarYear(ctx context.Context, year int) (*CalendarYear, error) {
	row := db.QueryRowContext(ctx, `SELECT `+calendarYearColumns+` FROM calendar_years WHERE year = ?`, year)

	y, err := scanCalendarYear(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &y, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCalendarYear(s scanner) (CalendarYear, error) {
	var y CalendarYear
	var monthsJSON string
	var createdAtStr, updatedAtStr sql.NullString

	if err := s.Scan(&y.Year, &monthsJSON, &y.Source, &createdAtStr, &updatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return y, err
		}
		return y, fmt.Errorf("scan calendar year: %w", err)
	}

	months, err := UnmarshalMonths(monthsJSON)
	if err != nil {
		return y, fmt.Errorf("unmarshal months for %d: %w", y.Year, err)
	}
	y.Months = months

	if t := parseTimestamp(createdAtStr); t != nil {
		y.CreatedAt = *t
	}
	if t := parseTimestamp(updatedAtStr); t != nil {
		y.UpdatedAt = *t
	}
	return y, nil
}

// UpsertCalendarYear inserts a year or replaces its month lengths.
//
// Uses INSERT ... ON CONFLICT ... DO UPDATE so it is safe to run
// repeatedly with the same data.
func (db *DB) UpsertCalendarYear(ctx context.Context, year CalendarYear) error {
	return upsertCalendarYear(ctx, db, year)
}

// UpsertCalendarYear is the transactional form of DB.UpsertCalendarYear.
func (tx *Tx) UpsertCalendarYear(ctx context.Context, year CalendarYear) error {
	return upsertCalendarYear(ctx, tx, year)
}

func upsertCalendarYear(ctx context.Context, q querier, year CalendarYear) error {
	monthsJSON, err := MarshalMonths(year.Months)
	if err != nil {
		return fmt.Errorf("marshal months: %w", err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO calendar_years (year, months, source, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(year) DO UPDATE SET
			months = excluded.months,
			source = excluded.source,
			updated_at = datetime('now')
	`, year.Year, monthsJSON, year.Source)
	if err != nil {
		return fmt.Errorf("upsert calendar year %d: %w", year.Year, err)
	}
	return nil
}

// ImportCalendarYears upserts all years and records one revision, in a
// single transaction.
func (db *DB) ImportCalendarYears(ctx context.Context, action RevisionAction, source string, years []CalendarYear) error {
	if len(years) == 0 {
		return nil
	}
	if !action.IsValid() {
		return fmt.Errorf("invalid revision action %q", action)
	}

	first, last := years[0].Year, years[0].Year
	for _, y := range years {
		first = min(first, y.Year)
		last = max(last, y.Year)
	}

	return db.WithTx(ctx, func(tx *Tx) error {
		for _, y := range years {
			if err := tx.UpsertCalendarYear(ctx, y); err != nil {
				return err
			}
		}
		return tx.RecordRevision(ctx, &CalendarRevision{
			Action:    action,
			FirstYear: first,
			LastYear:  last,
			Source:    source,
		})
	})
}

// DeleteCalendarYear removes a year and records a delete revision, in a
// single transaction. Returns ErrNotFound if the year doesn't exist.
func (db *DB) DeleteCalendarYear(ctx context.Context, year int, source string) error {
	return db.WithTx(ctx, func(tx *Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM calendar_years WHERE year = ?`, year)
		if err != nil {
			return fmt.Errorf("delete calendar year: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("check rows affected: %w", err)
		}
		if rows == 0 {
			return ErrNotFound
		}

		return tx.RecordRevision(ctx, &CalendarRevision{
			Action:    RevisionDelete,
			FirstYear: year,
			LastYear:  year,
			Source:    source,
		})
	})
}

// GetTableStats returns the number of stored years and their range.
func (db *DB) GetTableStats(ctx context.Context) (*TableStats, error) {
	var stats TableStats
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(MIN(year), 0), COALESCE(MAX(year), 0)
		FROM calendar_years
	`).Scan(&stats.Years, &stats.FirstYear, &stats.LastYear)
	if err != nil {
		return nil, fmt.Errorf("query table stats: %w", err)
	}
	return &stats, nil
}

// =============================================================================
// Revision Queries
// =============================================================================

// RecordRevision appends an entry to calendar_revisions and sets its ID.
func (tx *Tx) RecordRevision(ctx context.Context, rev *CalendarRevision) error {
	return recordRevision(ctx, tx, rev)
}

// RecordRevision appends an entry to calendar_revisions and sets its ID.
func (db *DB) RecordRevision(ctx context.Context, rev *CalendarRevision) error {
	return recordRevision(ctx, db, rev)
}

func recordRevision(ctx context.Context, q querier, rev *CalendarRevision) error {
	result, err := q.ExecContext(ctx, `
		INSERT INTO calendar_revisions (action, first_year, last_year, source)
		VALUES (?, ?, ?, ?)
	`, rev.Action, rev.FirstYear, rev.LastYear, rev.Source)
	if err != nil {
		return fmt.Errorf("record revision: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get revision id: %w", err)
	}
	rev.ID = id
	return nil
}

// GetRecentRevisions returns the newest revisions first.
func (db *DB) GetRecentRevisions(ctx context.Context, limit int) ([]CalendarRevision, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, action, first_year, last_year, source, created_at
		FROM calendar_revisions
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query revisions: %w", err)
	}
	defer rows.Close()

	var revs []CalendarRevision
	for rows.Next() {
		var rev CalendarRevision
		var createdAtStr sql.NullString
		if err := rows.Scan(&rev.ID, &rev.Action, &rev.FirstYear, &rev.LastYear, &rev.Source, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scan revision row: %w", err)
		}
		if t := parseTimestamp(createdAtStr); t != nil {
			rev.CreatedAt = *t
		}
		revs = append(revs, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revision rows: %w", err)
	}

	return revs, nil
}
