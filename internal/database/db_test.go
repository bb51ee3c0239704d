package database

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"
)

// testDB creates a temporary in-memory database for testing.
func testDB(t *testing.T) *DB {
	t.Helper()

	cfg := Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	// Quiet logger for tests
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	db, err := Open(cfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

var (
	months2081 = [12]int{31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 29, 31}
	months2082 = [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}
)

// seedTestData stores BS 2081 and 2082.
func seedTestData(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()

	years := []CalendarYear{
		{Year: 2082, Months: months2082, Source: "test"},
		{Year: 2081, Months: months2081, Source: "test"},
	}
	if err := db.ImportCalendarYears(ctx, RevisionSeed, "test", years); err != nil {
		t.Fatalf("seed calendar years: %v", err)
	}
}

// -----------------------------------------------------------------
// DB tests
// -----------------------------------------------------------------

func TestOpen(t *testing.T) {
	db := testDB(t)

	ctx := context.Background()
	if err := db.Health(ctx); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}

func TestMigrate(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	// Migrations ran in testDB; running again should be a no-op
	count, err := db.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Migrate() count = %d, want 0 (already applied)", count)
	}
}

// -----------------------------------------------------------------
// CalendarYear tests
// -----------------------------------------------------------------

func TestListCalendarYears_Empty(t *testing.T) {
	db := testDB(t)

	years, err := db.ListCalendarYears(context.Background())
	if err != nil {
		t.Fatalf("ListCalendarYears() error = %v", err)
	}
	if len(years) != 0 {
		t.Errorf("len(years) = %d, want 0", len(years))
	}
}

func TestListCalendarYears_Ordered(t *testing.T) {
	db := testDB(t)
	seedTestData(t, db)

	years, err := db.ListCalendarYears(context.Background())
	if err != nil {
		t.Fatalf("ListCalendarYears() error = %v", err)
	}
	if len(years) != 2 {
		t.Fatalf("len(years) = %d, want 2", len(years))
	}
	if years[0].Year != 2081 || years[1].Year != 2082 {
		t.Errorf("years = %d, %d; want 2081, 2082", years[0].Year, years[1].Year)
	}
	if years[1].Months != months2082 {
		t.Errorf("Months = %v, want %v", years[1].Months, months2082)
	}
	if years[0].Source != "test" {
		t.Errorf("Source = %q, want %q", years[0].Source, "test")
	}
	if years[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestGetCalendarYear(t *testing.T) {
	db := testDB(t)
	seedTestData(t, db)

	y, err := db.GetCalendarYear(context.Background(), 2081)
	if err != nil {
		t.Fatalf("GetCalendarYear() error = %v", err)
	}
	if y.Months != months2081 {
		t.Errorf("Months = %v, want %v", y.Months, months2081)
	}
}

func TestGetCalendarYear_NotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.GetCalendarYear(context.Background(), 1999)
	if err != ErrNotFound {
		t.Errorf("GetCalendarYear() error = %v, want ErrNotFound", err)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false, want true")
	}
}

func TestUpsertCalendarYear_Replaces(t *testing.T) {
	db := testDB(t)
	seedTestData(t, db)
	ctx := context.Background()

	updated := months2082
	updated[6], updated[7] = 29, 30
	if err := db.UpsertCalendarYear(ctx, CalendarYear{Year: 2082, Months: updated, Source: "admin"}); err != nil {
		t.Fatalf("UpsertCalendarYear() error = %v", err)
	}

	y, err := db.GetCalendarYear(ctx, 2082)
	if err != nil {
		t.Fatalf("GetCalendarYear() error = %v", err)
	}
	if y.Months != updated {
		t.Errorf("Months = %v, want %v", y.Months, updated)
	}
	if y.Source != "admin" {
		t.Errorf("Source = %q, want %q", y.Source, "admin")
	}

	stats, err := db.GetTableStats(ctx)
	if err != nil {
		t.Fatalf("GetTableStats() error = %v", err)
	}
	if stats.Years != 2 {
		t.Errorf("Years = %d, want 2 (upsert must not duplicate)", stats.Years)
	}
}

func TestDeleteCalendarYear(t *testing.T) {
	db := testDB(t)
	seedTestData(t, db)
	ctx := context.Background()

	if err := db.DeleteCalendarYear(ctx, 2082, "admin"); err != nil {
		t.Fatalf("DeleteCalendarYear() error = %v", err)
	}
	if _, err := db.GetCalendarYear(ctx, 2082); !IsNotFound(err) {
		t.Errorf("GetCalendarYear() after delete error = %v, want ErrNotFound", err)
	}

	revs, err := db.GetRecentRevisions(ctx, 1)
	if err != nil {
		t.Fatalf("GetRecentRevisions() error = %v", err)
	}
	if len(revs) != 1 || revs[0].Action != RevisionDelete || revs[0].FirstYear != 2082 || revs[0].Source != "admin" {
		t.Errorf("latest revision = %+v, want delete of 2082 by admin", revs)
	}
}

func TestDeleteCalendarYear_NotFound(t *testing.T) {
	db := testDB(t)
	seedTestData(t, db)
	ctx := context.Background()

	before, err := db.GetRecentRevisions(ctx, 100)
	if err != nil {
		t.Fatalf("GetRecentRevisions() error = %v", err)
	}

	if err := db.DeleteCalendarYear(ctx, 1999, "admin"); !IsNotFound(err) {
		t.Errorf("DeleteCalendarYear() error = %v, want ErrNotFound", err)
	}

	// The failed delete leaves no revision behind.
	after, err := db.GetRecentRevisions(ctx, 100)
	if err != nil {
		t.Fatalf("GetRecentRevisions() error = %v", err)
	}
	if len(after) != len(before) {
		t.Errorf("revisions = %d, want %d", len(after), len(before))
	}
}

func TestGetTableStats(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	stats, err := db.GetTableStats(ctx)
	if err != nil {
		t.Fatalf("GetTableStats() error = %v", err)
	}
	if *stats != (TableStats{}) {
		t.Errorf("empty stats = %+v, want zero", *stats)
	}

	seedTestData(t, db)
	stats, err = db.GetTableStats(ctx)
	if err != nil {
		t.Fatalf("GetTableStats() error = %v", err)
	}
	want := TableStats{Years: 2, FirstYear: 2081, LastYear: 2082}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}
}

// -----------------------------------------------------------------
// Revision tests
// -----------------------------------------------------------------

func TestImportCalendarYears_RecordsRevision(t *testing.T) {
	db := testDB(t)
	seedTestData(t, db)

	revs, err := db.GetRecentRevisions(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetRecentRevisions() error = %v", err)
	}
	if len(revs) != 1 {
		t.Fatalf("len(revs) = %d, want 1", len(revs))
	}
	rev := revs[0]
	if rev.Action != RevisionSeed || rev.FirstYear != 2081 || rev.LastYear != 2082 {
		t.Errorf("revision = %+v, want seed 2081..2082", rev)
	}
}

func TestImportCalendarYears_InvalidAction(t *testing.T) {
	db := testDB(t)

	err := db.ImportCalendarYears(context.Background(), "delete", "test",
		[]CalendarYear{{Year: 2081, Months: months2081}})
	if err == nil {
		t.Fatal("ImportCalendarYears() expected error for invalid action")
	}
}

func TestRevisionAction_IsValid(t *testing.T) {
	tests := []struct {
		action RevisionAction
		want   bool
	}{
		{RevisionSeed, true},
		{RevisionImport, true},
		{RevisionUpsert, true},
		{RevisionDelete, true},
		{"delete", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			if got := tt.action.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------
// Model helper tests
// -----------------------------------------------------------------

func TestImportYear_ToCalendarYear(t *testing.T) {
	tests := []struct {
		name    string
		months  []int
		wantErr bool
	}{
		{"twelve months", months2081[:], false},
		{"eleven months", months2081[:11], true},
		{"no months", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := ImportYear{Year: 2081, Months: tt.months}.ToCalendarYear("file.json")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToCalendarYear() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && (y.Months != months2081 || y.Source != "file.json") {
				t.Errorf("ToCalendarYear() = %+v", y)
			}
		})
	}
}

func TestUnmarshalMonths_Invalid(t *testing.T) {
	for _, s := range []string{"", "[1,2,3]", "not json"} {
		if _, err := UnmarshalMonths(s); err == nil {
			t.Errorf("UnmarshalMonths(%q) expected error", s)
		}
	}
}

// -----------------------------------------------------------------
// Transaction tests
// -----------------------------------------------------------------

func TestWithTx(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *Tx) error {
		return tx.UpsertCalendarYear(ctx, CalendarYear{Year: 2081, Months: months2081})
	})
	if err != nil {
		t.Fatalf("WithTx() success case error = %v", err)
	}

	if _, err := db.GetCalendarYear(ctx, 2081); err != nil {
		t.Errorf("year not created: %v", err)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *Tx) error {
		if err := tx.UpsertCalendarYear(ctx, CalendarYear{Year: 2081, Months: months2081}); err != nil {
			return err
		}
		// Force error to trigger rollback
		return ErrNotFound
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("WithTx() rollback case error = %v, want ErrNotFound", err)
	}

	_, err = db.GetCalendarYear(ctx, 2081)
	if err != ErrNotFound {
		t.Errorf("year should not exist after rollback, got error: %v", err)
	}
}
