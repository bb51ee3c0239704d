// Command import loads BS month-length rows from a JSON file into the
// SQLite database.
//
// Usage:
//
//	go run ./cmd/import -json data/calendar.json -db data/patro.db
//	go run ./cmd/import -write-builtin data/calendar.json
//
// This tool:
// 1. Parses the JSON file
// 2. Creates/opens the SQLite database and runs migrations
// 3. Merges the file over the stored rows and checks the result still forms
//    a valid, contiguous table starting at the anchor year
// 4. Upserts every row and records one revision, in a single transaction
//
// The import is idempotent: rows are upserted by year.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/zapponejosh/patro-api/internal/calendar"
	"github.com/zapponejosh/patro-api/internal/database"
	"github.com/zapponejosh/patro-api/internal/logger"
)

func main() {
	jsonPath := flag.String("json", "data/calendar.json", "Path to calendar JSON file")
	dbPath := flag.String("db", "data/patro.db", "Path to SQLite database")
	writeBuiltin := flag.String("write-builtin", "", "Write the built-in table as JSON to this path and exit")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	log := logger.New(os.Stdout, level, "text")

	var err error
	if *writeBuiltin != "" {
		err = writeBuiltinFile(*writeBuiltin, log)
	} else {
		err = run(*jsonPath, *dbPath, log)
	}
	if err != nil {
		log.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("import complete")
}

func run(jsonPath, dbPath string, log *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	// =========================================================================
	// Step 1: Read and parse JSON
	// =========================================================================
	log.Info("reading JSON file", slog.String("path", jsonPath))

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("read JSON file: %w", err)
	}

	var importData database.ImportData
	if err := json.Unmarshal(data, &importData); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}

	source := importData.Metadata.Source
	if source == "" {
		source = filepath.Base(jsonPath)
	}

	years := make([]database.CalendarYear, 0, len(importData.Years))
	updates := make([]calendar.YearRow, 0, len(importData.Years))
	for _, y := range importData.Years {
		cy, err := y.ToCalendarYear(source)
		if err != nil {
			return err
		}
		years = append(years, cy)
		updates = append(updates, calendar.YearRow{Year: cy.Year, Months: cy.Months})
	}

	log.Info("parsed JSON",
		slog.Int("years", len(years)),
		slog.String("source", source),
		slog.String("generated_at", importData.Metadata.GeneratedAt),
	)

	// =========================================================================
	// Step 2: Open database and run migrations
	// =========================================================================
	log.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Info("migrations complete", slog.Int("applied", migrated))

	// =========================================================================
	// Step 3: Check the merged table before writing anything
	// =========================================================================
	stored, err := db.ListCalendarYears(ctx)
	if err != nil {
		return fmt.Errorf("list stored years: %w", err)
	}
	base := make([]calendar.YearRow, len(stored))
	for i, y := range stored {
		base[i] = calendar.YearRow{Year: y.Year, Months: y.Months}
	}

	merged, err := calendar.MergeRows(base, updates)
	if err != nil {
		return err
	}
	table, err := calendar.NewTable(merged)
	if err != nil {
		return fmt.Errorf("merged table: %w", err)
	}
	if _, err := calendar.New(table); err != nil {
		return fmt.Errorf("merged table: %w", err)
	}

	// =========================================================================
	// Step 4: Import in a transaction
	// =========================================================================
	action := database.RevisionImport
	if len(stored) == 0 {
		action = database.RevisionSeed
	}
	if err := db.ImportCalendarYears(ctx, action, source, years); err != nil {
		return fmt.Errorf("import data: %w", err)
	}

	stats, err := db.GetTableStats(ctx)
	if err != nil {
		return fmt.Errorf("table stats: %w", err)
	}

	elapsed := time.Since(startTime)
	log.Info("import verified",
		slog.Int("years", stats.Years),
		slog.Int("first_year", stats.FirstYear),
		slog.Int("last_year", stats.LastYear),
		slog.Duration("elapsed", elapsed),
	)

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Rows in file:        %d\n", len(years))
	fmt.Printf("Revision action:     %s\n", action)
	fmt.Printf("Stored years:        %d (%d-%d)\n", stats.Years, stats.FirstYear, stats.LastYear)
	fmt.Printf("Time elapsed:        %v\n", elapsed.Round(time.Millisecond))

	return nil
}

// writeBuiltinFile writes the compiled-in table in the import format, as a
// starting point for corrections.
func writeBuiltinFile(path string, log *slog.Logger) error {
	rows := calendar.DefaultRows()
	out := database.ImportData{
		Metadata: database.ImportMetadata{
			Source:      calendar.SourceBuiltin,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Years: make([]database.ImportYear, len(rows)),
	}
	for i, r := range rows {
		out.Years[i] = database.ImportYear{Year: r.Year, Months: r.Months[:]}
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Info("wrote built-in table", slog.String("path", path), slog.Int("years", len(rows)))
	return nil
}
