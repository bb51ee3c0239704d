package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
var migrationsSQL = map[int]string{
	1: migrationV1CalendarYears,
	2: migrationV2CalendarRevisions,
}

// migrationV1CalendarYears stores the BS month-length table.
//
// One row per BS year. The twelve month lengths are kept as a JSON array
// ('[31,31,32,...]') rather than twelve columns, matching how the table is
// published and imported.
const migrationV1CalendarYears = `
CREATE TABLE IF NOT EXISTS calendar_years (
    year INTEGER PRIMARY KEY,

    -- JSON array of 12 month lengths, Baishakh first
    months TEXT NOT NULL,

    -- Where the row came from: "builtin", an import file name, "admin"
    source TEXT NOT NULL DEFAULT '',

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// migrationV2CalendarRevisions records every change made to calendar_years
// so a bad import can be traced.
const migrationV2CalendarRevisions = `
CREATE TABLE IF NOT EXISTS calendar_revisions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    -- seed, import, upsert, delete
    action TEXT NOT NULL CHECK (action IN ('seed', 'import', 'upsert', 'delete')),

    first_year INTEGER NOT NULL,
    last_year INTEGER NOT NULL,
    source TEXT NOT NULL DEFAULT '',

    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_calendar_revisions_created
    ON calendar_revisions(created_at);
`
