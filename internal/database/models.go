package database

import (
	"encoding/json"
	"fmt"
	"time"
)

// CalendarYear is one stored row of the BS month-length table.
type CalendarYear struct {
	Year      int       `json:"year"`
	Months    [12]int   `json:"months"` // Baishakh..Chaitra
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RevisionAction describes what changed the calendar table.
type RevisionAction string

const (
	RevisionSeed   RevisionAction = "seed"
	RevisionImport RevisionAction = "import"
	RevisionUpsert RevisionAction = "upsert"
	RevisionDelete RevisionAction = "delete"
)

// IsValid checks if a revision action is valid.
func (a RevisionAction) IsValid() bool {
	switch a {
	case RevisionSeed, RevisionImport, RevisionUpsert, RevisionDelete:
		return true
	}
	return false
}

// CalendarRevision is an audit entry for a change to calendar_years.
type CalendarRevision struct {
	ID        int64          `json:"id"`
	Action    RevisionAction `json:"action"`
	FirstYear int            `json:"first_year"`
	LastYear  int            `json:"last_year"`
	Source    string         `json:"source"`
	CreatedAt time.Time      `json:"created_at"`
}

// TableStats summarizes the stored table.
type TableStats struct {
	Years     int `json:"years"`
	FirstYear int `json:"first_year"`
	LastYear  int `json:"last_year"`
}

// -----------------------------------------------------------------
// Import file format
// -----------------------------------------------------------------

// ImportData is the JSON document read by cmd/import.
type ImportData struct {
	Metadata ImportMetadata `json:"metadata"`
	Years    []ImportYear   `json:"years"`
}

// ImportMetadata describes where an import file came from.
type ImportMetadata struct {
	Source      string `json:"source"`
	GeneratedAt string `json:"generated_at"`
}

// ImportYear is one year in an import file.
type ImportYear struct {
	Year   int   `json:"year"`
	Months []int `json:"months"`
}

// ToCalendarYear checks the month count and converts the entry.
func (y ImportYear) ToCalendarYear(source string) (CalendarYear, error) {
	if len(y.Months) != 12 {
		return CalendarYear{}, fmt.Errorf("year %d: expected 12 months, got %d", y.Year, len(y.Months))
	}
	cy := CalendarYear{Year: y.Year, Source: source}
	copy(cy.Months[:], y.Months)
	return cy, nil
}

// -----------------------------------------------------------------
// JSON helpers
// -----------------------------------------------------------------

// MarshalMonths encodes month lengths for the months column.
func MarshalMonths(months [12]int) (string, error) {
	b, err := json.Marshal(months)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnmarshalMonths decodes the months column.
func UnmarshalMonths(s string) ([12]int, error) {
	var months []int
	if err := json.Unmarshal([]byte(s), &months); err != nil {
		return [12]int{}, err
	}
	if len(months) != 12 {
		return [12]int{}, fmt.Errorf("expected 12 months, got %d", len(months))
	}
	var out [12]int
	copy(out[:], months)
	return out, nil
}
