// Command apitest runs a smoke test against a running patro API.
//
// Usage:
//
//	go run ./cmd/apitest -url http://localhost:8080
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// DateResponse covers both conversion directions.
type DateResponse struct {
	Year           int    `json:"year"`
	Month          int    `json:"month"`
	Day            int    `json:"day"`
	MonthName      string `json:"month_name"`
	DayOfWeek      int    `json:"day_of_week"`
	ADDate         string `json:"ad_date"`
	BSDate         string `json:"bs_date"`
	Approximate    bool   `json:"approximate"`
	LocalMonthName string `json:"local_month_name"`
}

type TodayResponse struct {
	Date     DateResponse `json:"date"`
	Timezone string       `json:"timezone"`
}

type RangeResponse struct {
	FirstYear int    `json:"first_year"`
	LastYear  int    `json:"last_year"`
	FirstAD   string `json:"first_ad_date"`
	LastAD    string `json:"last_ad_date"`
}

type MonthResponse struct {
	Days    int    `json:"days"`
	FirstAD string `json:"first_ad_date"`
	LastAD  string `json:"last_ad_date"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Patro API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testToday()
	tr.testKnownDates()
	tr.testRange()
	tr.testMonths()
	tr.testErrors()

	tr.printSummary()
}

// knownDates pairs published new-year and festival dates.
var knownDates = []struct {
	ad, bs, description string
}{
	{"1943-04-14", "2000-1-1", "Start of table"},
	{"2024-01-01", "2080-9-16", "Gregorian new year 2024"},
	{"2024-04-13", "2081-1-1", "New year 2081"},
	{"2025-04-14", "2082-1-1", "New year 2082"},
	{"2025-10-18", "2082-7-1", "Kartik 2082"},
	{"2026-04-14", "2083-1-1", "New year 2083"},
	{"2034-04-13", "2090-12-30", "End of table"},
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health HealthResponse
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testToday() {
	tr.printSection("Today")

	var today TodayResponse
	if err := tr.getData("/api/v1/today", &today); err != nil {
		tr.recordError("Today", err.Error())
		return
	}
	tr.recordSuccess(fmt.Sprintf("Today: %s BS (%s AD, UTC%s)",
		today.Date.BSDate, today.Date.ADDate, today.Timezone))

	var ne TodayResponse
	if err := tr.getData("/api/v1/today?lang=ne", &ne); err != nil {
		tr.recordError("Today (ne)", err.Error())
		return
	}
	if ne.Date.LocalMonthName != "" && ne.Date.LocalMonthName != ne.Date.MonthName {
		tr.recordSuccess(fmt.Sprintf("Nepali month name: %s", ne.Date.LocalMonthName))
	} else {
		tr.recordError("Today (ne)", fmt.Sprintf("Month name not localized: %q", ne.Date.LocalMonthName))
	}
}

func (tr *TestRunner) testKnownDates() {
	tr.printSection("Known Dates")

	for _, tc := range knownDates {
		var bs DateResponse
		if err := tr.getData("/api/v1/convert/ad-to-bs?date="+tc.ad, &bs); err != nil {
			tr.recordError(tc.ad, err.Error())
			continue
		}
		if bs.BSDate != tc.bs {
			tr.recordError(tc.ad, fmt.Sprintf("Expected %s BS, got %s", tc.bs, bs.BSDate))
			continue
		}

		var ad DateResponse
		if err := tr.getData("/api/v1/convert/bs-to-ad?date="+tc.bs, &ad); err != nil {
			tr.recordError(tc.bs, err.Error())
			continue
		}
		if ad.ADDate != tc.ad {
			tr.recordError(tc.bs, fmt.Sprintf("Expected %s AD, got %s", tc.ad, ad.ADDate))
			continue
		}

		tr.recordSuccess(fmt.Sprintf("%s <-> %s (%s)", tc.ad, tc.bs, tc.description))
		if tr.verbose {
			fmt.Printf("    %s %d, %s\n", bs.MonthName, bs.Day, time.Weekday(bs.DayOfWeek))
		}
	}
}

func (tr *TestRunner) testRange() {
	tr.printSection("Table Range")

	var rng RangeResponse
	if err := tr.getData("/api/v1/calendar/range", &rng); err != nil {
		tr.recordError("Range", err.Error())
		return
	}
	tr.recordSuccess(fmt.Sprintf("Table covers %d-%d BS (%s to %s)",
		rng.FirstYear, rng.LastYear, rng.FirstAD, rng.LastAD))

	var bs DateResponse
	path := fmt.Sprintf("/api/v1/convert/bs-to-ad?year=%d&month=1&day=1", rng.LastYear+5)
	if err := tr.getData(path, &bs); err != nil {
		tr.recordError("Beyond range", err.Error())
		return
	}
	if bs.Approximate {
		tr.recordSuccess("Dates past the table are marked approximate")
	} else {
		tr.recordError("Beyond range", "Expected approximate result")
	}
}

func (tr *TestRunner) testMonths() {
	tr.printSection("Month Grids")

	var m MonthResponse
	if err := tr.getData("/api/v1/calendar/2082/7", &m); err != nil {
		tr.recordError("Kartik 2082", err.Error())
		return
	}
	if m.FirstAD == "2025-10-18" {
		tr.recordSuccess(fmt.Sprintf("Kartik 2082: %d days, %s to %s", m.Days, m.FirstAD, m.LastAD))
	} else {
		tr.recordError("Kartik 2082", fmt.Sprintf("Expected to start 2025-10-18, got %s", m.FirstAD))
	}

	resp, err := tr.getRaw("/api/v1/calendar/2082/7/ics")
	if err != nil {
		tr.recordError("ICS", err.Error())
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusOK && strings.Count(string(body), "BEGIN:VEVENT") == m.Days {
		tr.recordSuccess(fmt.Sprintf("ICS export has %d events", m.Days))
	} else {
		tr.recordError("ICS", fmt.Sprintf("HTTP %d", resp.StatusCode))
	}
}

func (tr *TestRunner) testErrors() {
	tr.printSection("Error Handling")

	testCases := []struct {
		path   string
		status int
		desc   string
	}{
		{"/api/v1/convert/ad-to-bs?date=not-a-date", http.StatusBadRequest, "Malformed AD date"},
		{"/api/v1/convert/bs-to-ad?year=2082&month=13&day=1", http.StatusBadRequest, "Month 13"},
		{"/api/v1/convert/bs-to-ad?year=2082&month=7&day=32", http.StatusBadRequest, "Day past month end"},
		{"/api/v1/calendar/2200/1", http.StatusNotFound, "Month grid outside table"},
	}

	for _, tc := range testCases {
		resp, err := tr.getRaw(tc.path)
		if err != nil {
			tr.recordError(tc.desc, err.Error())
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == tc.status {
			tr.recordSuccess(fmt.Sprintf("%s returns %d", tc.desc, tc.status))
		} else {
			tr.recordError(tc.desc, fmt.Sprintf("Expected %d, got %d", tc.status, resp.StatusCode))
		}
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

func (tr *TestRunner) getData(path string, target any) error {
	resp, err := tr.getRaw(path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return fmt.Errorf("API error: %s", errMsg)
	}

	return json.Unmarshal(apiResp.Data, target)
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	return tr.client.Get(tr.baseURL + path)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
		return
	}
	fmt.Println("All tests passed! ✓")
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *verbose)
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
