// Command coverage converts every day of a Gregorian year range through a
// running patro API and checks that each date round-trips and that
// consecutive AD days map to consecutive BS days.
//
// Usage:
//
//	go run ./cmd/coverage -start 2024 -years 4 -o coverage.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"
)

// APIResponse matches the API response structure
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type DateResponse struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	ADDate      string `json:"ad_date"`
	BSDate      string `json:"bs_date"`
	Approximate bool   `json:"approximate"`
}

// TestResult holds the result for a single date
type TestResult struct {
	Date        string `json:"date"`
	BSDate      string `json:"bs_date,omitempty"`
	BSYear      int    `json:"bs_year,omitempty"`
	Success     bool   `json:"success"`
	Approximate bool   `json:"approximate,omitempty"`
	Error       string `json:"error,omitempty"`
}

// YearStats tracks results per BS year.
type YearStats struct {
	Year        int `json:"year"`
	TotalDays   int `json:"total_days"`
	SuccessDays int `json:"success_days"`
	FailedDays  int `json:"failed_days"`
}

// Analysis holds the analyzed results
type Analysis struct {
	TotalDays    int                `json:"total_days"`
	TotalSuccess int                `json:"total_success"`
	TotalFailed  int                `json:"total_failed"`
	Approximate  int                `json:"approximate"`
	ByYear       map[int]*YearStats `json:"by_bs_year"`
	AllFailures  []TestResult       `json:"failures"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	startYear := flag.Int("start", 2024, "Start year (AD)")
	years := flag.Int("years", 4, "Number of years to test")
	verbose := flag.Bool("v", false, "Verbose output (show each date)")
	outputFile := flag.String("o", "", "Output results to JSON file")
	flag.Parse()

	endYear := *startYear + *years - 1

	fmt.Println("================================================================")
	fmt.Println("Patro API - Full Coverage Test")
	fmt.Println("================================================================")
	fmt.Printf("Base URL:    %s\n", *baseURL)
	fmt.Printf("Date Range:  %d-01-01 to %d-12-31\n", *startYear, endYear)
	fmt.Println()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	results := testAllDates(client, *baseURL, *startYear, endYear, *verbose)
	analysis := analyzeResults(results)
	printSummary(analysis)

	if *outputFile != "" {
		if err := saveResults(*outputFile, analysis); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Results written to %s\n", *outputFile)
	}

	if analysis.TotalFailed > 0 {
		os.Exit(1)
	}
}

func testAllDates(client *http.Client, baseURL string, startYear, endYear int, verbose bool) []TestResult {
	start := time.Date(startYear, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, 12, 31, 0, 0, 0, 0, time.UTC)
	totalDays := int(end.Sub(start).Hours()/24) + 1

	fmt.Printf("Testing %d days...\n\n", totalDays)

	var results []TestResult
	var prev *DateResponse
	failed, lastProgress := 0, -1

	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		dateStr := current.Format("2006-01-02")
		result, bs := testDate(client, baseURL, dateStr)

		// Exact dates must follow the previous day by exactly one BS day.
		if result.Success && prev != nil && !bs.Approximate && !prev.Approximate && !isNextDay(*prev, *bs) {
			result.Success = false
			result.Error = fmt.Sprintf("BS %s does not follow %s", bs.BSDate, prev.BSDate)
		}
		prev = bs

		results = append(results, result)
		if !result.Success {
			failed++
		}

		progress := (len(results) * 100) / totalDays
		if progress != lastProgress && progress%5 == 0 {
			fmt.Printf("  Progress: %d%% (%d/%d) - Failures: %d\n", progress, len(results), totalDays, failed)
			lastProgress = progress
		}

		if verbose {
			status := "✓"
			if !result.Success {
				status = "✗"
			}
			fmt.Printf("  %s %s -> %s\n", status, dateStr, result.BSDate)
			if !result.Success {
				fmt.Printf("      Error: %s\n", result.Error)
			}
		}
	}

	fmt.Println()
	return results
}

// isNextDay reports whether b is the BS day after a. Month lengths are not
// known here, so a new month must start at day 1 after a day of 29..32.
func isNextDay(a, b DateResponse) bool {
	switch {
	case b.Year == a.Year && b.Month == a.Month:
		return b.Day == a.Day+1
	case b.Day != 1 || a.Day < 29:
		return false
	case b.Year == a.Year:
		return b.Month == a.Month+1
	default:
		return b.Year == a.Year+1 && a.Month == 12 && b.Month == 1
	}
}

func testDate(client *http.Client, baseURL, dateStr string) (TestResult, *DateResponse) {
	result := TestResult{Date: dateStr}

	var bs DateResponse
	if err := getData(client, fmt.Sprintf("%s/api/v1/convert/ad-to-bs?date=%s", baseURL, dateStr), &bs); err != nil {
		result.Error = err.Error()
		return result, nil
	}
	result.BSDate = bs.BSDate
	result.BSYear = bs.Year
	result.Approximate = bs.Approximate

	var ad DateResponse
	url := fmt.Sprintf("%s/api/v1/convert/bs-to-ad?year=%d&month=%d&day=%d", baseURL, bs.Year, bs.Month, bs.Day)
	if err := getData(client, url, &ad); err != nil {
		result.Error = fmt.Sprintf("reverse %s: %v", bs.BSDate, err)
		return result, &bs
	}

	// Approximate results are estimates and need not round-trip.
	if !bs.Approximate && ad.ADDate != dateStr {
		result.Error = fmt.Sprintf("round trip gave %s", ad.ADDate)
		return result, &bs
	}

	result.Success = true
	return result, &bs
}

func getData(client *http.Client, url string, target any) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("connection error: %w", err)
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
		if apiResp.Error != nil {
			return fmt.Errorf("%s", apiResp.Error.Message)
		}
		return fmt.Errorf("unknown error")
	}
	return json.Unmarshal(apiResp.Data, target)
}

func analyzeResults(results []TestResult) *Analysis {
	analysis := &Analysis{
		TotalDays: len(results),
		ByYear:    make(map[int]*YearStats),
	}

	for _, r := range results {
		ys, ok := analysis.ByYear[r.BSYear]
		if !ok {
			ys = &YearStats{Year: r.BSYear}
			analysis.ByYear[r.BSYear] = ys
		}
		ys.TotalDays++

		if r.Approximate {
			analysis.Approximate++
		}
		if r.Success {
			analysis.TotalSuccess++
			ys.SuccessDays++
		} else {
			analysis.TotalFailed++
			ys.FailedDays++
			analysis.AllFailures = append(analysis.AllFailures, r)
		}
	}

	return analysis
}

func printSummary(a *Analysis) {
	fmt.Println("================================================================")
	fmt.Println("SUMMARY")
	fmt.Println("================================================================")
	fmt.Printf("Total days:   %d\n", a.TotalDays)
	fmt.Printf("Success:      %d\n", a.TotalSuccess)
	fmt.Printf("Failed:       %d\n", a.TotalFailed)
	fmt.Printf("Approximate:  %d\n", a.Approximate)
	fmt.Println()

	years := make([]int, 0, len(a.ByYear))
	for y := range a.ByYear {
		years = append(years, y)
	}
	sort.Ints(years)

	fmt.Println("By BS year:")
	for _, y := range years {
		ys := a.ByYear[y]
		fmt.Printf("  %d: %d days, %d failed\n", ys.Year, ys.TotalDays, ys.FailedDays)
	}
	fmt.Println()

	if len(a.AllFailures) > 0 {
		fmt.Println("Failures:")
		for _, f := range a.AllFailures {
			fmt.Printf("  ✗ %s: %s\n", f.Date, f.Error)
		}
		fmt.Println()
	}
}

func saveResults(path string, a *Analysis) error {
	b, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}
