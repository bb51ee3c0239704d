// Command dategen prints every month of a BS year as a calendar grid with
// the Gregorian span of each month. It uses the built-in table, so it works
// without a database.
//
// Usage:
//
//	go run ./cmd/dategen -year 2082
//	go run ./cmd/dategen -year 2082 -lang ne
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/zapponejosh/patro-api/internal/api"
	"github.com/zapponejosh/patro-api/internal/calendar"
)

func main() {
	conv, err := calendar.New(calendar.DefaultTable())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	year := flag.Int("year", calendar.NewResolver(conv).Today().Year, "BS year to print")
	lang := flag.String("lang", "en", "Language for month and weekday names (en, ne)")
	flag.Parse()

	names, err := api.NewNames(*lang)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := printYear(os.Stdout, conv, names, *lang, *year); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printYear(w io.Writer, conv *calendar.Converter, names *api.Names, lang string, year int) error {
	loc := names.Localizer(lang)

	fmt.Fprintf(w, "=== %s %s ===\n\n", localize(loc, "CalendarName"), api.Digits(lang, fmt.Sprint(year)))

	total := 0
	for month := 1; month <= 12; month++ {
		m, err := conv.Month(year, month)
		if err != nil {
			return err
		}
		total += m.Days
		printMonth(w, m, names, loc, lang)
	}

	fmt.Fprintf(w, "Days in year: %s\n", api.Digits(lang, fmt.Sprint(total)))
	return nil
}

func printMonth(w io.Writer, m calendar.Month, names *api.Names, loc *i18n.Localizer, lang string) {
	fmt.Fprintf(w, "%s (%s to %s, %s days)\n",
		names.Month(loc, m.Month), m.FirstAD, m.LastAD, api.Digits(lang, fmt.Sprint(m.Days)))

	header := make([]string, 7)
	for i, name := range names.Weekdays(loc) {
		header[i] = fmt.Sprintf("%4s", firstRunes(name, 3))
	}
	fmt.Fprintln(w, strings.Join(header, ""))

	var line strings.Builder
	line.WriteString(strings.Repeat("    ", int(m.StartWeekday)))
	col := int(m.StartWeekday)
	for _, d := range m.Dates {
		fmt.Fprintf(&line, "%4s", api.Digits(lang, fmt.Sprint(d.Day)))
		col++
		if col == 7 {
			fmt.Fprintln(w, line.String())
			line.Reset()
			col = 0
		}
	}
	if line.Len() > 0 {
		fmt.Fprintln(w, line.String())
	}
	fmt.Fprintln(w)
}

func localize(loc *i18n.Localizer, id string) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
