package calendar

import "time"

// MonthDay is one cell of a BS month grid.
type MonthDay struct {
	Day     int          `json:"day"`
	ADDate  string       `json:"ad_date"`
	Weekday time.Weekday `json:"day_of_week"`
}

// Month describes a BS month laid out for a calendar grid.
type Month struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	Days      int    `json:"days"`

	// StartWeekday is the weekday of day 1, i.e. the number of empty cells
	// before it in a Sunday-first grid.
	StartWeekday time.Weekday `json:"start_day_of_week"`
	FirstAD      string       `json:"first_ad_date"`
	LastAD       string       `json:"last_ad_date"`
	Dates        []MonthDay   `json:"dates"`
}

// Month builds the grid for a BS month. Unlike the converters it does not
// estimate: years outside the table return ErrOutOfRange.
func (c *Converter) Month(year, month int) (Month, error) {
	n, err := c.DaysInMonth(year, month)
	if err != nil {
		return Month{}, err
	}

	first := c.anchor.AD.AddDate(0, 0, c.daysFromAnchor(year, month, 1))
	m := Month{
		Year:         year,
		Month:        month,
		MonthName:    MonthName(month),
		Days:         n,
		StartWeekday: first.Weekday(),
		FirstAD:      FormatDate(first),
		LastAD:       FormatDate(first.AddDate(0, 0, n-1)),
		Dates:        make([]MonthDay, n),
	}
	for i := range m.Dates {
		d := first.AddDate(0, 0, i)
		m.Dates[i] = MonthDay{
			Day:     i + 1,
			ADDate:  FormatDate(d),
			Weekday: d.Weekday(),
		}
	}
	return m, nil
}
