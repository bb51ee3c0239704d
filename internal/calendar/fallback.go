package calendar

import "time"

// Outside the table there is nothing to walk, so the boundary fallback only
// shifts the year by the anchor offset (57) and keeps the month and day
// numbers as they are. The results are estimates and are marked Approximate.

func (c *Converter) adToBSFallback(date time.Time) BSDate {
	year := date.Year() + c.anchor.yearOffset()
	month, dayOfMonth := int(date.Month()), date.Day()
	return BSDate{
		Year:        year,
		Month:       month,
		Day:         dayOfMonth,
		MonthName:   MonthName(month),
		Weekday:     date.Weekday(),
		ADDate:      FormatDate(date),
		BSDate:      formatBS(year, month, dayOfMonth),
		Approximate: true,
	}
}

func (c *Converter) bsToADFallback(year, month, dayOfMonth int) (ADDate, error) {
	if dayOfMonth > MaxMonthLength && !c.lenient {
		return ADDate{}, invalidDay(year, month, dayOfMonth)
	}
	// time.Date normalizes day numbers the Gregorian month does not have.
	date := time.Date(year-c.anchor.yearOffset(), time.Month(month), dayOfMonth, 0, 0, 0, 0, time.UTC)
	return newADDate(date, formatBS(year, month, dayOfMonth), true), nil
}
