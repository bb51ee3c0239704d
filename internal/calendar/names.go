package calendar

import "time"

var monthNames = [12]string{
	"Baishakh", "Jestha", "Ashadh", "Shrawan", "Bhadra", "Ashwin",
	"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
}

// MonthName returns the BS month name for month 1 (Baishakh) through
// 12 (Chaitra), or "" for anything else.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthNames returns the twelve BS month names in order.
func MonthNames() []string {
	names := make([]string, len(monthNames))
	copy(names, monthNames[:])
	return names
}

// DayName returns the English weekday name, or "" for a value outside
// Sunday..Saturday.
func DayName(wd time.Weekday) string {
	if wd < time.Sunday || wd > time.Saturday {
		return ""
	}
	return wd.String()
}
