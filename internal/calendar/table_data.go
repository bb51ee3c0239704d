package calendar

// defaultRows lists BS 2000 through 2090 as printed in the official Nepali
// calendar. New years are appended at the end once they are published.
var defaultRows = []YearRow{
	{2000, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2001, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2002, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2003, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2004, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2005, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2006, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2007, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2008, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}},
	{2009, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2010, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2011, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2012, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2013, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2014, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2015, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2016, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2017, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2018, [12]int{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2019, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2020, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2021, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2022, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2023, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2024, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2025, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2026, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2027, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2028, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2029, [12]int{31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30}},
	{2030, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2031, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2032, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2033, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2034, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2035, [12]int{30, 32, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}},
	{2036, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2037, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2038, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2039, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2040, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2041, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2042, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2043, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2044, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2045, [12]int{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2046, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2047, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2048, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2049, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2050, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2051, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2052, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2053, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2054, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2055, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2056, [12]int{31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30}},
	{2057, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2058, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2059, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2060, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2061, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2062, [12]int{30, 32, 31, 32, 31, 31, 29, 30, 29, 30, 29, 31}},
	{2063, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2064, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2065, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2066, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}},
	{2067, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2068, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2069, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2070, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2071, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2072, [12]int{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2073, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2074, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2075, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2076, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2077, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2078, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2079, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2080, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2081, [12]int{31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30}},
	{2082, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2083, [12]int{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}},
	{2084, [12]int{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}},
	{2085, [12]int{31, 32, 31, 32, 30, 31, 30, 30, 29, 30, 30, 30}},
	{2086, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}},
	{2087, [12]int{31, 31, 32, 31, 31, 31, 30, 30, 29, 30, 30, 30}},
	{2088, [12]int{30, 31, 32, 32, 30, 31, 30, 30, 29, 30, 30, 30}},
	{2089, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}},
	{2090, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}},
}
