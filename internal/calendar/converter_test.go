package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()
	c, err := New(DefaultTable(), opts...)
	require.NoError(t, err)
	return c
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestADToBS_KnownDates(t *testing.T) {
	c := newTestConverter(t)

	tests := []struct {
		name    string
		ad      time.Time
		want    BSDay
		weekday time.Weekday
	}{
		{"anchor", date(1943, time.April, 14), BSDay{2000, 1, 1}, time.Wednesday},
		{"new year 2082", date(2025, time.April, 14), BSDay{2082, 1, 1}, time.Monday},
		{"kartik 2082", date(2025, time.October, 18), BSDay{2082, 7, 1}, time.Saturday},
		{"last day of ashwin 2082", date(2025, time.October, 17), BSDay{2082, 6, 31}, time.Friday},
		{"new year 2083", date(2026, time.April, 14), BSDay{2083, 1, 1}, time.Tuesday},
		{"gregorian new year 2024", date(2024, time.January, 1), BSDay{2080, 9, 16}, time.Monday},
		{"last table day", date(2034, time.April, 13), BSDay{2090, 12, 30}, time.Thursday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ADToBS(tt.ad)
			assert.Equal(t, tt.want, got.BSDay())
			assert.Equal(t, tt.weekday, got.Weekday)
			assert.Equal(t, MonthName(tt.want.Month), got.MonthName)
			assert.Equal(t, FormatDate(tt.ad), got.ADDate)
			assert.Equal(t, tt.want.String(), got.BSDate)
			assert.False(t, got.Approximate)
		})
	}
}

func TestADToBS_IgnoresClockAndZone(t *testing.T) {
	c := newTestConverter(t)

	late := time.Date(2025, time.April, 14, 23, 59, 59, 0, NepalTime)
	early := time.Date(2025, time.April, 14, 0, 0, 1, 0, time.FixedZone("west", -10*3600))

	assert.Equal(t, BSDay{2082, 1, 1}, c.ADToBS(late).BSDay())
	assert.Equal(t, BSDay{2082, 1, 1}, c.ADToBS(early).BSDay())
}

func TestADToBS_BeforeAnchorFallsBack(t *testing.T) {
	c := newTestConverter(t)

	got := c.ADToBS(date(1943, time.April, 13))

	assert.True(t, got.Approximate)
	assert.Equal(t, BSDay{2000, 4, 13}, got.BSDay())
	assert.Equal(t, "Shrawan", got.MonthName)
	assert.Equal(t, time.Tuesday, got.Weekday)
	assert.Equal(t, "1943-04-13", got.ADDate)
}

func TestADToBS_PastTableEnd(t *testing.T) {
	c := newTestConverter(t)

	got := c.ADToBS(date(2034, time.April, 14))
	assert.Equal(t, BSDay{2091, 1, 1}, got.BSDay())
	assert.True(t, got.Approximate)

	// 30-day months from here on.
	got = c.ADToBS(date(2034, time.May, 14))
	assert.Equal(t, BSDay{2091, 2, 1}, got.BSDay())

	// Far dates still terminate.
	got = c.ADToBS(date(2600, time.January, 1))
	assert.True(t, got.Approximate)
	assert.Greater(t, got.Year, 2600)
}

func TestBSToAD_KnownDates(t *testing.T) {
	c := newTestConverter(t)

	tests := []struct {
		bs   BSDay
		want string
		wd   time.Weekday
	}{
		{BSDay{2000, 1, 1}, "1943-04-14", time.Wednesday},
		{BSDay{2082, 1, 1}, "2025-04-14", time.Monday},
		{BSDay{2082, 7, 1}, "2025-10-18", time.Saturday},
		{BSDay{2081, 1, 1}, "2024-04-13", time.Saturday},
		{BSDay{2090, 12, 30}, "2034-04-13", time.Thursday},
	}

	for _, tt := range tests {
		t.Run(tt.bs.String(), func(t *testing.T) {
			got, err := c.BSToAD(tt.bs.Year, tt.bs.Month, tt.bs.Day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ADDate)
			assert.Equal(t, tt.wd, got.Weekday)
			assert.Equal(t, tt.bs.String(), got.BSDate)
			assert.Equal(t, got.Time().Month().String(), got.MonthName)
			assert.False(t, got.Approximate)
		})
	}
}

func TestBSToAD_InvalidInput(t *testing.T) {
	c := newTestConverter(t)

	tests := []struct {
		name             string
		year, month, day int
	}{
		{"month zero", 2080, 0, 1},
		{"month thirteen", 2080, 13, 1},
		{"day zero", 2080, 1, 0},
		{"day past baishakh 2082", 2082, 1, 32},
		{"day past chaitra 2090", 2090, 12, 31},
		{"out of range month", 1500, 14, 1},
		{"out of range day", 1500, 1, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.BSToAD(tt.year, tt.month, tt.day)
			assert.True(t, errors.Is(err, ErrInvalidDate), "got %v", err)
		})
	}
}

func TestBSToAD_Lenient(t *testing.T) {
	c := newTestConverter(t, WithLenientDays())
	require.True(t, c.Lenient())

	got, err := c.BSToAD(2082, 1, 32)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-15", got.ADDate)
	assert.Equal(t, "2082-1-32", got.BSDate)
	assert.Equal(t, BSDay{2082, 2, 1}, c.ADToBS(got.Time()).BSDay())

	// Structural errors are still errors.
	_, err = c.BSToAD(2082, 13, 1)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestBSToAD_OutOfRangeFallsBack(t *testing.T) {
	c := newTestConverter(t)

	got, err := c.BSToAD(1500, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1500-(2000-1943), got.Year)
	assert.Equal(t, 1443, got.Year)
	assert.Equal(t, "1443-01-01", got.ADDate)
	assert.Equal(t, "1500-1-1", got.BSDate)
	assert.True(t, got.Approximate)

	got, err = c.BSToAD(2100, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, "2043-05-10", got.ADDate)
	assert.True(t, got.Approximate)
}

func TestBSToAD_NonPositiveADYears(t *testing.T) {
	c := newTestConverter(t)

	tests := []struct {
		year   int
		wantAD string
		adYear int
	}{
		{58, "0001-01-01", 1},
		{57, "0000-01-01", 0},
		{1, "-0056-01-01", -56},
		{0, "-0057-01-01", -57},
		{-5, "-0062-01-01", -62},
	}

	for _, tt := range tests {
		got, err := c.BSToAD(tt.year, 1, 1)
		require.NoError(t, err, "year %d", tt.year)
		assert.Equal(t, tt.wantAD, got.ADDate, "year %d", tt.year)
		assert.Equal(t, tt.adYear, got.Year, "year %d", tt.year)
		assert.True(t, got.Approximate)
	}

	// The estimate inverts for these years too.
	bs := c.ADToBS(date(-56, time.January, 1))
	assert.Equal(t, BSDay{Year: 1, Month: 1, Day: 1}, bs.BSDay())
	assert.Equal(t, "-0056-01-01", bs.ADDate)
	assert.True(t, bs.Approximate)
}

func TestRoundTrip_WholeTable(t *testing.T) {
	c := newTestConverter(t)
	table := c.Table()

	for y := table.FirstYear(); y <= table.LastYear(); y++ {
		for m := 1; m <= 12; m++ {
			for d := 1; d <= table.MonthLength(y, m-1); d++ {
				ad, err := c.BSToAD(y, m, d)
				if err != nil {
					t.Fatalf("BSToAD(%d, %d, %d) error = %v", y, m, d, err)
				}
				got := c.ADToBS(ad.Time())
				if want := (BSDay{y, m, d}); got.BSDay() != want {
					t.Fatalf("ADToBS(BSToAD(%s)) = %s", want, got.BSDay())
				}
				if got.Weekday != ad.Weekday {
					t.Fatalf("weekday mismatch for %s: %v vs %v", got.BSDate, got.Weekday, ad.Weekday)
				}
			}
		}
	}
}

func TestMonthLengthConformance(t *testing.T) {
	c := newTestConverter(t)
	lenient := newTestConverter(t, WithLenientDays())
	table := c.Table()

	for y := table.FirstYear(); y <= table.LastYear(); y++ {
		for m := 1; m <= 12; m++ {
			n := table.MonthLength(y, m-1)

			first, err := c.BSToAD(y, m, 1)
			require.NoError(t, err)
			last, err := c.BSToAD(y, m, n)
			require.NoError(t, err)
			assert.Equal(t, n-1, int(last.Time().Sub(first.Time()).Hours()/24), "%d-%d", y, m)

			over, err := lenient.BSToAD(y, m, n+1)
			require.NoError(t, err)
			wantYear, wantMonth := y, m+1
			if wantMonth > 12 {
				wantYear, wantMonth = y+1, 1
			}
			assert.Equal(t, BSDay{wantYear, wantMonth, 1}, c.ADToBS(over.Time()).BSDay(), "%d-%d", y, m)
		}
	}
}

func TestADToBS_Monotonic(t *testing.T) {
	c := newTestConverter(t)

	prev := c.ADToBS(date(1943, time.April, 14)).BSDay()
	end := date(2034, time.April, 13)
	for d := date(1943, time.April, 15); !d.After(end); d = d.AddDate(0, 0, 1) {
		cur := c.ADToBS(d).BSDay()
		if !prev.Before(cur) {
			t.Fatalf("ADToBS(%s) = %s, not after %s", FormatDate(d), cur, prev)
		}
		prev = cur
	}
}

func TestNew_AnchorValidation(t *testing.T) {
	table := DefaultTable()

	_, err := New(nil)
	assert.ErrorIs(t, err, ErrInvalidTable)

	bad := DefaultAnchor()
	bad.BS.Year = 2001
	_, err = New(table, WithAnchor(bad))
	assert.ErrorIs(t, err, ErrInvalidTable)

	bad = DefaultAnchor()
	bad.BS.Day = 31 // Baishakh 2000 has 30 days
	_, err = New(table, WithAnchor(bad))
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestNew_AnchorMidMonth(t *testing.T) {
	// Same instant as the default anchor, expressed ten days later.
	a := Anchor{
		BS: BSDay{Year: 2000, Month: 1, Day: 11},
		AD: date(1943, time.April, 24),
	}
	c := newTestConverter(t, WithAnchor(a))

	got, err := c.BSToAD(2000, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "1943-04-14", got.ADDate)

	ad, err := c.BSToAD(2082, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-18", ad.ADDate)
	assert.Equal(t, BSDay{2082, 7, 1}, c.ADToBS(date(2025, time.October, 18)).BSDay())
}

func TestDaysInMonth(t *testing.T) {
	c := newTestConverter(t)

	n, err := c.DaysInMonth(2082, 3)
	require.NoError(t, err)
	assert.Equal(t, 32, n)

	_, err = c.DaysInMonth(2200, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = c.DaysInMonth(2082, 0)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
