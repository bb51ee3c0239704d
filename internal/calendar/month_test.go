package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Month(t *testing.T) {
	c := newTestConverter(t)

	m, err := c.Month(2082, 1)
	require.NoError(t, err)

	assert.Equal(t, "Baishakh", m.MonthName)
	assert.Equal(t, 31, m.Days)
	assert.Equal(t, time.Monday, m.StartWeekday)
	assert.Equal(t, "2025-04-14", m.FirstAD)
	assert.Equal(t, "2025-05-14", m.LastAD)
	require.Len(t, m.Dates, 31)
	assert.Equal(t, MonthDay{Day: 1, ADDate: "2025-04-14", Weekday: time.Monday}, m.Dates[0])
	assert.Equal(t, MonthDay{Day: 31, ADDate: "2025-05-14", Weekday: time.Wednesday}, m.Dates[30])
}

func TestConverter_MonthsAreAdjacent(t *testing.T) {
	c := newTestConverter(t)

	prev, err := c.Month(2081, 12)
	require.NoError(t, err)
	for m := 1; m <= 12; m++ {
		cur, err := c.Month(2082, m)
		require.NoError(t, err)

		last, _ := ParseDateString(prev.LastAD)
		first, _ := ParseDateString(cur.FirstAD)
		assert.Equal(t, last.AddDate(0, 0, 1), first, "month %d", m)
		prev = cur
	}
}

func TestConverter_MonthErrors(t *testing.T) {
	c := newTestConverter(t)

	_, err := c.Month(2091, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = c.Month(2082, 13)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
