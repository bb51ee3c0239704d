package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/patro-api/internal/config"
)

func TestNames_Lang(t *testing.T) {
	names, err := NewNames(config.LangNepali)
	require.NoError(t, err)

	tests := []struct {
		name   string
		query  string
		header string
		want   string
	}{
		{"default", "", "", "ne"},
		{"query", "lang=en", "", "en"},
		{"query beats header", "lang=en", "ne", "en"},
		{"regional header", "", "en-GB,en;q=0.9", "en"},
		{"unsupported query", "lang=de", "", "ne"},
		{"garbage query", "lang=%%%", "en", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.URL.RawQuery = tt.query
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			assert.Equal(t, tt.want, names.Lang(req))
		})
	}
}

func TestNames_Localize(t *testing.T) {
	names, err := NewNames("")
	require.NoError(t, err)

	en := names.Localizer(config.LangEnglish)
	ne := names.Localizer(config.LangNepali)

	assert.Equal(t, "Magh", names.Month(en, 10))
	assert.Equal(t, "माघ", names.Month(ne, 10))
	assert.Equal(t, "Friday", names.Weekday(en, time.Friday))
	assert.Equal(t, "शुक्रबार", names.Weekday(ne, time.Friday))

	// Unknown months have no message and no English name.
	assert.Equal(t, "", names.Month(ne, 13))
	assert.Equal(t, "", names.Weekday(ne, time.Weekday(7)))

	weekdays := names.Weekdays(ne)
	require.Len(t, weekdays, 7)
	assert.Equal(t, "आइतबार", weekdays[0])
	assert.Equal(t, "शनिबार", weekdays[6])
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "२०८२-७-१", Digits(config.LangNepali, "2082-7-1"))
	assert.Equal(t, "2082-7-1", Digits(config.LangEnglish, "2082-7-1"))
}
