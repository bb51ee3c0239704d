package api

import (
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/zapponejosh/patro-api/internal/calendar"
	"github.com/zapponejosh/patro-api/internal/config"
)

//go:embed locales/*.json
var localeFS embed.FS

// supportedLangs is ordered like config.LangEnglish, config.LangNepali.
var supportedLangs = []language.Tag{language.English, language.Nepali}

// Names localizes month and weekday names.
type Names struct {
	bundle   *i18n.Bundle
	matcher  language.Matcher
	fallback string
}

// NewNames loads every embedded locale file. fallback is used when a
// request names no supported language.
func NewNames(fallback string) (*Names, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", name, err)
		}
	}

	if fallback == "" {
		fallback = config.LangEnglish
	}
	return &Names{
		bundle:   bundle,
		matcher:  language.NewMatcher(supportedLangs),
		fallback: fallback,
	}, nil
}

// Lang picks the response language: the lang query parameter first, then
// Accept-Language, then the configured default.
func (n *Names) Lang(r *http.Request) string {
	if q := r.URL.Query().Get("lang"); q != "" {
		if tag, err := language.Parse(q); err == nil {
			if lang, ok := n.match(tag); ok {
				return lang
			}
		}
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		if tags, _, err := language.ParseAcceptLanguage(header); err == nil && len(tags) > 0 {
			if lang, ok := n.match(tags...); ok {
				return lang
			}
		}
	}
	return n.fallback
}

func (n *Names) match(tags ...language.Tag) (string, bool) {
	_, idx, conf := n.matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	base, _ := supportedLangs[idx].Base()
	return base.String(), true
}

// Localizer returns a localizer for lang with English as fallback.
func (n *Names) Localizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(n.bundle, lang, config.LangEnglish)
}

// Month returns the localized BS month name, or the English one if the
// message is missing.
func (n *Names) Month(loc *i18n.Localizer, month int) string {
	return localize(loc, fmt.Sprintf("Month%d", month), calendar.MonthName(month))
}

// Weekday returns the localized weekday name.
func (n *Names) Weekday(loc *i18n.Localizer, wd time.Weekday) string {
	return localize(loc, fmt.Sprintf("Weekday%d", int(wd)), calendar.DayName(wd))
}

// Weekdays returns the seven localized weekday names, Sunday first.
func (n *Names) Weekdays(loc *i18n.Localizer) []string {
	names := make([]string, 7)
	for i := range names {
		names[i] = n.Weekday(loc, time.Weekday(i))
	}
	return names
}

func localize(loc *i18n.Localizer, id, fallback string) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}

var devanagariDigits = strings.NewReplacer(
	"0", "०", "1", "१", "2", "२", "3", "३", "4", "४",
	"5", "५", "6", "६", "7", "७", "8", "८", "9", "९",
)

// Digits renders ASCII digits in s with the numerals of lang.
func Digits(lang, s string) string {
	if lang == config.LangNepali {
		return devanagariDigits.Replace(s)
	}
	return s
}
