package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// Locale selects the language of month labels.
type Locale string

const (
	LocaleFrench  Locale = "fr"
	LocaleEnglish Locale = "en"

	DefaultLocale = LocaleFrench
)

const monthLabelLayout = "Jan 2006"

var mondayLocales = map[Locale]monday.Locale{
	LocaleFrench:  monday.LocaleFrFR,
	LocaleEnglish: monday.LocaleEnUS,
}

// ParseLocale accepts a language tag such as "fr", "fr-FR" or "en_GB".
func ParseLocale(tag string) (Locale, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return DefaultLocale, nil
	}
	base, _, _ := strings.Cut(strings.ReplaceAll(tag, "_", "-"), "-")
	l := Locale(base)
	if _, ok := mondayLocales[l]; !ok {
		return "", fmt.Errorf("unsupported locale %q", tag)
	}
	return l, nil
}

// MonthLabel returns the short display label of a month, e.g. "janv. 2024".
// Unknown locales fall back to French.
func (l Locale) MonthLabel(year int, month time.Month) string {
	loc, ok := mondayLocales[l]
	if !ok {
		loc = mondayLocales[DefaultLocale]
	}
	return monday.Format(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), monthLabelLayout, loc)
}
