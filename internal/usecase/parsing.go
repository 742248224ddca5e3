package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const fieldSeparator = ";"

var errEmptyAmount = errors.New("empty amount")

// plainDecimal matches signed digits with an optional fraction. Exponents are rejected.
var plainDecimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// splitLines returns the non-blank lines of a document. CRLF endings are accepted.
func splitLines(raw string) []string {
	raw = strings.TrimPrefix(raw, "\ufeff")
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitFields splits a line on the separator and cleans every field.
// Quoting is shallow: a separator inside a quoted field still splits it.
func splitFields(line string) []string {
	fields := strings.Split(line, fieldSeparator)
	for i, f := range fields {
		fields[i] = cleanField(f)
	}
	return fields
}

// cleanField strips surrounding whitespace and one layer of double quotes.
func cleanField(f string) string {
	f = strings.TrimSpace(f)
	f = strings.TrimPrefix(f, `"`)
	f = strings.TrimSuffix(f, `"`)
	return strings.TrimSpace(f)
}

// headerKey normalizes a header label for case-insensitive comparison.
// Labels are composed first so that "e" + combining accent matches "é".
func headerKey(label string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(label)))
}

var thousandsSeparators = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", "'", "")

// parseAmount parses a locale decimal where the comma is the decimal separator.
func parseAmount(raw string) (decimal.Decimal, error) {
	s := thousandsSeparators.Replace(strings.TrimSpace(raw))
	if s == "" {
		return decimal.Zero, errEmptyAmount
	}
	s = strings.Replace(s, ",", ".", 1)
	if !plainDecimal.MatchString(s) {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	return decimal.NewFromString(s)
}

var fallbackDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"02-01-2006",
	"02.01.2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// parseTransactionDate parses the raw date of a transaction.
// DD/MM/YYYY is tried first, then a 10 character ISO date, then a list of common layouts.
func parseTransactionDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	if t, ok := parseSlashDate(s); ok {
		return t, true
	}
	if len(s) == 10 && strings.Count(s, "-") == 2 {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			return t, true
		}
	}
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseSlashDate handles DD/MM/YYYY. Out of range days and months roll over
// the way time.Date normalizes them (31/02/2024 becomes 2 March 2024).
// A time of day after the year ("15/12/2024 10:30") is ignored.
func parseSlashDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	parts[2], _, _ = strings.Cut(parts[2], " ")
	nums := make([]int, 3)
	for i, p := range parts {
		if p == "" {
			return time.Time{}, false
		}
		// day and month are at most two digits, which leaves YYYY/MM/DD to the fallback layouts
		if i < 2 && len(p) > 2 {
			return time.Time{}, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// monthKey returns the canonical YYYY-MM key of a date.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
