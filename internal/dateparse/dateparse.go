// Package dateparse converts the free-text date expressions found on
// registrar calendar pages into typed dates and ranges.
//
// The pages are human-authored and inconsistently formatted: "August 25,
// 2025 / Monday", "December 5-11, 2025 / Friday-Thursday", "March 9 – 15,
// 2026" (en dash, stray spaces). Parsing runs an ordered list of
// strategies, each a pattern plus an extraction function; the first
// strategy whose pattern matches wins. Keeping the strategies in a table
// makes the precedence auditable instead of burying it in fallthrough
// order.
package dateparse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrUnparsable is returned when no month-name/day/year pattern can be
// recovered from the input text.
var ErrUnparsable = errors.New("no recognizable date in text")

// Sub-patterns shared by every range grammar. Month names are matched
// loosely; validation happens when the assembled date is parsed.
const (
	monthPat = `([A-Za-z]+)`
	dayPat   = `(\d{1,2})`
	yearPat  = `(\d{4})`
	dashPat  = `\s*-\s*`
)

var (
	// "October 11-14, 2025"
	singleMonthRangeRE = regexp.MustCompile(`^` + monthPat + `\s+` + dayPat + dashPat + dayPat + `,\s*` + yearPat + `$`)
	// "December 5-11, 2025 / Friday-Thursday" — trailing annotation discarded
	singleMonthSuffixRE = regexp.MustCompile(`^` + monthPat + `\s+` + dayPat + dashPat + dayPat + `,\s*` + yearPat + `.*$`)
	// "January 20 - February 2, 2026"
	crossMonthRangeRE = regexp.MustCompile(`^` + monthPat + `\s+` + dayPat + dashPat + monthPat + `\s+` + dayPat + `,\s*` + yearPat + `$`)
	// "January 20, 2026"
	bareDateRE = regexp.MustCompile(`^` + monthPat + `\s+` + dayPat + `,\s*` + yearPat + `$`)
	// any "Month D, YYYY" occurrence inside a longer line
	anyDateRE = regexp.MustCompile(`[A-Za-z]+\s+\d{1,2},\s*\d{4}`)
)

// dateLayouts is the cascade tried by ParseDate, most common first.
var dateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// Normalize collapses run-length whitespace to single spaces, replaces
// en dashes with hyphens, and trims the ends.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "–", "-")
	return strings.Join(strings.Fields(text), " ")
}

// ParseDate parses a single "Month D, YYYY" style date. If the whole
// text is not itself a date, the first date-like substring is used, so
// trailing annotations ("/ Monday") do not break parsing.
func ParseDate(text string) (time.Time, error) {
	norm := Normalize(text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, norm); err == nil {
			return t.UTC(), nil
		}
	}
	if m := anyDateRE.FindString(norm); m != "" && m != norm {
		return ParseDate(m)
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, text)
}

// monthDate assembles and parses a date from its captured pieces.
func monthDate(month, day, year string) (time.Time, error) {
	return ParseDate(month + " " + day + ", " + year)
}
