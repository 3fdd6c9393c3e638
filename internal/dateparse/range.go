package dateparse

import (
	"fmt"
	"regexp"
	"time"

	"termcal/internal/daterange"
)

// rangeStrategy is one entry in an ordered parsing cascade: a pattern
// plus a function that builds a range from its submatches.
type rangeStrategy struct {
	name    string
	re      *regexp.Regexp
	extract func(m []string) (daterange.Range, error)
}

// sameMonth builds a range from (month, d1, d2, year) captures.
func sameMonth(m []string) (daterange.Range, error) {
	start, err := monthDate(m[1], m[2], m[4])
	if err != nil {
		return daterange.Range{}, err
	}
	end, err := monthDate(m[1], m[3], m[4])
	if err != nil {
		return daterange.Range{}, err
	}
	return daterange.New(start, end)
}

// rangeStrategies handles the term-calendar grammar. Term pages only
// ever state single-month ranges; cross-month ranges appear on the
// deadlines page and are handled by ParseEndDate instead.
var rangeStrategies = []rangeStrategy{
	{name: "single-month", re: singleMonthRangeRE, extract: sameMonth},
	{name: "single-month with suffix", re: singleMonthSuffixRE, extract: sameMonth},
}

// ParseRange parses a date-range expression like "October 11-14, 2025",
// tolerating en dashes, stray spacing, and trailing weekday annotations.
// A plain single date yields a zero-width range.
func ParseRange(text string) (daterange.Range, error) {
	norm := Normalize(text)
	for _, s := range rangeStrategies {
		m := s.re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		r, err := s.extract(m)
		if err != nil {
			return daterange.Range{}, fmt.Errorf("parsing %s range %q: %w", s.name, text, err)
		}
		return r, nil
	}

	d, err := ParseDate(norm)
	if err != nil {
		return daterange.Range{}, err
	}
	return daterange.Single(d), nil
}

// endDateStrategies handles the deadlines-page grammar, where the only
// fact of interest is the final day of the stated window. Cross-month
// ranges ("January 20 - February 2, 2026") are common here.
var endDateStrategies = []rangeStrategy{
	{
		name: "bare date",
		re:   bareDateRE,
		extract: func(m []string) (daterange.Range, error) {
			d, err := monthDate(m[1], m[2], m[3])
			if err != nil {
				return daterange.Range{}, err
			}
			return daterange.Single(d), nil
		},
	},
	{
		name: "cross-month",
		re:   crossMonthRangeRE,
		extract: func(m []string) (daterange.Range, error) {
			d, err := monthDate(m[3], m[4], m[5])
			if err != nil {
				return daterange.Range{}, err
			}
			return daterange.Single(d), nil
		},
	},
	{
		name: "single-month",
		re:   singleMonthRangeRE,
		extract: func(m []string) (daterange.Range, error) {
			d, err := monthDate(m[1], m[3], m[4])
			if err != nil {
				return daterange.Range{}, err
			}
			return daterange.Single(d), nil
		},
	},
}

// ParseEndDate extracts the closing date of a deadline window. Grammar
// variants are tried in order; if none matches the whole text, the last
// "Month D, YYYY" occurrence anywhere in the line is taken as a best
// effort. Returns ErrUnparsable when the line holds no date at all.
func ParseEndDate(text string) (time.Time, error) {
	norm := Normalize(text)
	for _, s := range endDateStrategies {
		m := s.re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		r, err := s.extract(m)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing %s deadline %q: %w", s.name, text, err)
		}
		return r.End, nil
	}

	// Fallback: scan for every explicit date and keep the last one.
	if all := anyDateRE.FindAllString(norm, -1); len(all) > 0 {
		return ParseDate(all[len(all)-1])
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, text)
}
