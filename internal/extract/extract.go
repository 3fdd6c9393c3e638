// Package extract pulls labeled date fields out of an isolated term
// block. Lines look like:
//
//	First Day of Classes: August 25, 2025 / Monday
//	Exams: December 5-11, 2025 / Friday-Thursday
//
// Labels are matched literally (they may contain periods and commas) and
// are supplied by the caller, so new label spellings are configuration,
// not code changes. A missing label is meaningful — most terms have no
// Fall Break — so lookups return a found flag rather than an error.
package extract

import (
	"regexp"
	"time"

	"termcal/internal/daterange"
	"termcal/internal/dateparse"
)

// Label names a break, holiday, or key date as it is spelled on the
// source page.
type Label string

// LabeledRange is a named date window found on a source page.
type LabeledRange struct {
	Label Label
	Range daterange.Range
}

const (
	datePat  = `([A-Za-z]+\s+\d{1,2},\s+\d{4})`
	rangePat = `([A-Za-z]+\s+\d{1,2}\s*[-\x{2013}]\s*\d{1,2},\s*\d{4})`
)

// FindDate locates "{label}: Month D, YYYY" in the text and returns the
// parsed date. The second return is false when the label is absent.
func FindDate(text string, label Label) (time.Time, bool) {
	re := regexp.MustCompile(regexp.QuoteMeta(string(label)) + `\s*:\s*` + datePat)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	d, err := dateparse.ParseDate(m[1])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// FindRange locates "{label}: Month D-D, YYYY" in the text and returns
// the parsed single-month range.
func FindRange(text string, label Label) (daterange.Range, bool) {
	re := regexp.MustCompile(regexp.QuoteMeta(string(label)) + `\s*:\s*` + rangePat)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return daterange.Range{}, false
	}
	r, err := dateparse.ParseRange(m[1])
	if err != nil {
		return daterange.Range{}, false
	}
	return r, true
}

// FindRanges returns every label from the list that appears with a range
// value, in list order.
func FindRanges(text string, labels []Label) []LabeledRange {
	var found []LabeledRange
	for _, lab := range labels {
		if r, ok := FindRange(text, lab); ok {
			found = append(found, LabeledRange{Label: lab, Range: r})
		}
	}
	return found
}

// FindDates returns every label from the list that appears with a
// single-date value, in list order.
func FindDates(text string, labels []Label) []LabeledRange {
	var found []LabeledRange
	for _, lab := range labels {
		if d, ok := FindDate(text, lab); ok {
			found = append(found, LabeledRange{Label: lab, Range: daterange.Single(d)})
		}
	}
	return found
}
