// Package deadlines scans a registrar "Dates & Deadlines" page for the
// end of the full-session drop and withdrawal windows.
//
// The page lists one row per part-of-term cohort (FULL, 1ST, 2ND, WIN,
// TN eCampus) under "Drop Period" and "Withdrawal Period" headings. Only
// the FULL row in each section matters; the scanner is a small state
// machine over the flattened page lines so it can never be inside both
// sections at once.
package deadlines

import (
	"regexp"
	"time"

	"termcal/internal/dateparse"
)

// Kind identifies which deadline a date belongs to.
type Kind string

const (
	// DropNoGrade is the last day to drop with no grade assigned.
	DropNoGrade Kind = "drop-no-grade"
	// WithdrawW is the last day to drop with a "W" grade assigned.
	WithdrawW Kind = "withdraw-w"
)

// Result holds the extracted deadline dates. A nil date means the page
// held no recoverable date for that section; callers treat that as a
// soft failure.
type Result struct {
	DropEnd     *time.Time
	WithdrawEnd *time.Time
}

type scanState int

const (
	stateNeither scanState = iota
	stateInDrop
	stateInWithdraw
)

var (
	dropHeadingRE     = regexp.MustCompile(`(?i)Drop Period`)
	withdrawHeadingRE = regexp.MustCompile(`(?i)Withdrawal Period`)
	fullSessionRE     = regexp.MustCompile(`^FULL\b`)
	bulletPrefixRE    = regexp.MustCompile(`^[\s\-\*\x{2022}\x{00B7}]+`)
)

// StripBullet removes list markers from the front of a line while
// preserving its content.
func StripBullet(line string) string {
	return dateparse.Normalize(bulletPrefixRE.ReplaceAllString(line, ""))
}

// Scan walks the page lines, capturing the first FULL-session row inside
// each section and extracting its closing date. Scanning stops as soon
// as both sections have yielded a row.
func Scan(lines []string) Result {
	state := stateNeither
	var dropLine, withdrawLine string

	for _, raw := range lines {
		l := StripBullet(raw)
		if l == "" {
			continue
		}

		// Section headings move the machine and are not inspected further.
		if dropHeadingRE.MatchString(l) {
			state = stateInDrop
			continue
		}
		if withdrawHeadingRE.MatchString(l) {
			state = stateInWithdraw
			continue
		}

		switch state {
		case stateInDrop:
			if dropLine == "" && fullSessionRE.MatchString(l) {
				dropLine = l
			}
		case stateInWithdraw:
			if withdrawLine == "" && fullSessionRE.MatchString(l) {
				withdrawLine = l
			}
		}

		if dropLine != "" && withdrawLine != "" {
			break
		}
	}

	return Result{
		DropEnd:     endDate(dropLine),
		WithdrawEnd: endDate(withdrawLine),
	}
}

// trailing separators left after the FULL token is removed
var leadSepRE = regexp.MustCompile(`^[\s\-\x{2013}:]+`)

// endDate extracts the closing date from a captured FULL row. An empty
// or undateable row yields nil.
func endDate(line string) *time.Time {
	if line == "" {
		return nil
	}
	rest := fullSessionRE.ReplaceAllString(line, "")
	rest = dateparse.Normalize(leadSepRE.ReplaceAllString(rest, ""))

	d, err := dateparse.ParseEndDate(rest)
	if err != nil {
		return nil
	}
	return &d
}
