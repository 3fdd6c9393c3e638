// Package section isolates the portion of a flattened academic-year page
// that belongs to one term, and the part-of-term subsection within it.
//
// The registrar pages carry every term of an academic year in one long
// document with headings like "Spring 2026". Fall content sits at the top
// with no heading of its own, so the fall block is bounded by the first
// spring heading instead.
package section

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrSectionNotFound is returned when the requested term heading does
// not appear on the page. This is a hard failure: extraction from the
// wrong block would silently produce another term's dates.
var ErrSectionNotFound = errors.New("term section not found")

// Semester names accepted by TermBlock.
const (
	Fall   = "fall"
	Spring = "spring"
)

var (
	termHeadingRE   = regexp.MustCompile(`\b(Summer|Fall|Spring)\s+\d{4}\b`)
	springHeadingRE = regexp.MustCompile(`\bSpring\s+\d{4}\b`)
)

// partHeaders are the part-of-term subsection headings observed on the
// registrar pages. A line exactly equal to one of these ends the current
// subsection.
var partHeaders = map[string]bool{
	"All Parts of Term":            true,
	"Winter Intersession":          true,
	"Full Part of Term":            true,
	"1st Half Part of Term":        true,
	"2nd Half Part of Term":        true,
	"Pre Summer Part of Term":      true,
	"Extended Summer Part of Term": true,
}

// TermBlock returns the lines of the page belonging to the requested
// term. Input lines must already be flattened: one logical line per list
// item, whitespace normalized, blanks removed.
func TermBlock(lines []string, year int, semester string) ([]string, error) {
	switch semester {
	case Spring:
		return springBlock(lines, year)
	case Fall:
		return fallBlock(lines, year), nil
	default:
		return nil, fmt.Errorf("unknown semester %q (want %q or %q)", semester, Fall, Spring)
	}
}

func springBlock(lines []string, year int) ([]string, error) {
	key := fmt.Sprintf("Spring %d", year)

	start := -1
	for i, l := range lines {
		if strings.Contains(l, key) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: no %q heading on academic-year page", ErrSectionNotFound, key)
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if termHeadingRE.MatchString(lines[i]) && !strings.Contains(lines[i], key) {
			end = i
			break
		}
	}
	return lines[start:end], nil
}

// fallBlock runs from the top of the page to the first spring heading.
// Three cascading boundaries: the next year's spring heading, then any
// spring heading, then end of page. The cascade order matters and is
// unverified against pages with no spring term at all.
func fallBlock(lines []string, year int) []string {
	key := fmt.Sprintf("Spring %d", year+1)
	for i, l := range lines {
		if strings.Contains(l, key) {
			return lines[:i]
		}
	}
	for i, l := range lines {
		if springHeadingRE.MatchString(l) {
			return lines[:i]
		}
	}
	return lines
}

// Subsection narrows a term block to the lines under the given
// part-of-term header, stopping at the next recognized header or end of
// block. If the header is absent the block is returned unchanged: some
// terms have no subsection structure and the whole block is the answer.
func Subsection(lines []string, header string) []string {
	start := -1
	for i, l := range lines {
		if l == header {
			start = i
			break
		}
	}
	if start < 0 {
		return lines
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if partHeaders[lines[i]] {
			end = i
			break
		}
	}
	return lines[start:end]
}
