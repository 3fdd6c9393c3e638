// Package daterange provides an inclusive calendar-date interval used
// throughout the term model: breaks, holidays, exam windows, and the
// instructional period itself are all Ranges.
package daterange

import (
	"fmt"
	"time"
)

// Range is an inclusive date interval. Both endpoints are dates at
// midnight UTC; Start is never after End.
type Range struct {
	Start time.Time
	End   time.Time
}

// New creates a Range and validates its bounds.
func New(start, end time.Time) (Range, error) {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return Range{}, fmt.Errorf("range end %s before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return Range{Start: start, End: end}, nil
}

// Single returns the zero-width range covering exactly one day.
func Single(d time.Time) Range {
	d = Day(d)
	return Range{Start: d, End: d}
}

// Day truncates a time to its date at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Contains reports whether d falls within the range, inclusive.
func (r Range) Contains(d time.Time) bool {
	d = Day(d)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Intersects reports whether two ranges share at least one day.
func (r Range) Intersects(other Range) bool {
	return !r.End.Before(other.Start) && !other.End.Before(r.Start)
}

// Clamp restricts the range to [lo, hi]. The caller must ensure the
// ranges overlap; a disjoint clamp would produce an inverted interval.
func (r Range) Clamp(lo, hi time.Time) Range {
	lo, hi = Day(lo), Day(hi)
	out := r
	if out.Start.Before(lo) {
		out.Start = lo
	}
	if out.End.After(hi) {
		out.End = hi
	}
	return out
}

// Days returns every date in the range in chronological order.
func (r Range) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (r Range) String() string {
	if r.Start.Equal(r.End) {
		return r.Start.Format("2006-01-02")
	}
	return r.Start.Format("2006-01-02") + ".." + r.End.Format("2006-01-02")
}
