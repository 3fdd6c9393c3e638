// Package weeks derives labeled instructional weeks from a term's class
// dates and its blackout ranges (breaks and holidays).
package weeks

import (
	"fmt"
	"time"

	"termcal/internal/daterange"
)

// Event is one instructional week. Start and End are the first and last
// instructional weekday actually present in that calendar week, which
// may be narrower than Monday-Friday at term edges or around holidays.
type Event struct {
	Label   string
	Start   time.Time
	End     time.Time
	IsShort bool
}

// mondayOf returns the Monday of the calendar week containing d.
func mondayOf(d time.Time) time.Time {
	d = daterange.Day(d)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return d.AddDate(0, 0, -offset)
}

func isWeekday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func inAny(d time.Time, ranges []daterange.Range) bool {
	for _, r := range ranges {
		if r.Contains(d) {
			return true
		}
	}
	return false
}

// Segment partitions the instructional period into calendar weeks and
// emits one event per week holding at least one instructional weekday.
// A week entirely consumed by blackouts (the usual Spring Break case) is
// skipped and does not consume a week number: students experience the
// following week as the next numbered week, not a gap.
func Segment(firstDay, lastDay time.Time, blackouts []daterange.Range) []Event {
	firstDay, lastDay = daterange.Day(firstDay), daterange.Day(lastDay)

	var events []Event
	n := 1
	final := mondayOf(lastDay)

	for mon := mondayOf(firstDay); !mon.After(final); mon = mon.AddDate(0, 0, 7) {
		window := daterange.Range{Start: mon, End: mon.AddDate(0, 0, 4)}.Clamp(firstDay, lastDay)

		var days []time.Time
		for _, d := range window.Days() {
			if !isWeekday(d) || inAny(d, blackouts) {
				continue
			}
			days = append(days, d)
		}
		if len(days) == 0 {
			continue
		}

		short := len(days) < 5
		label := fmt.Sprintf("Week %d", n)
		if short {
			label += " (short)"
		}
		events = append(events, Event{
			Label:   label,
			Start:   days[0],
			End:     days[len(days)-1],
			IsShort: short,
		})
		n++
	}
	return events
}
