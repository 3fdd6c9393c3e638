// Package term composes extraction, deadline scanning, and week
// segmentation into one term model and the ordered list of facts the
// calendar sink consumes.
package term

import (
	"fmt"
	"time"

	"termcal/internal/daterange"
	"termcal/internal/deadlines"
	"termcal/internal/extract"
	"termcal/internal/weeks"
)

// KeyDates holds the term's anchor dates. FirstDay and LastDay are
// mandatory; StudyDay and Exams are nil when absent from the page.
type KeyDates struct {
	FirstDay time.Time
	LastDay  time.Time
	StudyDay *time.Time
	Exams    *daterange.Range
}

// Deadline is one registration deadline extracted from the Dates &
// Deadlines page.
type Deadline struct {
	Kind deadlines.Kind
	Date time.Time
}

// Model is the full term model built per run. It has no persisted
// identity; every invocation rebuilds it from fresh page text.
type Model struct {
	Year     int
	Semester string

	AcademicURL  string
	DeadlinesURL string

	Keys      KeyDates
	Breaks    []extract.LabeledRange
	Holidays  []extract.LabeledRange
	Deadlines []Deadline
	Weeks     []weeks.Event
}

// Fact is one calendar-worthy row: an all-day event with inclusive
// bounds, ready for the sink (which converts to its exclusive-end form).
type Fact struct {
	Title       string
	Start       time.Time
	End         time.Time
	Description string
}

// Name returns the human term name, e.g. "Spring 2026".
func (m *Model) Name() string {
	return termName(m.Year, m.Semester)
}

func termName(year int, semester string) string {
	name := "Fall"
	if semester == "spring" {
		name = "Spring"
	}
	return fmt.Sprintf("%s %d", name, year)
}

// Facts emits the ordered fact list: key dates, breaks, holidays,
// deadlines, then week labels. The order is fixed so repeated runs over
// identical source text produce identical output.
func (m *Model) Facts() []Fact {
	var facts []Fact

	facts = append(facts,
		Fact{Title: "First Day of Classes", Start: m.Keys.FirstDay, End: m.Keys.FirstDay},
		Fact{Title: "Last Day of Classes", Start: m.Keys.LastDay, End: m.Keys.LastDay},
	)
	if m.Keys.StudyDay != nil {
		facts = append(facts, Fact{Title: "Study Day", Start: *m.Keys.StudyDay, End: *m.Keys.StudyDay})
	}
	if m.Keys.Exams != nil {
		facts = append(facts, Fact{Title: "Exams", Start: m.Keys.Exams.Start, End: m.Keys.Exams.End})
	}

	for _, b := range m.Breaks {
		facts = append(facts, Fact{Title: string(b.Label), Start: b.Range.Start, End: b.Range.End})
	}
	for _, h := range m.Holidays {
		facts = append(facts, Fact{Title: string(h.Label), Start: h.Range.Start, End: h.Range.End})
	}

	for _, d := range m.Deadlines {
		switch d.Kind {
		case deadlines.DropNoGrade:
			facts = append(facts, Fact{
				Title:       "Last day to drop with no grade assigned",
				Start:       d.Date,
				End:         d.Date,
				Description: "Derived from FULL Drop Period end date.",
			})
		case deadlines.WithdrawW:
			facts = append(facts, Fact{
				Title:       `Last day to drop with a "W" grade assigned`,
				Start:       d.Date,
				End:         d.Date,
				Description: "Derived from FULL Withdrawal Period end date.",
			})
		}
	}

	for _, w := range m.Weeks {
		facts = append(facts, Fact{
			Title:       w.Label,
			Start:       w.Start,
			End:         w.End,
			Description: "Instructional week (Mon-Fri), excluding breaks and holidays.",
		})
	}

	return facts
}
