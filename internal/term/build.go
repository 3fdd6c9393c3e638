package term

import (
	"errors"
	"fmt"
	"strings"

	"termcal/internal/daterange"
	"termcal/internal/deadlines"
	"termcal/internal/extract"
	"termcal/internal/logger"
	"termcal/internal/section"
	"termcal/internal/weeks"
)

var (
	// ErrKeyDatesMissing means the academic page yielded no first or
	// last day of classes. Nothing downstream is trustworthy without
	// them, so the run aborts.
	ErrKeyDatesMissing = errors.New("could not determine first/last day of classes")
	// ErrNoDeadlinesPage means no Dates & Deadlines URL shape loaded.
	ErrNoDeadlinesPage = errors.New("no reachable dates & deadlines page")
)

// Fetcher retrieves registrar pages as flattened text lines and derives
// the term-specific URLs. *fetch.Client is the production implementation.
type Fetcher interface {
	AcademicYearURL(year int, semester string) string
	DeadlineURLs(year int, semester string) []string
	FetchLines(url string) ([]string, error)
	FetchFirst(urls []string) ([]string, string, error)
}

// Build fetches the term's source pages and assembles the full model.
// Soft extraction failures (missing study day, exams, deadlines, breaks)
// are logged and omitted; the two hard failures defined by the error
// variables above abort the build.
func Build(f Fetcher, year int, semester string) (*Model, error) {
	name := termName(year, semester)

	ayURL := f.AcademicYearURL(year, semester)
	lines, err := f.FetchLines(ayURL)
	if err != nil {
		return nil, fmt.Errorf("fetching academic-year page: %w", err)
	}

	block, err := section.TermBlock(lines, year, semester)
	if err != nil {
		return nil, err
	}
	text := strings.Join(section.Subsection(block, fullPartHeader), "\n")

	m := &Model{Year: year, Semester: semester, AcademicURL: ayURL}

	if err := buildKeyDates(m, text, name); err != nil {
		return nil, err
	}
	buildClosures(m, text, name)

	if err := buildDeadlines(m, f, name); err != nil {
		return nil, err
	}

	m.Weeks = weeks.Segment(m.Keys.FirstDay, m.Keys.LastDay, blackouts(m))
	return m, nil
}

func buildKeyDates(m *Model, text, name string) error {
	first, okFirst := extract.FindDate(text, labelFirstDay)
	last, okLast := extract.FindDate(text, labelLastDay)
	if !okFirst || !okLast {
		return fmt.Errorf("%w for %s", ErrKeyDatesMissing, name)
	}
	m.Keys.FirstDay, m.Keys.LastDay = first, last

	if study, ok := extract.FindDate(text, labelStudyDay); ok {
		m.Keys.StudyDay = &study
	} else {
		logger.Warn("Study Day not found on academic calendar", logger.Fields{"term": name})
	}
	if exams, ok := extract.FindRange(text, labelExams); ok {
		m.Keys.Exams = &exams
	} else {
		logger.Warn("Exams range not found on academic calendar", logger.Fields{"term": name})
	}
	return nil
}

// buildClosures collects breaks and holidays, keeping only those that
// touch the instructional period.
func buildClosures(m *Model, text, name string) {
	termRange := daterange.Range{Start: m.Keys.FirstDay, End: m.Keys.LastDay}

	for _, b := range extract.FindRanges(text, breakLabels) {
		if b.Range.Intersects(termRange) {
			m.Breaks = append(m.Breaks, b)
		}
	}
	for _, h := range extract.FindDates(text, holidayLabels) {
		if termRange.Contains(h.Range.Start) {
			m.Holidays = append(m.Holidays, h)
		}
	}
	if len(m.Breaks) == 0 && len(m.Holidays) == 0 {
		logger.Warn("no breaks or holidays found within term", logger.Fields{"term": name})
	}
}

func buildDeadlines(m *Model, f Fetcher, name string) error {
	urls := f.DeadlineURLs(m.Year, m.Semester)
	lines, used, err := f.FetchFirst(urls)
	if err != nil {
		return fmt.Errorf("%w for %s (tried %s): %v", ErrNoDeadlinesPage, name, strings.Join(urls, ", "), err)
	}
	m.DeadlinesURL = used

	res := deadlines.Scan(lines)
	if res.DropEnd != nil {
		m.Deadlines = append(m.Deadlines, Deadline{Kind: deadlines.DropNoGrade, Date: *res.DropEnd})
	} else {
		logger.Warn("drop deadline not found on dates & deadlines page", logger.Fields{"term": name, "url": used})
	}
	if res.WithdrawEnd != nil {
		m.Deadlines = append(m.Deadlines, Deadline{Kind: deadlines.WithdrawW, Date: *res.WithdrawEnd})
	} else {
		logger.Warn("withdrawal deadline not found on dates & deadlines page", logger.Fields{"term": name, "url": used})
	}
	return nil
}

// blackouts builds the non-instructional ranges for week numbering:
// break ranges clamped to the term, plus single-day holidays (already
// validated to lie within term bounds).
func blackouts(m *Model) []daterange.Range {
	var out []daterange.Range
	for _, b := range m.Breaks {
		out = append(out, b.Range.Clamp(m.Keys.FirstDay, m.Keys.LastDay))
	}
	for _, h := range m.Holidays {
		out = append(out, h.Range)
	}
	return out
}
