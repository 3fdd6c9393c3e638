package term

import "termcal/internal/extract"

// Label tables for the academic-year page. These are configuration, not
// extraction logic: registrar pages vary spellings between years, so new
// variants get added here without touching the extractor.

// fullPartHeader is the subsection this tool reads. Half-term and
// intersession cohorts are out of scope.
const fullPartHeader = "Full Part of Term"

// breakLabels are multi-day closures stated as ranges. They count as
// blackouts for week numbering.
var breakLabels = []extract.Label{
	"Spring Break",
	"Fall Break",
	"Thanksgiving Holidays",
}

// holidayLabels are single-day closures stated as plain dates.
var holidayLabels = []extract.Label{
	"Labor Day",
	"M. L. King, Jr. Holiday",
}

// Key-date labels.
const (
	labelFirstDay = extract.Label("First Day of Classes")
	labelLastDay  = extract.Label("Last Day of Classes")
	labelStudyDay = extract.Label("Study Day")
	labelExams    = extract.Label("Exams")
)
