package extract

import (
	"testing"
	"time"
)

const termBlock = `Full Part of Term
First Day of Classes: August 25, 2025 / Monday
Labor Day: September 1, 2025 / Monday
Fall Break: October 11-14, 2025 / Saturday-Tuesday
Thanksgiving Holidays: November 26-30, 2025 / Wednesday-Sunday
M. L. King, Jr. Holiday: January 19, 2026 / Monday
Last Day of Classes: December 3, 2025 / Wednesday
Exams: December 5-11, 2025 / Friday-Thursday`

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFindDate(t *testing.T) {
	tests := []struct {
		name      string
		label     Label
		want      time.Time
		wantFound bool
	}{
		{"first day", "First Day of Classes", date(2025, time.August, 25), true},
		{"last day", "Last Day of Classes", date(2025, time.December, 3), true},
		{"label with punctuation", "M. L. King, Jr. Holiday", date(2026, time.January, 19), true},
		{"absent label", "Study Day", time.Time{}, false},
		{"range-valued label has no single date", "Fall Break", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindDate(termBlock, tt.label)
			if found != tt.wantFound {
				t.Fatalf("FindDate(%q) found = %v, want %v", tt.label, found, tt.wantFound)
			}
			if found && !got.Equal(tt.want) {
				t.Errorf("FindDate(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestFindRange(t *testing.T) {
	r, found := FindRange(termBlock, "Exams")
	if !found {
		t.Fatal("Exams range should be found")
	}
	if !r.Start.Equal(date(2025, time.December, 5)) || !r.End.Equal(date(2025, time.December, 11)) {
		t.Errorf("Exams = %v, want 2025-12-05..2025-12-11", r)
	}

	if _, found := FindRange(termBlock, "Spring Break"); found {
		t.Error("absent label should not be found")
	}
	if _, found := FindRange(termBlock, "Labor Day"); found {
		t.Error("single-date label should not match the range grammar")
	}
}

func TestFindRanges(t *testing.T) {
	labels := []Label{"Spring Break", "Fall Break", "Thanksgiving Holidays"}
	found := FindRanges(termBlock, labels)

	if len(found) != 2 {
		t.Fatalf("expected 2 labeled ranges, got %d", len(found))
	}
	if found[0].Label != "Fall Break" || found[1].Label != "Thanksgiving Holidays" {
		t.Errorf("ranges should come back in label-list order, got %v", found)
	}
	if !found[1].Range.End.Equal(date(2025, time.November, 30)) {
		t.Errorf("Thanksgiving end = %v, want 2025-11-30", found[1].Range.End)
	}
}

func TestFindDates(t *testing.T) {
	labels := []Label{"Labor Day", "M. L. King, Jr. Holiday", "Memorial Day"}
	found := FindDates(termBlock, labels)

	if len(found) != 2 {
		t.Fatalf("expected 2 labeled dates, got %d", len(found))
	}
	for _, lr := range found {
		if !lr.Range.Start.Equal(lr.Range.End) {
			t.Errorf("holiday %q should be a single-day range", lr.Label)
		}
	}
}
