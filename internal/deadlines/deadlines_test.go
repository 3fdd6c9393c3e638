package deadlines

import (
	"strings"
	"testing"
	"time"
)

const deadlinesPage = `Spring 2026 Dates and Deadlines
Registration opens November 3, 2025
Drop Period (no grade assigned)
* WIN - January 5 - January 16, 2026
* FULL  -  January 20 - February 2, 2026
* 1ST - January 20-26, 2026
* 2ND - March 16-20, 2026
Withdrawal Period (grade of "W" assigned)
* WIN - January 17, 2026
* FULL - February 3 - April 11, 2026
* 1ST - January 27 - February 23, 2026
Other campus dates follow`

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestScan(t *testing.T) {
	res := Scan(strings.Split(deadlinesPage, "\n"))

	if res.DropEnd == nil {
		t.Fatal("drop deadline should be found")
	}
	if !res.DropEnd.Equal(date(2026, time.February, 2)) {
		t.Errorf("drop end = %v, want 2026-02-02", res.DropEnd)
	}

	if res.WithdrawEnd == nil {
		t.Fatal("withdrawal deadline should be found")
	}
	if !res.WithdrawEnd.Equal(date(2026, time.April, 11)) {
		t.Errorf("withdraw end = %v, want 2026-04-11", res.WithdrawEnd)
	}
}

func TestScanSingleMonthRange(t *testing.T) {
	lines := []string{
		"Drop Period",
		"FULL - March 16-29, 2026",
	}
	res := Scan(lines)
	if res.DropEnd == nil || !res.DropEnd.Equal(date(2026, time.March, 29)) {
		t.Errorf("drop end = %v, want 2026-03-29", res.DropEnd)
	}
	if res.WithdrawEnd != nil {
		t.Errorf("no withdrawal section, got %v", res.WithdrawEnd)
	}
}

func TestScanFirstFullRowWins(t *testing.T) {
	lines := []string{
		"Drop Period",
		"FULL - January 20, 2026",
		"FULL - February 28, 2026",
	}
	res := Scan(lines)
	if res.DropEnd == nil || !res.DropEnd.Equal(date(2026, time.January, 20)) {
		t.Errorf("first FULL row should win, got %v", res.DropEnd)
	}
}

func TestScanSkipsOtherCohorts(t *testing.T) {
	lines := []string{
		"Withdrawal Period",
		"1ST - January 27, 2026",
		"WIN - January 17, 2026",
		"2ND - April 20, 2026",
	}
	res := Scan(lines)
	if res.WithdrawEnd != nil {
		t.Errorf("no FULL row present, expected nil, got %v", res.WithdrawEnd)
	}
}

func TestScanFullRowOutsideSectionIgnored(t *testing.T) {
	lines := []string{
		"FULL - January 20 - February 2, 2026",
		"Drop Period",
		"FULL - March 1, 2026",
	}
	res := Scan(lines)
	if res.DropEnd == nil || !res.DropEnd.Equal(date(2026, time.March, 1)) {
		t.Errorf("FULL rows before any section heading must not count, got %v", res.DropEnd)
	}
}

func TestScanUndateableRow(t *testing.T) {
	lines := []string{
		"Drop Period",
		"FULL - see department for dates",
	}
	res := Scan(lines)
	if res.DropEnd != nil {
		t.Errorf("undateable row should yield nil, got %v", res.DropEnd)
	}
}

func TestStripBullet(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"* FULL - March 16-29, 2026", "FULL - March 16-29, 2026"},
		{"- item", "item"},
		{"• bulleted", "bulleted"},
		{"  indented", "indented"},
		{"no bullet", "no bullet"},
	}
	for _, tt := range tests {
		if got := StripBullet(tt.in); got != tt.want {
			t.Errorf("StripBullet(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
