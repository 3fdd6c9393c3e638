package fetch

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestFlatten(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/academic_ay2526.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	lines, err := Flatten(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("expected lines, got none")
	}

	for _, l := range lines {
		if l == "" {
			t.Error("blank lines should be dropped")
		}
		if strings.Contains(l, "  ") {
			t.Errorf("whitespace should be collapsed, got %q", l)
		}
	}

	// Each list item must land on its own line with the en dash intact
	// for downstream normalization.
	var foundFirstDay, foundFallBreak bool
	for _, l := range lines {
		if l == "First Day of Classes: August 25, 2025 / Monday" {
			foundFirstDay = true
		}
		if strings.HasPrefix(l, "Fall Break:") && strings.Contains(l, "2025") {
			foundFallBreak = true
		}
	}
	if !foundFirstDay {
		t.Error("first-day bullet should be a single flattened line")
	}
	if !foundFallBreak {
		t.Error("fall-break bullet should be a single flattened line")
	}
}

func TestFetchLines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != UserAgent {
			t.Errorf("expected user agent %q, got %q", UserAgent, got)
		}
		w.Write([]byte("<ul><li>First Day of Classes: August 25, 2025</li><li>Study Day: December 4, 2025</li></ul>"))
	}))
	defer srv.Close()

	c := New()
	lines, err := c.FetchLines(srv.URL)
	if err != nil {
		t.Fatalf("FetchLines failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
}

func TestFetchPageErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := New().FetchPage(srv.URL); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestFetchFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/spring26-dates.php" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("<p>Drop Period</p>"))
	}))
	defer srv.Close()

	c := New()
	lines, used, err := c.FetchFirst([]string{srv.URL + "/spring26-dates.php", srv.URL + "/26s-dates.php"})
	if err != nil {
		t.Fatalf("FetchFirst failed: %v", err)
	}
	if used != srv.URL+"/26s-dates.php" {
		t.Errorf("expected second candidate to win, got %s", used)
	}
	if len(lines) != 1 || lines[0] != "Drop Period" {
		t.Errorf("unexpected lines: %v", lines)
	}

	if _, _, err := c.FetchFirst([]string{srv.URL + "/spring26-dates.php"}); err == nil {
		t.Error("expected error when every candidate fails")
	}
}

func TestAcademicYearURL(t *testing.T) {
	c := New()
	tests := []struct {
		year     int
		semester string
		want     string
	}{
		{2025, "fall", AcademicBase + "/ay2526.php"},
		{2026, "spring", AcademicBase + "/ay2526.php"},
		{2026, "fall", AcademicBase + "/ay2627.php"},
		{2030, "spring", AcademicBase + "/ay2930.php"},
	}
	for _, tt := range tests {
		if got := c.AcademicYearURL(tt.year, tt.semester); got != tt.want {
			t.Errorf("AcademicYearURL(%d, %s) = %s, want %s", tt.year, tt.semester, got, tt.want)
		}
	}
}

func TestDeadlineURLs(t *testing.T) {
	c := New()
	urls := c.DeadlineURLs(2026, "spring")
	want := []string{
		DatesBase + "/spring26-dates.php",
		DatesBase + "/26s-dates.php",
	}
	if len(urls) != 2 || urls[0] != want[0] || urls[1] != want[1] {
		t.Errorf("DeadlineURLs = %v, want %v", urls, want)
	}

	fall := c.DeadlineURLs(2025, "fall")
	if fall[0] != DatesBase+"/fall25-dates.php" || fall[1] != DatesBase+"/25f-dates.php" {
		t.Errorf("fall DeadlineURLs = %v", fall)
	}
}
