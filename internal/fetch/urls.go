package fetch

import "fmt"

// AcademicYearURL returns the academic-year calendar page for a term.
// The page is named for the academic year's fall: ay{yy}{yy+1}.php, so a
// spring request belongs to the page of the previous fall.
func (c *Client) AcademicYearURL(year int, semester string) string {
	fallYear := year
	if semester == "spring" {
		fallYear = year - 1
	}
	yy := fallYear % 100
	return fmt.Sprintf("%s/ay%02d%02d.php", c.AcademicBase, yy, (fallYear+1)%100)
}

// DeadlineURLs returns the candidate Dates & Deadlines pages for a term,
// most likely shape first. Both shapes have been observed live
// (spring26-dates.php and 26s-dates.php); the first that loads wins.
func (c *Client) DeadlineURLs(year int, semester string) []string {
	yy := year % 100
	code := "f"
	if semester == "spring" {
		code = "s"
	}
	return []string{
		fmt.Sprintf("%s/%s%02d-dates.php", c.DatesBase, semester, yy),
		fmt.Sprintf("%s/%02d%s-dates.php", c.DatesBase, yy, code),
	}
}
