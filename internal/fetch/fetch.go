// Package fetch retrieves registrar calendar pages and flattens their
// HTML into the normalized line form the extraction packages work on.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"termcal/internal/dateparse"
)

const (
	AcademicBase = "https://www.memphis.edu/registrar/calendars/academic"
	DatesBase    = "https://www.memphis.edu/registrar/calendars/dates"
	UserAgent    = "termcal/1.0"
	Timeout      = 30 * time.Second
)

// Client fetches and flattens registrar pages.
type Client struct {
	http         *http.Client
	AcademicBase string
	DatesBase    string
}

// New creates a Client with the default timeout and page locations.
func New() *Client {
	return &Client{
		http:         &http.Client{Timeout: Timeout},
		AcademicBase: AcademicBase,
		DatesBase:    DatesBase,
	}
}

// FetchPage performs a GET and returns the raw page body.
func (c *Client) FetchPage(url string) (string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: unexpected status code %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	return string(body), nil
}

// FetchLines fetches a page and returns its flattened text lines.
func (c *Client) FetchLines(url string) ([]string, error) {
	body, err := c.FetchPage(url)
	if err != nil {
		return nil, err
	}
	return Flatten(strings.NewReader(body))
}

// FetchFirst tries each URL in order and returns the lines of the first
// page that loads, along with the URL that won. Order matters: callers
// pass candidates from most to least likely.
func (c *Client) FetchFirst(urls []string) ([]string, string, error) {
	var errs []string
	for _, u := range urls {
		lines, err := c.FetchLines(u)
		if err == nil {
			return lines, u, nil
		}
		errs = append(errs, err.Error())
	}
	return nil, "", fmt.Errorf("no candidate URL reachable: %s", strings.Join(errs, "; "))
}

// Flatten reduces an HTML document to normalized text lines: one logical
// line per block element or list item, run-length whitespace collapsed,
// blank lines dropped.
func Flatten(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	// goquery's Text concatenates text nodes without separators, which
	// glues adjacent list items together. Insert explicit breaks around
	// block elements first.
	doc.Find("br").Each(func(i int, sel *goquery.Selection) {
		sel.ReplaceWithHtml("\n")
	})
	doc.Find("p, li, h1, h2, h3, h4, div, tr").Each(func(i int, sel *goquery.Selection) {
		sel.PrependHtml("\n")
	})

	var lines []string
	for _, raw := range strings.Split(doc.Text(), "\n") {
		if l := dateparse.Normalize(raw); l != "" {
			lines = append(lines, l)
		}
	}
	return lines, nil
}
