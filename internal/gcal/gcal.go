// Package gcal writes term facts to a Google Calendar as all-day
// events. Reruns are idempotent: each event carries a deterministic
// iCalUID derived from the calendar, title, and start date, and an
// existing event with that UID is updated rather than duplicated.
package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"termcal/internal/logger"
)

// DefaultCalendarID is the target term calendar.
const DefaultCalendarID = "61147m13qjm5liln3f318l3a08@group.calendar.google.com"

// Client wraps the Calendar API for all-day event upserts.
type Client struct {
	service *calendar.Service
}

// NewClient builds an authenticated client from an OAuth credentials
// file and a previously saved token file. There is no interactive flow
// here: a missing or invalid token is an error telling the user to
// authenticate first.
func NewClient(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("reading OAuth credentials: %w", err)
	}
	config, err := google.ConfigFromJSON(b, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parsing OAuth credentials: %w", err)
	}

	token, err := tokenFromFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("loading token from %s (authenticate first): %w", tokenPath, err)
	}

	service, err := calendar.NewService(ctx, option.WithHTTPClient(config.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	return &Client{service: service}, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// EventUID returns the deterministic idempotency key for an event.
func EventUID(calendarID, title string, start time.Time) string {
	uid := fmt.Sprintf("termcal-%s-%s-%s@local", calendarID, title, start.Format("2006-01-02"))
	return strings.ReplaceAll(uid, " ", "_")
}

// Upsert creates or updates an all-day event. Start and end are both
// inclusive dates; the Calendar API wants an exclusive end, so one day
// is added on the way out.
func (c *Client) Upsert(ctx context.Context, calendarID, title string, start, end time.Time, description string) error {
	uid := EventUID(calendarID, title, start)

	body := &calendar.Event{
		Summary:      title,
		Description:  description,
		Transparency: "transparent",
		ICalUID:      uid,
		Start:        &calendar.EventDateTime{Date: start.Format("2006-01-02")},
		End:          &calendar.EventDateTime{Date: end.AddDate(0, 0, 1).Format("2006-01-02")},
	}

	existing, err := c.findByUID(ctx, calendarID, uid, start, end)
	if err != nil {
		return err
	}

	if existing != nil {
		_, err = c.service.Events.Update(calendarID, existing.Id, body).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("updating event %q: %w", title, err)
		}
		logger.Info("updated event", logger.Fields{"title": title, "start": start.Format("2006-01-02")})
		return nil
	}

	_, err = c.service.Events.Insert(calendarID, body).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("inserting event %q: %w", title, err)
	}
	logger.Info("inserted event", logger.Fields{"title": title, "start": start.Format("2006-01-02")})
	return nil
}

// findByUID looks for a prior event with the given iCalUID. The API has
// no direct UID lookup, so events in a window around the target dates
// are listed and matched.
func (c *Client) findByUID(ctx context.Context, calendarID, uid string, start, end time.Time) (*calendar.Event, error) {
	timeMin := start.AddDate(0, 0, -1).Format(time.RFC3339)
	timeMax := end.AddDate(0, 0, 2).Format(time.RFC3339)

	events, err := c.service.Events.List(calendarID).
		TimeMin(timeMin).
		TimeMax(timeMax).
		SingleEvents(true).
		MaxResults(50).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	for _, e := range events.Items {
		if e.ICalUID == uid {
			return e, nil
		}
	}
	return nil, nil
}
