package adapter

import (
	"context"
	"time"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Calendar reads events from a Google Calendar. It implements repository.EventStore.
type Calendar struct {
	srv        *calendar.Service
	calendarID string
	days       int
	now        func() time.Time
}

// CalendarOption is a functional option for Calendar
type CalendarOption func(*Calendar)

// WithDays sets how many days from the start of today are listed
func WithDays(days int) CalendarOption {
	return func(c *Calendar) {
		c.days = days
	}
}

// WithCalendarClock sets the clock used to compute the listing window
func WithCalendarClock(now func() time.Time) CalendarOption {
	return func(c *Calendar) {
		c.now = now
	}
}

// NewCalendar creates a read-only Google Calendar client. Application default credentials are
// used unless credentialsFile is given.
func NewCalendar(ctx context.Context, calendarID, credentialsFile string, opts ...CalendarOption) (*Calendar, error) {
	clientOpts := []option.ClientOption{
		option.WithScopes(calendar.CalendarReadonlyScope),
	}
	if credentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credentialsFile))
	}

	srv, err := calendar.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create calendar service")
	}

	c := &Calendar{
		srv:        srv,
		calendarID: calendarID,
		days:       7,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Calendar) ListEvents(ctx context.Context) ([]*model.Event, error) {
	now := c.now()
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, c.days)

	call := c.srv.Events.List(c.calendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")

	var events []*model.Event
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			ev, err := EventFromCalendar(item, now.Location())
			if err != nil {
				return err
			}
			events = append(events, ev)
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list calendar events", goerr.V("calendar_id", c.calendarID))
	}

	return events, nil
}

// EventFromCalendar converts a Google Calendar item. All-day items start at midnight in loc.
func EventFromCalendar(item *calendar.Event, loc *time.Location) (*model.Event, error) {
	start, err := eventTime(item.Start, loc)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid event start", goerr.V("event_id", item.Id))
	}
	end, err := eventTime(item.End, loc)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid event end", goerr.V("event_id", item.Id))
	}

	return &model.Event{
		ID:          item.Id,
		Title:       item.Summary,
		Description: item.Description,
		StartAt:     start,
		EndAt:       end,
		Location:    item.Location,
	}, nil
}

func eventTime(dt *calendar.EventDateTime, loc *time.Location) (time.Time, error) {
	if dt == nil {
		return time.Time{}, goerr.New("event time is missing")
	}
	if dt.DateTime != "" {
		return time.Parse(time.RFC3339, dt.DateTime)
	}
	if dt.Date != "" {
		return time.ParseInLocation(time.DateOnly, dt.Date, loc)
	}
	return time.Time{}, goerr.New("event time has neither date nor dateTime")
}
