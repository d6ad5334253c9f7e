package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
)

const (
	clearCalendarText = "📅 Your calendar is clear today! Perfect time to focus on your tasks or plan ahead."
	addEventText      = "🗓️ I can help you schedule a new event! Please provide:\n• Event title\n• Date and time\n• Location (optional)\n\nFor example: 'Meeting with John - Tomorrow 2:00 PM - Conference Room'"
	calendarHelpText  = "I can help you check your schedule, add events, or set reminders!"
)

func (e *Engine) CalendarReply(text string, snapshot model.Snapshot) string {
	msg := lower(text)

	switch {
	case containsAny(msg, "today", "schedule"):
		now := e.now()
		today := eventsOn(snapshot.Events, now)
		if len(today) == 0 {
			return clearCalendarText
		}

		lines := make([]string, 0, len(today))
		for _, ev := range today {
			location := ""
			if ev.Location != "" {
				location = "(" + ev.Location + ")"
			}
			lines = append(lines, fmt.Sprintf("• %s at %s %s", ev.Title, clock(ev.StartAt.In(now.Location())), location))
		}

		return fmt.Sprintf("📅 Today's schedule:\n\n%s\n\nWould you like me to add a new event or remind you about any of these?",
			strings.Join(lines, "\n"))

	case containsAny(msg, "add", "create"):
		return addEventText
	}

	return calendarHelpText
}

// eventsOn keeps events starting on the same calendar day as day, in day's location
func eventsOn(events []*model.Event, day time.Time) []*model.Event {
	y, m, d := day.Date()

	var matched []*model.Event
	for _, ev := range events {
		if ev == nil {
			continue
		}
		ey, em, ed := ev.StartAt.In(day.Location()).Date()
		if ey == y && em == m && ed == d {
			matched = append(matched, ev)
		}
	}
	return matched
}
