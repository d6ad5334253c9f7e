package model

// Intent is the category a user message is routed to.
type Intent string

const (
	IntentTask     Intent = "task"
	IntentNote     Intent = "note"
	IntentCalendar Intent = "calendar"
	IntentWeather  Intent = "weather"
	IntentGreeting Intent = "greeting"
	IntentGeneral  Intent = "general"
)

// Valid reports whether i is one of the known intents
func (i Intent) Valid() bool {
	switch i {
	case IntentTask, IntentNote, IntentCalendar, IntentWeather, IntentGreeting, IntentGeneral:
		return true
	}
	return false
}

// QuickActions are the canned prompts offered by the chat surface
var QuickActions = []string{
	"What are my pending tasks?",
	"Take a note for me",
	"What's on my calendar today?",
	"How's the weather?",
}
