package assistant

import (
	"strings"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
)

type rule struct {
	intent   model.Intent
	keywords []string
}

// rules are evaluated in order and the first match wins
var rules = []rule{
	{intent: model.IntentTask, keywords: []string{"task", "todo"}},
	{intent: model.IntentNote, keywords: []string{"note", "write"}},
	{intent: model.IntentCalendar, keywords: []string{"calendar", "schedule", "meeting"}},
	{intent: model.IntentWeather, keywords: []string{"weather"}},
	{intent: model.IntentGreeting, keywords: []string{"hello", "hi"}},
}

// Classify maps free text to an intent by case-insensitive substring match.
// Matching does not respect word boundaries, so "notebook" is a note and "this" is a greeting.
func Classify(text string) model.Intent {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if containsAny(lower, r.keywords...) {
			return r.intent
		}
	}
	return model.IntentGeneral
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
