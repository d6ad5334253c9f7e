package assistant

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
)

// Picker returns an index in [0, n)
type Picker func(n int) int

// Classifier routes text to an intent. Classify is the default.
type Classifier func(text string) model.Intent

// Engine turns a message and a snapshot into a reply. It holds no conversation state and is
// safe for concurrent use as long as the injected picker and clock are.
type Engine struct {
	pick     Picker
	now      func() time.Time
	classify Classifier
}

// Option is a functional option for Engine
type Option func(*Engine)

// WithPicker replaces the uniform random choice used by greeting and fallback replies
func WithPicker(p Picker) Option {
	return func(e *Engine) {
		e.pick = p
	}
}

// WithClock sets the evaluation instant source used to find today's events
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithClassifier replaces the built-in keyword rules, e.g. with a policy-backed classifier
func WithClassifier(c Classifier) Option {
	return func(e *Engine) {
		e.classify = c
	}
}

// New creates a new Engine
func New(opts ...Option) *Engine {
	e := &Engine{
		pick:     rand.IntN,
		now:      time.Now,
		classify: Classify,
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.classify == nil {
		e.classify = Classify
	}

	return e
}

// Respond classifies text and dispatches it to the matching responder
func (e *Engine) Respond(text string, snapshot model.Snapshot) string {
	reply, _ := e.RespondWithIntent(text, snapshot)
	return reply
}

// RespondWithIntent is Respond that also reports the intent the text was routed to
func (e *Engine) RespondWithIntent(text string, snapshot model.Snapshot) (string, model.Intent) {
	intent := e.classify(text)

	switch intent {
	case model.IntentTask:
		return e.TaskReply(text, snapshot), intent
	case model.IntentNote:
		return e.NoteReply(text, snapshot), intent
	case model.IntentCalendar:
		return e.CalendarReply(text, snapshot), intent
	case model.IntentWeather:
		return e.WeatherReply(text, snapshot), intent
	case model.IntentGreeting:
		return e.GreetingReply(text, snapshot), intent
	default:
		return e.GeneralReply(text, snapshot), intent
	}
}

func (e *Engine) choose(candidates []string) string {
	i := e.pick(len(candidates))
	if i < 0 || i >= len(candidates) {
		i = 0
	}
	return candidates[i]
}

func clock(t time.Time) string {
	return t.Format("15:04")
}

func lower(text string) string {
	return strings.ToLower(text)
}
