package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidPriority = goerr.New("invalid priority")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Validate checks if the priority is valid
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return goerr.Wrap(ErrInvalidPriority, "unknown priority", goerr.V("priority", p))
	}
}

type Task struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	Category    string     `json:"category" yaml:"category"`
	DueAt       *time.Time `json:"due_at,omitempty" yaml:"due_at,omitempty"`
	Completed   bool       `json:"completed" yaml:"completed"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
}

type Note struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	Category  string    `json:"category" yaml:"category"`
	Tags      []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

type Event struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	StartAt     time.Time `json:"start_at" yaml:"start_at"`
	EndAt       time.Time `json:"end_at" yaml:"end_at"`
	Location    string    `json:"location,omitempty" yaml:"location,omitempty"`
}

// Weather is a current conditions reading. A reading without Temperature is treated as absent.
type Weather struct {
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	FeelsLike   float64  `json:"feels_like" yaml:"feels_like"`
	Condition   string   `json:"condition" yaml:"condition"`
	Humidity    float64  `json:"humidity" yaml:"humidity"`
	WindSpeed   float64  `json:"wind_speed" yaml:"wind_speed"`
}

// Known reports whether the reading carries a numeric temperature
func (w *Weather) Known() bool {
	return w != nil && w.Temperature != nil
}

// Snapshot bundles the productivity data visible while one message is processed.
// A nil field means the value was not supplied.
type Snapshot struct {
	Tasks   []*Task  `json:"tasks" yaml:"tasks"`
	Notes   []*Note  `json:"notes" yaml:"notes"`
	Events  []*Event `json:"events" yaml:"events"`
	Weather *Weather `json:"weather,omitempty" yaml:"weather,omitempty"`
}

// Merge returns a new snapshot where every non-nil field of next replaces the one in s.
// Neither input is modified.
func (s Snapshot) Merge(next Snapshot) Snapshot {
	merged := s
	if next.Tasks != nil {
		merged.Tasks = next.Tasks
	}
	if next.Notes != nil {
		merged.Notes = next.Notes
	}
	if next.Events != nil {
		merged.Events = next.Events
	}
	if next.Weather != nil {
		merged.Weather = next.Weather
	}
	return merged
}
