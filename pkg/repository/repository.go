package repository

import (
	"context"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrNotFound = goerr.New("not found")
)

// TaskStore is a read-only source of tasks
type TaskStore interface {
	ListTasks(ctx context.Context) ([]*model.Task, error)
}

// NoteStore is a read-only source of notes
type NoteStore interface {
	ListNotes(ctx context.Context) ([]*model.Note, error)
}

// EventStore is a read-only source of calendar events
type EventStore interface {
	ListEvents(ctx context.Context) ([]*model.Event, error)
}

// WeatherSource provides the current weather reading. A nil reading means unknown.
type WeatherSource interface {
	GetWeather(ctx context.Context) (*model.Weather, error)
}

// ConversationStore records assistant exchanges
type ConversationStore interface {
	// PutConversation saves an exchange. Idempotency is not required.
	PutConversation(ctx context.Context, conv *model.Conversation) error

	// GetConversation retrieves an exchange by ID
	GetConversation(ctx context.Context, id model.ConversationID) (*model.Conversation, error)

	// ListConversations retrieves exchanges, newest first
	ListConversations(ctx context.Context, offset, limit int) ([]*model.Conversation, error)
}

// Repository is the full data store used by the assistant
type Repository interface {
	TaskStore
	NoteStore
	EventStore
	ConversationStore
}
