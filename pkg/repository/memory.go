package repository

import (
	"context"
	"os"
	"slices"
	"sync"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Memory keeps all data in process. It backs local mode and tests.
type Memory struct {
	mu            sync.RWMutex
	tasks         []*model.Task
	notes         []*model.Note
	events        []*model.Event
	weather       *model.Weather
	conversations []*model.Conversation
}

// NewMemory creates a Memory repository seeded with the given snapshot
func NewMemory(seed model.Snapshot) *Memory {
	return &Memory{
		tasks:   slices.Clone(seed.Tasks),
		notes:   slices.Clone(seed.Notes),
		events:  slices.Clone(seed.Events),
		weather: seed.Weather,
	}
}

// LoadFile creates a Memory repository from a YAML fixture with tasks, notes, events and weather
func LoadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read data file", goerr.V("path", path))
	}

	var seed model.Snapshot
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse data file", goerr.V("path", path))
	}

	for _, t := range seed.Tasks {
		if t.Priority == "" {
			t.Priority = model.PriorityMedium
		}
		if err := t.Priority.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid task in data file", goerr.V("path", path), goerr.V("task_id", t.ID))
		}
	}

	return NewMemory(seed), nil
}

func (m *Memory) ListTasks(ctx context.Context) ([]*model.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.tasks), nil
}

func (m *Memory) ListNotes(ctx context.Context) ([]*model.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.notes), nil
}

func (m *Memory) ListEvents(ctx context.Context) ([]*model.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.events), nil
}

// GetWeather returns the seeded reading, nil if none was given
func (m *Memory) GetWeather(ctx context.Context) (*model.Weather, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.weather, nil
}

// PutTask appends a task. The assistant never calls it; it exists for fixtures and tests.
func (m *Memory) PutTask(task *model.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, task)
}

func (m *Memory) PutConversation(ctx context.Context, conv *model.Conversation) error {
	if conv.ID == "" {
		return goerr.New("conversation ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversations = append(m.conversations, conv)
	return nil
}

func (m *Memory) GetConversation(ctx context.Context, id model.ConversationID) (*model.Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.conversations {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, goerr.Wrap(ErrNotFound, "conversation not found", goerr.V("conversation_id", id))
}

func (m *Memory) ListConversations(ctx context.Context, offset, limit int) ([]*model.Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	newest := slices.Clone(m.conversations)
	slices.Reverse(newest)

	offset = max(offset, 0)

	if offset >= len(newest) {
		return []*model.Conversation{}, nil
	}
	newest = newest[offset:]
	if limit > 0 && limit < len(newest) {
		newest = newest[:limit]
	}
	return newest, nil
}
