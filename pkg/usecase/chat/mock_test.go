package chat_test

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// Mock ConversationStore
type mockStore struct {
	mu            sync.Mutex
	conversations []*model.Conversation
	err           error
}

func (m *mockStore) PutConversation(ctx context.Context, conv *model.Conversation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.conversations = append(m.conversations, conv)
	return nil
}

func (m *mockStore) GetConversation(ctx context.Context, id model.ConversationID) (*model.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.conversations {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, goerr.New("conversation not found", goerr.V("conversation_id", id))
}

func (m *mockStore) ListConversations(ctx context.Context, offset, limit int) ([]*model.Conversation, error) {
	return nil, nil
}

func (m *mockStore) recorded() []*model.Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.Conversation(nil), m.conversations...)
}

// Mock Storage
type mockStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		data: make(map[string][]byte),
	}
}

func (m *mockStorage) Put(ctx context.Context, key string) (io.WriteCloser, error) {
	return &mockWriteCloser{
		Buffer:  &bytes.Buffer{},
		storage: m,
		key:     key,
	}, nil
}

type mockWriteCloser struct {
	*bytes.Buffer
	storage *mockStorage
	key     string
}

func (m *mockWriteCloser) Close() error {
	m.storage.mu.Lock()
	defer m.storage.mu.Unlock()
	m.storage.data[m.key] = m.Buffer.Bytes()
	return nil
}

func (m *mockStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, goerr.New("data not found", goerr.V("key", key))
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Mock SnapshotSource returning queued results in order, then empty snapshots
type mockSource struct {
	mu      sync.Mutex
	results []sourceResult
	calls   int
}

type sourceResult struct {
	snapshot model.Snapshot
	err      error
}

func (m *mockSource) Load(ctx context.Context) (model.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if len(m.results) == 0 {
		return model.Snapshot{}, nil
	}
	r := m.results[0]
	m.results = m.results[1:]
	return r.snapshot, r.err
}

// typingRecorder collects typing indicator changes
type typingRecorder struct {
	mu     sync.Mutex
	events []bool
}

func (r *typingRecorder) hook(typing bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, typing)
}

func (r *typingRecorder) get() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.events...)
}
