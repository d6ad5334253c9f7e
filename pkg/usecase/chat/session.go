package chat

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/adapter"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/repository"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrSessionClosed = goerr.New("session is closed")
)

// Session owns the ordered transcript of one chat surface and records exchanges on the side
type Session struct {
	store   repository.ConversationStore
	storage adapter.Storage
	now     func() time.Time

	mu       sync.Mutex
	messages []model.Message
	lastID   model.MessageID
	closed   bool
	persists sync.WaitGroup
}

// NewSessionInput contains parameters for creating a new chat session
type NewSessionInput struct {
	Store   repository.ConversationStore // Optional: exchanges are not recorded when nil
	Storage adapter.Storage              // Optional: archive snapshots as blobs instead of inline
	Welcome bool                         // Start the transcript with the welcome message
	Now     func() time.Time
}

// Exchange is what gets recorded for one user message
type Exchange struct {
	InputText    string
	ResponseText string
	Context      model.Snapshot
}

func NewSession(input NewSessionInput) *Session {
	s := &Session{
		store:   input.Store,
		storage: input.Storage,
		now:     input.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}

	if input.Welcome {
		_, _ = s.AppendAssistant(model.WelcomeText)
	}

	return s
}

// AppendUser adds a user message to the transcript
func (s *Session) AppendUser(text string) (model.Message, error) {
	return s.append(model.RoleUser, text)
}

// AppendAssistant adds an assistant message to the transcript
func (s *Session) AppendAssistant(text string) (model.Message, error) {
	return s.append(model.RoleAssistant, text)
}

func (s *Session) append(role model.Role, text string) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return model.Message{}, goerr.Wrap(ErrSessionClosed, "message dropped", goerr.V("role", role))
	}

	s.lastID++
	msg := model.Message{
		ID:     s.lastID,
		Role:   role,
		Text:   text,
		SentAt: s.now(),
	}
	s.messages = append(s.messages, msg)

	return msg, nil
}

// Messages returns a copy of the transcript in display order
func (s *Session) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

// Persist records the exchange in the background. It never blocks and never fails: errors are
// only logged.
func (s *Session) Persist(ctx context.Context, ex Exchange) {
	if s.store == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	ctx = context.WithoutCancel(ctx)
	s.persists.Add(1)
	go func() {
		defer s.persists.Done()
		if err := s.record(ctx, ex); err != nil {
			logging.From(ctx).Warn("failed to record conversation", "error", err)
		}
	}()
}

func (s *Session) record(ctx context.Context, ex Exchange) error {
	snapshot := ex.Context
	conv := &model.Conversation{
		ID:           model.NewConversationID(),
		InputText:    ex.InputText,
		ResponseText: ex.ResponseText,
		CreatedAt:    s.now(),
		Context:      &snapshot,
	}

	if s.storage != nil {
		key := "conversations/" + string(conv.ID) + ".json"
		if err := archiveSnapshot(ctx, s.storage, key, snapshot); err != nil {
			return err
		}
		conv.ContextKey = key
		conv.Context = nil
	}

	if err := s.store.PutConversation(ctx, conv); err != nil {
		return goerr.Wrap(err, "failed to put conversation", goerr.V("conversation_id", conv.ID))
	}

	logging.From(ctx).Debug("conversation recorded", "conversation_id", conv.ID)
	return nil
}

func archiveSnapshot(ctx context.Context, storage adapter.Storage, key string, snapshot model.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal snapshot")
	}

	writer, err := storage.Put(ctx, key)
	if err != nil {
		return goerr.Wrap(err, "failed to create storage writer", goerr.V("key", key))
	}

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return goerr.Wrap(err, "failed to write snapshot to storage", goerr.V("key", key))
	}

	if err := writer.Close(); err != nil {
		return goerr.Wrap(err, "failed to close storage writer", goerr.V("key", key))
	}

	return nil
}

// Close tears the session down. Later appends fail with ErrSessionClosed. Close waits for
// outstanding persists so the process can exit without losing them.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.persists.Wait()
}
