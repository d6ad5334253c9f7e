package chat_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/usecase/chat"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestSessionAppendOrder(t *testing.T) {
	s := chat.NewSession(chat.NewSessionInput{Welcome: true})

	u, err := s.AppendUser("hello")
	gt.NoError(t, err)
	a, err := s.AppendAssistant("hi there")
	gt.NoError(t, err)

	msgs := s.Messages()
	gt.A(t, msgs).Length(3)
	gt.Equal(t, msgs[0].ID, model.MessageID(1))
	gt.Equal(t, msgs[0].Role, model.RoleAssistant)
	gt.Equal(t, msgs[0].Text, model.WelcomeText)
	gt.Equal(t, msgs[1], u)
	gt.Equal(t, msgs[2], a)
	gt.Equal(t, u.Role, model.RoleUser)
	gt.True(t, u.ID > msgs[0].ID)
	gt.True(t, a.ID > u.ID)
}

func TestSessionMessagesIsCopy(t *testing.T) {
	s := chat.NewSession(chat.NewSessionInput{})
	_, err := s.AppendUser("one")
	gt.NoError(t, err)

	msgs := s.Messages()
	msgs[0].Text = "changed"
	gt.Equal(t, s.Messages()[0].Text, "one")
}

func TestSessionClosed(t *testing.T) {
	s := chat.NewSession(chat.NewSessionInput{})
	s.Close()

	_, err := s.AppendAssistant("late reply")
	gt.True(t, errors.Is(err, chat.ErrSessionClosed))
	gt.A(t, s.Messages()).Length(0)
}

func TestSessionPersistInline(t *testing.T) {
	store := &mockStore{}
	s := chat.NewSession(chat.NewSessionInput{Store: store})

	temp := 20.0
	snapshot := model.Snapshot{
		Tasks:   []*model.Task{{ID: "t1", Title: "A task"}},
		Weather: &model.Weather{Temperature: &temp},
	}
	s.Persist(context.Background(), chat.Exchange{
		InputText:    "what tasks",
		ResponseText: model.ProcessingText,
		Context:      snapshot,
	})
	s.Close()

	recorded := store.recorded()
	gt.A(t, recorded).Length(1)
	gt.NotEqual(t, recorded[0].ID, model.ConversationID(""))
	gt.Equal(t, recorded[0].InputText, "what tasks")
	gt.Equal(t, recorded[0].ResponseText, "Processing...")
	gt.Equal(t, recorded[0].ContextKey, "")
	gt.NotNil(t, recorded[0].Context)
	gt.Equal(t, recorded[0].Context.Tasks[0].Title, "A task")
}

func TestSessionPersistArchivesSnapshot(t *testing.T) {
	ctx := context.Background()
	store := &mockStore{}
	storage := newMockStorage()
	s := chat.NewSession(chat.NewSessionInput{Store: store, Storage: storage})

	s.Persist(ctx, chat.Exchange{
		InputText:    "note summary",
		ResponseText: model.ProcessingText,
		Context: model.Snapshot{
			Notes: []*model.Note{{ID: "n1", Category: "work"}},
		},
	})
	s.Close()

	recorded := store.recorded()
	gt.A(t, recorded).Length(1)
	conv := recorded[0]
	gt.Equal(t, conv.ContextKey, "conversations/"+string(conv.ID)+".json")
	gt.Nil(t, conv.Context)

	var archived model.Snapshot
	gt.NoError(t, json.Unmarshal(storage.data[conv.ContextKey], &archived))
	gt.A(t, archived.Notes).Length(1)

	loaded, err := chat.LoadConversation(ctx, store, storage, conv.ID)
	gt.NoError(t, err)
	gt.NotNil(t, loaded.Context)
	gt.Equal(t, loaded.Context.Notes[0].Category, "work")
}

func TestLoadConversationWithoutStorage(t *testing.T) {
	ctx := context.Background()
	store := &mockStore{}
	gt.NoError(t, store.PutConversation(ctx, &model.Conversation{
		ID:         "archived",
		ContextKey: "conversations/archived.json",
	}))

	_, err := chat.LoadConversation(ctx, store, nil, "archived")
	gt.Error(t, err)
}

func TestSessionPersistFailureIsLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := logging.With(context.Background(), logging.New("info", "console", buf))

	store := &mockStore{err: goerr.New("store unavailable")}
	s := chat.NewSession(chat.NewSessionInput{Store: store})

	_, err := s.AppendUser("hello")
	gt.NoError(t, err)
	s.Persist(ctx, chat.Exchange{InputText: "hello", ResponseText: model.ProcessingText})
	s.Close()

	gt.S(t, buf.String()).Contains("failed to record conversation")
	gt.A(t, s.Messages()).Length(1)
}

func TestSessionPersistSurvivesCanceledContext(t *testing.T) {
	store := &mockStore{}
	s := chat.NewSession(chat.NewSessionInput{Store: store})

	ctx, cancel := context.WithCancel(context.Background())
	s.Persist(ctx, chat.Exchange{InputText: "hello"})
	cancel()
	s.Close()

	gt.A(t, store.recorded()).Length(1)
}
