package chat

import (
	"context"
	"encoding/json"
	"io"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/adapter"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// LoadConversation reads a recorded exchange, restoring its snapshot from blob storage when it
// was archived there
func LoadConversation(ctx context.Context, store repository.ConversationStore, storage adapter.Storage, id model.ConversationID) (*model.Conversation, error) {
	conv, err := store.GetConversation(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get conversation")
	}

	if conv.Context != nil || conv.ContextKey == "" {
		return conv, nil
	}
	if storage == nil {
		return nil, goerr.New("conversation context is archived but no storage is configured",
			goerr.V("conversation_id", id),
			goerr.V("key", conv.ContextKey))
	}

	reader, err := storage.Get(ctx, conv.ContextKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get context from storage")
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read context data")
	}

	var snapshot model.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal context", goerr.V("key", conv.ContextKey))
	}

	conv.Context = &snapshot
	return conv, nil
}
