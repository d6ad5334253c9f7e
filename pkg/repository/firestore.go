package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionTasks         = "tasks"
	collectionNotes         = "notes"
	collectionEvents        = "calendar_events"
	collectionConversations = "assistant_conversations"
)

// Firestore implements Repository on Cloud Firestore
type Firestore struct {
	client *firestore.Client
}

// New creates a Firestore repository for the given project and database
func New(projectID, databaseID string) (*Firestore, error) {
	client, err := firestore.NewClientWithDatabase(context.Background(), projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID))
	}

	return &Firestore{client: client}, nil
}

// Close releases the underlying client
func (r *Firestore) Close() error {
	return r.client.Close()
}

func (r *Firestore) ListTasks(ctx context.Context) ([]*model.Task, error) {
	q := r.client.Collection(collectionTasks).OrderBy("CreatedAt", firestore.Desc)
	return collect[model.Task](ctx, q, collectionTasks)
}

func (r *Firestore) ListNotes(ctx context.Context) ([]*model.Note, error) {
	q := r.client.Collection(collectionNotes).OrderBy("CreatedAt", firestore.Desc)
	return collect[model.Note](ctx, q, collectionNotes)
}

func (r *Firestore) ListEvents(ctx context.Context) ([]*model.Event, error) {
	q := r.client.Collection(collectionEvents).OrderBy("StartAt", firestore.Asc)
	return collect[model.Event](ctx, q, collectionEvents)
}

func (r *Firestore) PutConversation(ctx context.Context, conv *model.Conversation) error {
	if conv.ID == "" {
		return goerr.New("conversation ID is empty")
	}

	_, err := r.client.Collection(collectionConversations).Doc(string(conv.ID)).Set(ctx, conv)
	if err != nil {
		return goerr.Wrap(err, "failed to put conversation", goerr.V("conversation_id", conv.ID))
	}
	return nil
}

func (r *Firestore) GetConversation(ctx context.Context, id model.ConversationID) (*model.Conversation, error) {
	doc, err := r.client.Collection(collectionConversations).Doc(string(id)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, goerr.Wrap(ErrNotFound, "conversation not found", goerr.V("conversation_id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get conversation", goerr.V("conversation_id", id))
	}

	var conv model.Conversation
	if err := doc.DataTo(&conv); err != nil {
		return nil, goerr.Wrap(err, "failed to decode conversation", goerr.V("conversation_id", id))
	}
	return &conv, nil
}

func (r *Firestore) ListConversations(ctx context.Context, offset, limit int) ([]*model.Conversation, error) {
	q := r.client.Collection(collectionConversations).
		OrderBy("CreatedAt", firestore.Desc).
		Offset(max(offset, 0))
	if limit > 0 {
		q = q.Limit(limit)
	}
	return collect[model.Conversation](ctx, q, collectionConversations)
}

func collect[T any](ctx context.Context, q firestore.Query, collection string) ([]*T, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	results := []*T{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents", goerr.V("collection", collection))
		}

		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, goerr.Wrap(err, "failed to decode document",
				goerr.V("collection", collection),
				goerr.V("doc_id", doc.Ref.ID))
		}
		results = append(results, &v)
	}

	return results, nil
}
