package model

import (
	"time"

	"github.com/google/uuid"
)

type ConversationID string

// NewConversationID generates a new unique ConversationID
func NewConversationID() ConversationID {
	return ConversationID(uuid.New().String())
}

// ProcessingText is recorded as the response of an exchange whose reply is not known yet
const ProcessingText = "Processing..."

// Conversation is the persisted record of one exchange
type Conversation struct {
	ID           ConversationID
	InputText    string
	ResponseText string
	CreatedAt    time.Time

	// ContextKey points to the archived snapshot in blob storage, if archived
	ContextKey string
	Context    *Snapshot
}
