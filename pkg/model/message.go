package model

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// MessageID is an ordinal allocated by the owning session. Ids grow strictly in creation order.
type MessageID int64

// Message is one entry of a chat transcript. It is never modified after creation.
type Message struct {
	ID     MessageID `json:"id"`
	Role   Role      `json:"role"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// WelcomeText opens a fresh transcript
const WelcomeText = "👋 Hello! I'm your AI assistant. Ask me about your tasks, notes, calendar, or anything else!"
