package model

import "time"

// MessageRole tags who produced a message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one turn in a session. Messages are append-only and immutable
// once recorded.
type Message struct {
	ID        string      `bson:"_id"`
	SessionID string      `bson:"session_id"`
	Role      MessageRole `bson:"role"`
	Content   string      `bson:"content"`
	CreatedAt time.Time   `bson:"created_at"`
}

// Session is a persisted conversation thread.
type Session struct {
	ID           string    `bson:"_id"`
	UserID       string    `bson:"user_id"`
	Title        string    `bson:"title"`
	MessageCount int       `bson:"message_count"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// ConversationContext is the durable key-value facts carried across turns
// within a session (partial flight fields, remembered personal attributes).
type ConversationContext map[string]string

// Clone returns a copy safe to mutate.
func (c ConversationContext) Clone() ConversationContext {
	out := make(ConversationContext, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
