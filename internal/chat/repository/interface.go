package repository

import (
	"context"

	"flight-concierge/internal/model"
)

// Repository is the composed interface for the chat domain data store.
type Repository interface {
	SessionRepository
	MessageRepository
	ContextRepository
}

// SessionRepository defines data access for Session records.
type SessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.Session, error)
	GetSession(ctx context.Context, id string) (model.Session, error)
	ListSessions(ctx context.Context, userID string) ([]model.Session, error)
	UpdateSession(ctx context.Context, opt UpdateSessionOptions) (model.Session, error)
	// DeleteSession removes the session along with its messages and context.
	DeleteSession(ctx context.Context, id string) error
}

// MessageRepository defines data access for the append-only message log.
type MessageRepository interface {
	AppendMessage(ctx context.Context, opt AppendMessageOptions) (model.Message, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.Message, int, error)
	// RecentMessages returns up to limit trailing messages in arrival order.
	RecentMessages(ctx context.Context, sessionID string, limit int) ([]model.Message, error)
}

// ContextRepository defines data access for per-session conversation context.
type ContextRepository interface {
	// LoadContext returns the stored context, or an empty map when absent.
	LoadContext(ctx context.Context, sessionID string) (model.ConversationContext, error)
	// MergeContext upserts the given keys field by field, creating the
	// document when absent. Keys not present in updates are left untouched.
	MergeContext(ctx context.Context, sessionID string, updates model.ConversationContext) error
	ClearContext(ctx context.Context, sessionID string) error
}
