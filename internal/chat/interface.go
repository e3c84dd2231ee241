package chat

import (
	"context"

	"flight-concierge/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Session CRUD
	CreateSession(ctx context.Context, sc model.Scope, input CreateSessionInput) (SessionOutput, error)
	ListSessions(ctx context.Context, sc model.Scope) (ListSessionsOutput, error)
	DetailSession(ctx context.Context, sc model.Scope, sessionID string) (SessionOutput, error)
	RenameSession(ctx context.Context, sc model.Scope, input RenameSessionInput) (SessionOutput, error)
	DeleteSession(ctx context.Context, sc model.Scope, sessionID string) error

	// Conversation
	ListMessages(ctx context.Context, sc model.Scope, input ListMessagesInput) (ListMessagesOutput, error)
	SendMessage(ctx context.Context, sc model.Scope, input SendMessageInput) (SendMessageOutput, error)
	// ResetContext drops the session's accumulated context, keeping the
	// message history intact.
	ResetContext(ctx context.Context, sc model.Scope, sessionID string) error
}
