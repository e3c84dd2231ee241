package repository

import "flight-concierge/internal/model"

// CreateSessionOptions holds parameters for inserting a new Session.
type CreateSessionOptions struct {
	UserID string
	Title  string
}

// UpdateSessionOptions holds parameters for updating an existing Session.
// Title is applied only when non-empty; IncMessageCount is added to the
// stored counter.
type UpdateSessionOptions struct {
	ID              string
	Title           string
	IncMessageCount int
}

// AppendMessageOptions holds parameters for appending one message to a
// session's history.
type AppendMessageOptions struct {
	SessionID string
	Role      model.MessageRole
	Content   string
}

// ListMessagesOptions holds pagination parameters for listing messages in
// arrival order.
type ListMessagesOptions struct {
	SessionID string
	Limit     int
	Offset    int
}
