package chat

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionForbidden = errors.New("session belongs to another user")
	ErrEmptyMessage     = errors.New("message content is empty")
)
