package usecase

import (
	"context"
	"errors"
	"strings"

	"flight-concierge/internal/chat"
	"flight-concierge/internal/chat/repository"
	"flight-concierge/internal/model"
)

// CreateSession starts a new conversation thread for the user.
func (uc *implUseCase) CreateSession(ctx context.Context, sc model.Scope, input chat.CreateSessionInput) (chat.SessionOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = DefaultSessionTitle
	}

	session, err := uc.repo.CreateSession(ctx, repository.CreateSessionOptions{
		UserID: sc.UserID,
		Title:  title,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.CreateSession: %v", err)
		return chat.SessionOutput{}, err
	}
	return chat.SessionOutput{Session: session}, nil
}

// ListSessions returns the user's sessions, most recently active first.
func (uc *implUseCase) ListSessions(ctx context.Context, sc model.Scope) (chat.ListSessionsOutput, error) {
	sessions, err := uc.repo.ListSessions(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.ListSessions: %v", err)
		return chat.ListSessionsOutput{}, err
	}
	return chat.ListSessionsOutput{Sessions: sessions}, nil
}

// DetailSession returns one session owned by the user.
func (uc *implUseCase) DetailSession(ctx context.Context, sc model.Scope, sessionID string) (chat.SessionOutput, error) {
	session, err := uc.ownedSession(ctx, sc, sessionID)
	if err != nil {
		return chat.SessionOutput{}, err
	}
	return chat.SessionOutput{Session: session}, nil
}

// RenameSession sets a new title on a session owned by the user.
func (uc *implUseCase) RenameSession(ctx context.Context, sc model.Scope, input chat.RenameSessionInput) (chat.SessionOutput, error) {
	if _, err := uc.ownedSession(ctx, sc, input.SessionID); err != nil {
		return chat.SessionOutput{}, err
	}

	session, err := uc.repo.UpdateSession(ctx, repository.UpdateSessionOptions{
		ID:    input.SessionID,
		Title: strings.TrimSpace(input.Title),
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.RenameSession: %v", err)
		return chat.SessionOutput{}, err
	}
	return chat.SessionOutput{Session: session}, nil
}

// DeleteSession removes a session, its messages, and its context.
func (uc *implUseCase) DeleteSession(ctx context.Context, sc model.Scope, sessionID string) error {
	if _, err := uc.ownedSession(ctx, sc, sessionID); err != nil {
		return err
	}

	if err := uc.repo.DeleteSession(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "chat/usecase.DeleteSession: %v", err)
		return err
	}
	uc.ctxCache.Remove(sessionID)
	return nil
}

// ResetContext clears the session's accumulated context. History and title
// are untouched.
func (uc *implUseCase) ResetContext(ctx context.Context, sc model.Scope, sessionID string) error {
	if _, err := uc.ownedSession(ctx, sc, sessionID); err != nil {
		return err
	}

	if err := uc.repo.ClearContext(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "chat/usecase.ResetContext: %v", err)
		return err
	}
	uc.ctxCache.Remove(sessionID)
	return nil
}

// ownedSession fetches a session and checks ownership.
func (uc *implUseCase) ownedSession(ctx context.Context, sc model.Scope, sessionID string) (model.Session, error) {
	session, err := uc.repo.GetSession(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Session{}, chat.ErrSessionNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.ownedSession: %v", err)
		return model.Session{}, err
	}
	if session.UserID != sc.UserID {
		return model.Session{}, chat.ErrSessionForbidden
	}
	return session, nil
}
