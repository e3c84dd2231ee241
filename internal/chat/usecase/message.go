package usecase

import (
	"context"

	"flight-concierge/internal/chat"
	"flight-concierge/internal/chat/repository"
	"flight-concierge/internal/model"
)

// ListMessages returns a page of the session's history in arrival order.
func (uc *implUseCase) ListMessages(ctx context.Context, sc model.Scope, input chat.ListMessagesInput) (chat.ListMessagesOutput, error) {
	if _, err := uc.ownedSession(ctx, sc, input.SessionID); err != nil {
		return chat.ListMessagesOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 || limit > MaxMessagePageSize {
		limit = DefaultMessagePageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	messages, total, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
		SessionID: input.SessionID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.ListMessages: %v", err)
		return chat.ListMessagesOutput{}, err
	}

	return chat.ListMessagesOutput{
		Messages: messages,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}
