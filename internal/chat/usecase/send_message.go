package usecase

import (
	"context"
	"strings"

	"flight-concierge/internal/agent"
	"flight-concierge/internal/chat"
	"flight-concierge/internal/chat/repository"
	"flight-concierge/internal/model"
	"flight-concierge/internal/router"
)

// SendMessage runs one conversation turn: route the message, dispatch to the
// chosen assistant, persist both sides of the exchange, and merge any
// context the assistant learned. Assistant failures surface as user-facing
// text inside the envelope, never as errors.
func (uc *implUseCase) SendMessage(ctx context.Context, sc model.Scope, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return chat.SendMessageOutput{}, chat.ErrEmptyMessage
	}

	session, err := uc.ownedSession(ctx, sc, input.SessionID)
	if err != nil {
		return chat.SendMessageOutput{}, err
	}

	convCtx, err := uc.loadContext(ctx, session.ID)
	if err != nil {
		return chat.SendMessageOutput{}, err
	}

	recent, err := uc.repo.RecentMessages(ctx, session.ID, router.RecentTurnWindow)
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.SendMessage RecentMessages: %v", err)
		return chat.SendMessageOutput{}, err
	}

	decision := uc.router.Decide(ctx, content, recent)

	var reply agent.Reply
	switch decision.Agent {
	case router.AgentClarify:
		reply = agent.RouteClarificationReply()
	case router.AgentFlight:
		reply = uc.flight.Handle(ctx, content, convCtx, recent)
	default:
		reply = uc.personal.Handle(ctx, content, convCtx, recent)
	}

	if _, err := uc.repo.AppendMessage(ctx, repository.AppendMessageOptions{
		SessionID: session.ID,
		Role:      model.RoleUser,
		Content:   content,
	}); err != nil {
		uc.l.Errorf(ctx, "chat/usecase.SendMessage append user: %v", err)
		return chat.SendMessageOutput{}, err
	}
	if _, err := uc.repo.AppendMessage(ctx, repository.AppendMessageOptions{
		SessionID: session.ID,
		Role:      model.RoleAssistant,
		Content:   reply.Text,
	}); err != nil {
		uc.l.Errorf(ctx, "chat/usecase.SendMessage append assistant: %v", err)
		return chat.SendMessageOutput{}, err
	}

	if len(reply.ContextUpdates) > 0 {
		if err := uc.repo.MergeContext(ctx, session.ID, reply.ContextUpdates); err != nil {
			// The turn already produced an answer; losing a context update
			// degrades the next turn but does not fail this one.
			uc.l.Errorf(ctx, "chat/usecase.SendMessage MergeContext: %v", err)
		}
		uc.ctxCache.Remove(session.ID)
	}

	uc.refreshSession(ctx, session, recent, content)

	return chat.SendMessageOutput{
		Response:         reply.Text,
		Agent:            string(decision.Agent),
		Intent:           string(reply.Intent),
		FlightScore:      decision.FlightScore,
		PersonalScore:    decision.PersonalScore,
		Threshold:        decision.Threshold,
		RequiresMoreInfo: reply.RequiresMoreInfo,
		Flights:          reply.Flights,
	}, nil
}

// loadContext reads the session context through the in-process cache.
func (uc *implUseCase) loadContext(ctx context.Context, sessionID string) (model.ConversationContext, error) {
	if cached, ok := uc.ctxCache.Get(sessionID); ok {
		return cached.Clone(), nil
	}

	loaded, err := uc.repo.LoadContext(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.loadContext: %v", err)
		return nil, err
	}
	uc.ctxCache.Add(sessionID, loaded.Clone())
	return loaded, nil
}
