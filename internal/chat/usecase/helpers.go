package usecase

import (
	"context"
	"fmt"
	"strings"

	"flight-concierge/internal/chat/repository"
	"flight-concierge/internal/model"
)

// refreshSession bumps the message counter and refreshes the title when due:
// the first exchange names the session after the opening message, and every
// TitleRefreshEvery messages the title is regenerated from recent turns.
func (uc *implUseCase) refreshSession(ctx context.Context, session model.Session, recent []model.Message, content string) {
	opt := repository.UpdateSessionOptions{
		ID:              session.ID,
		IncMessageCount: 2,
	}

	newCount := session.MessageCount + 2
	switch {
	case newCount == 2 && (session.Title == "" || session.Title == DefaultSessionTitle):
		opt.Title = truncateTitle(content)
	case newCount%uc.cfg.TitleRefreshEvery == 0:
		opt.Title = uc.generateTitle(ctx, recent, content)
	}

	if _, err := uc.repo.UpdateSession(ctx, opt); err != nil {
		uc.l.Errorf(ctx, "chat/usecase.refreshSession: %v", err)
	}
}

// generateTitle asks the generative service for a title, falling back to a
// truncation of the latest message.
func (uc *implUseCase) generateTitle(ctx context.Context, recent []model.Message, content string) string {
	var transcript strings.Builder
	for _, m := range recent {
		fmt.Fprintf(&transcript, "%s: %s\n", m.Role, m.Content)
	}
	fmt.Fprintf(&transcript, "%s: %s\n", model.RoleUser, content)

	title, err := uc.gen.Generate(ctx, fmt.Sprintf(titlePrompt, transcript.String()))
	if err != nil {
		uc.l.Warnf(ctx, "chat/usecase.generateTitle: %v", err)
		return truncateTitle(content)
	}

	title = strings.Trim(strings.TrimSpace(title), `"'`)
	if title == "" {
		return truncateTitle(content)
	}
	return truncateTitle(title)
}

// truncateTitle collapses whitespace and caps the length on a rune boundary.
func truncateTitle(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= titleMaxLen {
		return s
	}
	return strings.TrimSpace(string(runes[:titleMaxLen])) + "..."
}
