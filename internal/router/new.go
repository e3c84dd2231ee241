package router

import (
	"context"

	"flight-concierge/internal/model"
	"flight-concierge/pkg/log"
)

// Router decides which assistant handles an incoming message.
type Router interface {
	Decide(ctx context.Context, message string, history []model.Message) Decision
}

// IntentRouter is the heuristic scoring engine combining keyword
// confidence, conversational-state carryover, and a dynamic threshold.
type IntentRouter struct {
	l      log.Logger
	scorer *Scorer
}

// Ensure IntentRouter implements Router interface
var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(l log.Logger) *IntentRouter {
	return &IntentRouter{
		l:      l,
		scorer: NewScorer(),
	}
}
