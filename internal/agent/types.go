package agent

import (
	"context"

	"flight-concierge/internal/model"
	"flight-concierge/pkg/flightsearch"
)

// Intent labels what kind of request a reply answered.
type Intent string

const (
	IntentFlightSearch  Intent = "flight_search"
	IntentGeneral       Intent = "general"
	IntentClarification Intent = "clarification"
)

// Reply is an assistant's contribution to one conversation turn. Every
// handler path resolves to user-facing text; failures become apologies or
// clarifying questions, never errors.
type Reply struct {
	Text             string
	Intent           Intent
	RequiresMoreInfo bool
	ContextUpdates   model.ConversationContext
	Flights          []flightsearch.FlightOption
}

// Assistant handles one routed user message. convCtx is the session's
// accumulated context; recent holds the trailing turns for prompt building.
type Assistant interface {
	Handle(ctx context.Context, message string, convCtx model.ConversationContext, recent []model.Message) Reply
}

// RouteClarificationReply is returned when a message asks about several
// distinct routes at once. The scorer is bypassed entirely in that case.
func RouteClarificationReply() Reply {
	return Reply{
		Text:             MsgMultiRouteClarification,
		Intent:           IntentClarification,
		RequiresMoreInfo: true,
	}
}
