package router

// Agent identifies which assistant handles a turn.
type Agent string

const (
	AgentFlight   Agent = "flight_agent"
	AgentPersonal Agent = "personal_agent"

	// AgentClarify is the multi-route short circuit: no assistant runs,
	// the user is asked to disambiguate one route at a time.
	AgentClarify Agent = "clarification"
)

// ConversationState is the carryover detected from recent turns. It only
// ever raises scores, never lowers them.
type ConversationState struct {
	InFlightConversation   bool
	InPersonalConversation bool
}

// Decision is the routing outcome for one message. Derived, never stored.
type Decision struct {
	Agent         Agent   `json:"agent"`
	FlightScore   float64 `json:"flight_score"`
	PersonalScore float64 `json:"personal_score"`
	Threshold     float64 `json:"threshold"`

	State ConversationState `json:"-"`
}
