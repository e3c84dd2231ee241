package chat

import (
	"flight-concierge/internal/model"
	"flight-concierge/pkg/flightsearch"
)

// --- UseCase Inputs ---

type CreateSessionInput struct {
	Title string
}

type RenameSessionInput struct {
	SessionID string
	Title     string
}

type ListMessagesInput struct {
	SessionID string
	Limit     int
	Offset    int
}

type SendMessageInput struct {
	SessionID string
	Content   string
}

// --- UseCase Outputs ---

type SessionOutput struct {
	Session model.Session
}

type ListSessionsOutput struct {
	Sessions []model.Session
}

type ListMessagesOutput struct {
	Messages []model.Message
	Total    int
	Limit    int
	Offset   int
}

// SendMessageOutput is the uniform turn envelope regardless of which
// assistant answered.
type SendMessageOutput struct {
	Response         string
	Agent            string
	Intent           string
	FlightScore      float64
	PersonalScore    float64
	Threshold        float64
	RequiresMoreInfo bool
	Flights          []flightsearch.FlightOption
}
