package router

import (
	"context"
	"math"

	"flight-concierge/internal/model"
)

// Decide routes one message. The multi-route guard is checked before any
// scoring; when it fires the scorer is not consulted at all.
func (r *IntentRouter) Decide(ctx context.Context, message string, history []model.Message) Decision {
	if NeedsRouteClarification(message) {
		r.l.Infof(ctx, "%s: multi-route guard fired, asking for disambiguation", LogPrefixDecide)
		return Decision{Agent: AgentClarify}
	}

	flightScore := r.scorer.FlightScore(message)
	personalScore := r.scorer.PersonalScore(message)

	// State carryover raises scores to a floor; it never lowers them.
	state := TrackState(history)
	if state.InFlightConversation {
		flightScore = math.Max(flightScore, FlightConversationFloor)
	}
	if state.InPersonalConversation {
		personalScore = math.Max(personalScore, PersonalConversationFloor)
	}

	threshold := dynamicThreshold(flightScore, personalScore)

	// Ties and all-below-threshold cases fall through to the personal
	// assistant, the default path.
	agent := AgentPersonal
	if flightScore >= threshold && flightScore > personalScore {
		agent = AgentFlight
	}

	decision := Decision{
		Agent:         agent,
		FlightScore:   flightScore,
		PersonalScore: personalScore,
		Threshold:     threshold,
		State:         state,
	}

	r.l.Infof(ctx, "%s: agent=%s flight=%.2f personal=%.2f threshold=%.2f",
		LogPrefixDecide, decision.Agent, flightScore, personalScore, threshold)
	return decision
}

// dynamicThreshold picks the decision threshold from the score gap: nearly
// tied scores demand strong evidence, a clear winner needs less.
func dynamicThreshold(flightScore, personalScore float64) float64 {
	gap := math.Abs(flightScore - personalScore)
	switch {
	case gap < ScoreGapNarrow:
		return ThresholdStrict
	case gap > ScoreGapWide:
		return ThresholdLenient
	default:
		return ThresholdBase
	}
}
