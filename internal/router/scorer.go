package router

import (
	"regexp"
	"strings"

	"flight-concierge/internal/flightquery"
)

// dateLikeRe matches anything that reads like a date: numeric forms,
// relative words, or month-name + day.
var dateLikeRe = regexp.MustCompile(`(?i)\b(?:\d{4}-\d{1,2}-\d{1,2}|\d{1,2}/\d{1,2}(?:/\d{2,4})?|\d{1,2}-\d{1,2}(?:-\d{2,4})?|today|tonight|tomorrow|next\s+week|next\s+month|(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+\d{1,2})\b`)

var questionLeadRe = regexp.MustCompile(`(?i)^\s*(?:what|where|when|which|who|how|why|can|could|would|will|do|does|is|are|am)\b`)

// Scorer computes heuristic intent confidence scores. Scores are
// independent per message: they need not sum to 1 and may both be low or
// both high. Pure computation, safe for concurrent use.
type Scorer struct{}

// NewScorer creates a new Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// FlightScore rates how strongly the message matches the flight-search
// intent profile, in [0,1].
func (s *Scorer) FlightScore(message string) float64 {
	text := strings.ToLower(message)
	words := tokenize(text)

	var score float64
	groups := []struct {
		weight float64
		terms  []string
	}{
		{weightFlightWords, flightWords},
		{weightAirportWords, airportWords},
		{weightBookingWords, bookingWords},
		{weightAirlineWords, airlineWords},
		{weightTripTypeWords, tripTypeWords},
		{weightTravelWords, travelWords},
		{weightDestinationPhrases, destinationPhrases},
	}
	for _, g := range groups {
		if containsAny(text, words, g.terms) {
			score += g.weight
		}
	}

	if flightquery.MentionsCity(text) {
		score *= multCityMention
	}
	if dateLikeRe.MatchString(text) {
		score *= multDateToken
	}
	if containsAny(text, words, travelIntentPhrases) {
		score *= multTravelIntentPhrase
	}
	if isQuestion(message) {
		score *= multQuestion
	}
	if containsAny(text, words, urgencyWords) {
		score *= multUrgency
	}

	if containsAny(text, words, competingTransportWords) {
		score *= penaltyCompetingTransport
	}

	if containsAny(text, words, actionVerbs) {
		score += bonusActionVerb
	}

	return clamp01(score)
}

// PersonalScore rates how strongly the message matches the personal /
// chitchat intent profile, in [0,1].
func (s *Scorer) PersonalScore(message string) float64 {
	text := strings.ToLower(message)
	words := tokenize(text)

	var score float64
	groups := []struct {
		weight float64
		terms  []string
	}{
		{weightGreetings, greetingWords},
		{weightPersonalStatement, personalStatementPhrases},
		{weightPersonalQuestion, personalQuestionPhrases},
		{weightAssistantIdentity, assistantIdentityPhrases},
	}
	for _, g := range groups {
		if containsAny(text, words, g.terms) {
			score += g.weight
		}
	}

	hasFlightWords := containsAny(text, words, flightWords)
	hasAirportWords := containsAny(text, words, airportWords)

	if len(words) <= shortMessageMaxWords && !hasFlightWords {
		score += bonusShortMessage
	}
	if isQuestion(message) && !hasFlightWords && !hasAirportWords {
		score += bonusPersonalQuestion
	}

	if hasFlightWords || hasAirportWords {
		score *= penaltyFlightPresence
	}

	return clamp01(score)
}

// tokenize splits lowered text into word tokens, dropping punctuation.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '\'')
	})
}

// containsAny reports whether any term appears in the message. Multi-word
// terms are matched as substrings of the lowered text; single words must
// match whole tokens so "hi" does not fire inside "this".
func containsAny(text string, words []string, terms []string) bool {
	for _, term := range terms {
		if strings.ContainsRune(term, ' ') {
			if strings.Contains(text, term) {
				return true
			}
			continue
		}
		for _, w := range words {
			if w == term {
				return true
			}
		}
	}
	return false
}

func isQuestion(message string) bool {
	return strings.Contains(message, "?") || questionLeadRe.MatchString(message)
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
