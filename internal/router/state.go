package router

import (
	"strings"

	"flight-concierge/internal/model"
)

// TrackState inspects the trailing turns of a conversation and reports
// whether the session is still mid flight or mid personal conversation.
// The result is used only to raise scores, never to lower them.
func TrackState(history []model.Message) ConversationState {
	recent := recentWindow(history, RecentTurnWindow)
	if len(recent) == 0 {
		return ConversationState{}
	}

	var combined strings.Builder
	var lastAssistant, lastUser string
	for _, msg := range recent {
		combined.WriteString(strings.ToLower(msg.Content))
		combined.WriteByte('\n')
		switch msg.Role {
		case model.RoleAssistant:
			lastAssistant = strings.ToLower(msg.Content)
		case model.RoleUser:
			lastUser = strings.ToLower(msg.Content)
		}
	}
	recentText := combined.String()

	return ConversationState{
		InFlightConversation:   inFlightConversation(recentText, lastAssistant, lastUser),
		InPersonalConversation: inPersonalConversation(recentText, lastAssistant),
	}
}

func inFlightConversation(recentText, lastAssistant, lastUser string) bool {
	for _, word := range flightContinuationWords {
		if strings.Contains(recentText, word) {
			return true
		}
	}

	// The assistant asked a flight-shaped follow-up question.
	if strings.Contains(lastAssistant, "?") {
		for _, word := range flightFollowUpWords {
			if strings.Contains(lastAssistant, word) {
				return true
			}
		}
	}

	// The user supplied flight-shaped data. A bare from/to only counts in a
	// compact reply; "to" appears in almost any longer sentence.
	if lastUser != "" {
		userWords := tokenize(lastUser)
		if containsAny(lastUser, userWords, []string{"from", "to"}) && len(userWords) <= 8 {
			return true
		}
		if dateLikeRe.MatchString(lastUser) {
			return true
		}
		for _, w := range userWords {
			for _, m := range monthAbbreviations {
				if w == m {
					return true
				}
			}
		}
	}

	return false
}

func inPersonalConversation(recentText, lastAssistant string) bool {
	for _, word := range personalContinuationWords {
		if strings.Contains(recentText, word) {
			return true
		}
	}

	if strings.Contains(lastAssistant, "?") {
		for _, word := range identityQuestionWords {
			if strings.Contains(lastAssistant, word) {
				return true
			}
		}
	}

	return false
}

// recentWindow returns the last n messages in order.
func recentWindow(history []model.Message, n int) []model.Message {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
