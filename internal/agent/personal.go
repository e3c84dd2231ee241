package agent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"flight-concierge/internal/model"
	"flight-concierge/pkg/gemini"
	pkgLog "flight-concierge/pkg/log"
)

// Fact patterns. Captures run to the next clause boundary so "I live in New
// York and I work as a nurse" yields two separate facts.
var (
	nameRe       = regexp.MustCompile(`(?i)\b(?:my name is|call me|i am called|i'm called)\s+([a-zA-Z]+)`)
	locationRe   = regexp.MustCompile(`(?i)\bi live in\s+([a-zA-Z][a-zA-Z ]*?)(?:\s+and\b|[,.!?;]|$)`)
	occupationRe = regexp.MustCompile(`(?i)\bi work (?:as an?\s+|as\s+|at\s+)([a-zA-Z][a-zA-Z ]*?)(?:\s+and\b|[,.!?;]|$)`)
)

// PersonalAssistant answers chitchat and remembers personal facts across
// turns. Recall questions are answered from the stored context; everything
// else goes through the generative service with a canned fallback.
type PersonalAssistant struct {
	l   pkgLog.Logger
	gen gemini.IGemini
}

var _ Assistant = (*PersonalAssistant)(nil)

func NewPersonalAssistant(l pkgLog.Logger, gen gemini.IGemini) *PersonalAssistant {
	return &PersonalAssistant{
		l:   l,
		gen: gen,
	}
}

func (a *PersonalAssistant) Handle(ctx context.Context, message string, convCtx model.ConversationContext, recent []model.Message) Reply {
	reply := Reply{
		Intent:         IntentGeneral,
		ContextUpdates: extractFacts(message),
	}

	known := convCtx.Clone()
	for k, v := range reply.ContextUpdates {
		known[k] = v
	}

	if answer, ok := answerRecall(message, known); ok {
		reply.Text = answer
		return reply
	}

	text, err := a.gen.Generate(ctx, buildPersonalPrompt(message, known, recent))
	if err != nil {
		a.l.Warnf(ctx, "%s: generation failed: %v", LogPrefixPersonalHandle, err)
		if len(reply.ContextUpdates) > 0 {
			reply.Text = MsgFactAcknowledged
		} else {
			reply.Text = MsgGenerateFailure
		}
		return reply
	}

	reply.Text = text
	return reply
}

// extractFacts pulls durable personal attributes out of the message.
func extractFacts(message string) model.ConversationContext {
	facts := model.ConversationContext{}
	if m := nameRe.FindStringSubmatch(message); m != nil {
		facts[CtxKeyName] = strings.TrimSpace(m[1])
	}
	if m := locationRe.FindStringSubmatch(message); m != nil {
		facts[CtxKeyLocation] = strings.TrimSpace(m[1])
	}
	if m := occupationRe.FindStringSubmatch(message); m != nil {
		facts[CtxKeyOccupation] = strings.TrimSpace(m[1])
	}
	if len(facts) == 0 {
		return nil
	}
	return facts
}

// answerRecall handles "what's my name" style questions from stored context.
func answerRecall(message string, known model.ConversationContext) (string, bool) {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "what is my name"),
		strings.Contains(lower, "what's my name"),
		strings.Contains(lower, "whats my name"),
		strings.Contains(lower, "who am i"):
		if name := known[CtxKeyName]; name != "" {
			return fmt.Sprintf("Your name is %s!", name), true
		}
		return "I don't think you've told me your name yet. What should I call you?", true

	case strings.Contains(lower, "where do i live"):
		if loc := known[CtxKeyLocation]; loc != "" {
			return fmt.Sprintf("You told me you live in %s.", loc), true
		}
		return "You haven't told me where you live yet.", true

	case strings.Contains(lower, "what do i do"),
		strings.Contains(lower, "what is my job"),
		strings.Contains(lower, "what's my job"):
		if job := known[CtxKeyOccupation]; job != "" {
			return fmt.Sprintf("You mentioned you work as %s.", job), true
		}
		return "You haven't told me what you do for work yet.", true
	}

	return "", false
}

func buildPersonalPrompt(message string, known model.ConversationContext, recent []model.Message) string {
	factsSection := ""
	if facts := renderFacts(known); facts != "" {
		factsSection = fmt.Sprintf(personalKnownFactsHeader, facts)
	}

	var history strings.Builder
	for _, m := range recent {
		fmt.Fprintf(&history, "%s: %s\n", m.Role, m.Content)
	}

	return fmt.Sprintf(personalPrompt, factsSection, history.String(), message)
}

func renderFacts(known model.ConversationContext) string {
	var lines []string
	if v := known[CtxKeyName]; v != "" {
		lines = append(lines, "- name: "+v)
	}
	if v := known[CtxKeyLocation]; v != "" {
		lines = append(lines, "- lives in: "+v)
	}
	if v := known[CtxKeyOccupation]; v != "" {
		lines = append(lines, "- works as: "+v)
	}
	return strings.Join(lines, "\n")
}
