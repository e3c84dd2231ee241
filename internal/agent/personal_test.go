package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"flight-concierge/internal/model"
)

func TestPersonalAssistant_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("Name Statement Is Remembered", func(t *testing.T) {
		gen := &mockGemini{
			generateFunc: func(_ context.Context, _ string) (string, error) {
				return "Nice to meet you, Priya!", nil
			},
		}
		a := NewPersonalAssistant(&mockLogger{}, gen)

		reply := a.Handle(ctx, "Hi, my name is Priya", model.ConversationContext{}, nil)

		if reply.ContextUpdates[CtxKeyName] != "Priya" {
			t.Errorf("expected name fact extracted, got %v", reply.ContextUpdates)
		}
		if reply.Text != "Nice to meet you, Priya!" {
			t.Errorf("unexpected reply: %q", reply.Text)
		}
		if reply.Intent != IntentGeneral {
			t.Errorf("unexpected intent: %s", reply.Intent)
		}
	})

	t.Run("Compound Statement Yields Multiple Facts", func(t *testing.T) {
		a := NewPersonalAssistant(&mockLogger{}, &mockGemini{
			generateFunc: func(_ context.Context, _ string) (string, error) { return "Got it!", nil },
		})

		reply := a.Handle(ctx, "I live in New York and I work as a nurse", model.ConversationContext{}, nil)

		if reply.ContextUpdates[CtxKeyLocation] != "New York" {
			t.Errorf("expected location fact, got %v", reply.ContextUpdates)
		}
		if reply.ContextUpdates[CtxKeyOccupation] != "nurse" {
			t.Errorf("expected occupation fact, got %v", reply.ContextUpdates)
		}
	})

	t.Run("Name Recall Answers From Context", func(t *testing.T) {
		a := NewPersonalAssistant(&mockLogger{}, &mockGemini{
			generateFunc: func(_ context.Context, _ string) (string, error) {
				t.Error("recall questions must not reach the generative service")
				return "", nil
			},
		})
		convCtx := model.ConversationContext{CtxKeyName: "Priya"}

		reply := a.Handle(ctx, "What's my name?", convCtx, nil)

		if !strings.Contains(reply.Text, "Priya") {
			t.Errorf("expected the stored name in the answer, got %q", reply.Text)
		}
	})

	t.Run("Recall Without A Stored Fact Asks For It", func(t *testing.T) {
		a := NewPersonalAssistant(&mockLogger{}, &mockGemini{})

		reply := a.Handle(ctx, "what is my name", model.ConversationContext{}, nil)

		if !strings.Contains(reply.Text, "told me your name") {
			t.Errorf("expected a gentle prompt for the name, got %q", reply.Text)
		}
	})

	t.Run("Recall In The Same Turn As The Statement", func(t *testing.T) {
		a := NewPersonalAssistant(&mockLogger{}, &mockGemini{})

		reply := a.Handle(ctx, "Call me Sam. Who am I?", model.ConversationContext{}, nil)

		if !strings.Contains(reply.Text, "Sam") {
			t.Errorf("a fact stated in the same message must be usable, got %q", reply.Text)
		}
	})

	t.Run("Generation Failure Falls Back To Canned Text", func(t *testing.T) {
		gen := &mockGemini{
			generateFunc: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("timeout")
			},
		}
		a := NewPersonalAssistant(&mockLogger{}, gen)

		reply := a.Handle(ctx, "Tell me a joke", model.ConversationContext{}, nil)

		if reply.Text != MsgGenerateFailure {
			t.Errorf("expected the canned fallback, got %q", reply.Text)
		}
	})

	t.Run("Generation Failure After A Fact Still Acknowledges It", func(t *testing.T) {
		gen := &mockGemini{
			generateFunc: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("timeout")
			},
		}
		a := NewPersonalAssistant(&mockLogger{}, gen)

		reply := a.Handle(ctx, "my name is Ada", model.ConversationContext{}, nil)

		if reply.Text != MsgFactAcknowledged {
			t.Errorf("expected the acknowledgment fallback, got %q", reply.Text)
		}
		if reply.ContextUpdates[CtxKeyName] != "Ada" {
			t.Errorf("the fact must be kept even when generation fails, got %v", reply.ContextUpdates)
		}
	})

	t.Run("Known Facts Reach The Prompt", func(t *testing.T) {
		var gotPrompt string
		gen := &mockGemini{
			generateFunc: func(_ context.Context, prompt string) (string, error) {
				gotPrompt = prompt
				return "Hello Priya!", nil
			},
		}
		a := NewPersonalAssistant(&mockLogger{}, gen)
		convCtx := model.ConversationContext{CtxKeyName: "Priya", CtxKeyLocation: "Austin"}

		a.Handle(ctx, "Good morning!", convCtx, []model.Message{
			{Role: model.RoleUser, Content: "hello"},
			{Role: model.RoleAssistant, Content: "Hi there!"},
		})

		if !strings.Contains(gotPrompt, "Priya") || !strings.Contains(gotPrompt, "Austin") {
			t.Errorf("stored facts must be in the prompt, got %q", gotPrompt)
		}
		if !strings.Contains(gotPrompt, "Hi there!") {
			t.Errorf("recent history must be in the prompt, got %q", gotPrompt)
		}
	})
}
