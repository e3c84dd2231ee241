package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"flight-concierge/internal/agent"
	"flight-concierge/internal/chat"
	"flight-concierge/internal/chat/repository"
	"flight-concierge/internal/flightquery"
	"flight-concierge/internal/model"
	"flight-concierge/internal/router"
	"flight-concierge/pkg/datemath"
	"flight-concierge/pkg/flightsearch"
)

func flightDecision() router.Decision {
	return router.Decision{Agent: router.AgentFlight, FlightScore: 0.8, PersonalScore: 0.1, Threshold: 0.25}
}

func newUseCase(repo repository.Repository, rt router.Router, flight, personal agent.Assistant, gen *mockGemini) *implUseCase {
	if gen == nil {
		gen = &mockGemini{}
	}
	return New(repo, rt, flight, personal, gen, Config{}, &mockLogger{})
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: testUserID}

	t.Run("Empty Content Is Rejected", func(t *testing.T) {
		uc := newUseCase(&mockRepository{}, &mockRouter{}, &mockAssistant{}, &mockAssistant{}, nil)

		_, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{SessionID: testSessionID, Content: "   "})
		if !errors.Is(err, chat.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("Foreign Session Is Forbidden", func(t *testing.T) {
		uc := newUseCase(&mockRepository{}, &mockRouter{}, &mockAssistant{}, &mockAssistant{}, nil)

		_, err := uc.SendMessage(ctx, model.Scope{UserID: "someone-else"}, chat.SendMessageInput{
			SessionID: testSessionID, Content: "hello",
		})
		if !errors.Is(err, chat.ErrSessionForbidden) {
			t.Errorf("expected ErrSessionForbidden, got %v", err)
		}
	})

	t.Run("Unknown Session Is Not Found", func(t *testing.T) {
		repo := &mockRepository{
			getSessionFunc: func(_ context.Context, _ string) (model.Session, error) {
				return model.Session{}, repository.ErrNotFound
			},
		}
		uc := newUseCase(repo, &mockRouter{}, &mockAssistant{}, &mockAssistant{}, nil)

		_, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{SessionID: "nope", Content: "hello"})
		if !errors.Is(err, chat.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("History Appends User Then Assistant", func(t *testing.T) {
		var appended []repository.AppendMessageOptions
		repo := &mockRepository{
			appendMessageFunc: func(_ context.Context, opt repository.AppendMessageOptions) (model.Message, error) {
				appended = append(appended, opt)
				return model.Message{}, nil
			},
		}
		rt := &mockRouter{decideFunc: func(_ context.Context, _ string, _ []model.Message) router.Decision {
			return flightDecision()
		}}
		flight := &mockAssistant{handleFunc: func(_ context.Context, _ string, _ model.ConversationContext, _ []model.Message) agent.Reply {
			return agent.Reply{Text: "Here are your flights.", Intent: agent.IntentFlightSearch}
		}}
		uc := newUseCase(repo, rt, flight, &mockAssistant{}, nil)

		out, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{SessionID: testSessionID, Content: "PEK to AUS tomorrow"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(appended) != 2 {
			t.Fatalf("expected two appended messages, got %d", len(appended))
		}
		if appended[0].Role != model.RoleUser || appended[0].Content != "PEK to AUS tomorrow" {
			t.Errorf("first append must be the user message, got %+v", appended[0])
		}
		if appended[1].Role != model.RoleAssistant || appended[1].Content != "Here are your flights." {
			t.Errorf("second append must be the assistant reply, got %+v", appended[1])
		}
		if out.Agent != string(router.AgentFlight) || out.Intent != string(agent.IntentFlightSearch) {
			t.Errorf("envelope labels wrong: %+v", out)
		}
		if out.FlightScore != 0.8 || out.Threshold != 0.25 {
			t.Errorf("confidence metadata lost: %+v", out)
		}
	})

	t.Run("Context Updates Are Merged And Cache Invalidated", func(t *testing.T) {
		loads := 0
		var merged model.ConversationContext
		repo := &mockRepository{
			loadContextFunc: func(_ context.Context, _ string) (model.ConversationContext, error) {
				loads++
				return model.ConversationContext{}, nil
			},
			mergeContextFunc: func(_ context.Context, _ string, updates model.ConversationContext) error {
				merged = updates
				return nil
			},
		}
		rt := &mockRouter{decideFunc: func(_ context.Context, _ string, _ []model.Message) router.Decision {
			return flightDecision()
		}}
		flight := &mockAssistant{handleFunc: func(_ context.Context, _ string, _ model.ConversationContext, _ []model.Message) agent.Reply {
			return agent.Reply{
				Text:           "Where from?",
				Intent:         agent.IntentFlightSearch,
				ContextUpdates: model.ConversationContext{flightquery.CtxKeyArrivalID: "CDG"},
			}
		}}
		uc := newUseCase(repo, rt, flight, &mockAssistant{}, nil)
		input := chat.SendMessageInput{SessionID: testSessionID, Content: "fly to Paris"}

		if _, err := uc.SendMessage(ctx, sc, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if merged[flightquery.CtxKeyArrivalID] != "CDG" {
			t.Errorf("context updates not merged: %v", merged)
		}

		// The merge invalidated the cache, so the next turn reloads.
		if _, err := uc.SendMessage(ctx, sc, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loads != 2 {
			t.Errorf("expected a reload after invalidation, got %d loads", loads)
		}
	})

	t.Run("Unchanged Context Is Served From Cache", func(t *testing.T) {
		loads := 0
		repo := &mockRepository{
			loadContextFunc: func(_ context.Context, _ string) (model.ConversationContext, error) {
				loads++
				return model.ConversationContext{}, nil
			},
		}
		uc := newUseCase(repo, &mockRouter{}, &mockAssistant{}, &mockAssistant{}, nil)
		input := chat.SendMessageInput{SessionID: testSessionID, Content: "hello"}

		for i := 0; i < 3; i++ {
			if _, err := uc.SendMessage(ctx, sc, input); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if loads != 1 {
			t.Errorf("expected one store read across cached turns, got %d", loads)
		}
	})

	t.Run("Clarify Decision Skips Both Assistants", func(t *testing.T) {
		rt := &mockRouter{decideFunc: func(_ context.Context, _ string, _ []model.Message) router.Decision {
			return router.Decision{Agent: router.AgentClarify}
		}}
		failing := &mockAssistant{handleFunc: func(_ context.Context, _ string, _ model.ConversationContext, _ []model.Message) agent.Reply {
			t.Error("no assistant may run on a clarify decision")
			return agent.Reply{}
		}}
		uc := newUseCase(&mockRepository{}, rt, failing, failing, nil)

		out, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{
			SessionID: testSessionID,
			Content:   "Mumbai to Dubai, also Delhi to London, also Bangalore to Singapore",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != agent.MsgMultiRouteClarification {
			t.Errorf("expected the disambiguation prompt, got %q", out.Response)
		}
		if !out.RequiresMoreInfo {
			t.Error("a clarify turn must request more info")
		}
	})

	t.Run("Missing Field Clarification Names Only The Missing Fields", func(t *testing.T) {
		// Real flight assistant wired in; only the search and generation
		// collaborators are mocked.
		parser, err := datemath.NewParser("UTC")
		if err != nil {
			t.Fatalf("failed to create parser: %v", err)
		}
		extractor := flightquery.New(parser).WithClock(func() time.Time {
			return time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
		})
		flight := agent.NewFlightAssistant(&mockLogger{}, extractor, failingSearch{}, &mockGemini{})

		repo := &mockRepository{
			loadContextFunc: func(_ context.Context, _ string) (model.ConversationContext, error) {
				return model.ConversationContext{
					flightquery.CtxKeyDepartureID: "PEK",
					flightquery.CtxKeyArrivalID:   "AUS",
				}, nil
			},
		}
		rt := &mockRouter{decideFunc: func(_ context.Context, _ string, _ []model.Message) router.Decision {
			return flightDecision()
		}}
		uc := newUseCase(repo, rt, flight, &mockAssistant{}, nil)

		out, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{SessionID: testSessionID, Content: "that works for me"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Response, flightquery.FieldDepartureDate) {
			t.Errorf("expected the departure date to be requested, got %q", out.Response)
		}
		if strings.Contains(out.Response, flightquery.FieldDepartureCity) ||
			strings.Contains(out.Response, flightquery.FieldArrivalCity) {
			t.Errorf("resolved fields must not be requested, got %q", out.Response)
		}
		if !out.RequiresMoreInfo {
			t.Error("an incomplete query must request more info")
		}
	})

	t.Run("Title Is Set From The Opening Message", func(t *testing.T) {
		var updated repository.UpdateSessionOptions
		repo := &mockRepository{
			getSessionFunc: func(_ context.Context, id string) (model.Session, error) {
				s := testSession()
				s.ID = id
				s.Title = DefaultSessionTitle
				s.MessageCount = 0
				return s, nil
			},
			updateSessionFunc: func(_ context.Context, opt repository.UpdateSessionOptions) (model.Session, error) {
				updated = opt
				return testSession(), nil
			},
		}
		uc := newUseCase(repo, &mockRouter{}, &mockAssistant{}, &mockAssistant{}, nil)

		if _, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{SessionID: testSessionID, Content: "Hello there, assistant"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Title != "Hello there, assistant" {
			t.Errorf("expected the opening message as title, got %q", updated.Title)
		}
		if updated.IncMessageCount != 2 {
			t.Errorf("each turn adds two messages, got %d", updated.IncMessageCount)
		}
	})

	t.Run("Title Is Regenerated Every Sixth Message", func(t *testing.T) {
		var updated repository.UpdateSessionOptions
		repo := &mockRepository{
			getSessionFunc: func(_ context.Context, id string) (model.Session, error) {
				s := testSession()
				s.ID = id
				s.MessageCount = 4
				return s, nil
			},
			updateSessionFunc: func(_ context.Context, opt repository.UpdateSessionOptions) (model.Session, error) {
				updated = opt
				return testSession(), nil
			},
		}
		gen := &mockGemini{generateFunc: func(_ context.Context, _ string) (string, error) {
			return "Weekend in Paris", nil
		}}
		uc := newUseCase(repo, &mockRouter{}, &mockAssistant{}, &mockAssistant{}, gen)

		if _, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{SessionID: testSessionID, Content: "and a hotel too"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Title != "Weekend in Paris" {
			t.Errorf("expected the generated title, got %q", updated.Title)
		}
	})

	t.Run("Title Generation Failure Falls Back To Truncation", func(t *testing.T) {
		var updated repository.UpdateSessionOptions
		repo := &mockRepository{
			getSessionFunc: func(_ context.Context, id string) (model.Session, error) {
				s := testSession()
				s.ID = id
				s.MessageCount = 4
				return s, nil
			},
			updateSessionFunc: func(_ context.Context, opt repository.UpdateSessionOptions) (model.Session, error) {
				updated = opt
				return testSession(), nil
			},
		}
		gen := &mockGemini{generateFunc: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("quota exceeded")
		}}
		uc := newUseCase(repo, &mockRouter{}, &mockAssistant{}, &mockAssistant{}, gen)

		long := strings.Repeat("checking on my booking please ", 4)
		if _, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{SessionID: testSessionID, Content: long}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Title == "" {
			t.Fatal("expected a fallback title")
		}
		if !strings.HasSuffix(updated.Title, "...") {
			t.Errorf("expected a truncated title, got %q", updated.Title)
		}
	})
}

// failingSearch always errors; used to prove search is never reached for
// incomplete queries.
type failingSearch struct{}

func (failingSearch) Search(_ context.Context, _ flightsearch.SearchRequest) ([]flightsearch.FlightOption, error) {
	return nil, errors.New("search must not be called")
}

func TestTruncateTitle(t *testing.T) {
	if got := truncateTitle("short title"); got != "short title" {
		t.Errorf("short titles must pass through, got %q", got)
	}

	long := strings.Repeat("word ", 20)
	got := truncateTitle(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long titles must be truncated, got %q", got)
	}
	if len([]rune(got)) > titleMaxLen+3 {
		t.Errorf("truncated title too long: %q", got)
	}
}
