package router_test

import (
	"context"
	"testing"

	"flight-concierge/internal/model"
	"flight-concierge/internal/router"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestDecide(t *testing.T) {
	r := router.New(&mockLogger{})
	ctx := context.Background()

	t.Run("Greeting Routes To Personal", func(t *testing.T) {
		d := r.Decide(ctx, "Hi, how are you?", nil)
		if d.Agent != router.AgentPersonal {
			t.Errorf("expected personal agent, got %s", d.Agent)
		}
		if d.FlightScore > 0.05 {
			t.Errorf("expected near-zero flight score, got %.2f", d.FlightScore)
		}
		if d.PersonalScore <= d.FlightScore {
			t.Errorf("expected personal to dominate: %.2f <= %.2f", d.PersonalScore, d.FlightScore)
		}
	})

	t.Run("Clear Flight Request Routes To Flight", func(t *testing.T) {
		d := r.Decide(ctx, "Find flights from PEK to AUS on 2025-10-18", nil)
		if d.Agent != router.AgentFlight {
			t.Errorf("expected flight agent, got %s (flight=%.2f personal=%.2f threshold=%.2f)",
				d.Agent, d.FlightScore, d.PersonalScore, d.Threshold)
		}
	})

	t.Run("Flight Above Threshold And Above Personal Wins", func(t *testing.T) {
		d := r.Decide(ctx, "book a ticket to paris tomorrow", nil)
		if d.FlightScore >= d.Threshold && d.FlightScore > d.PersonalScore && d.Agent != router.AgentFlight {
			t.Errorf("selection rule violated: %+v", d)
		}
	})

	t.Run("State Floor Recovers Short Reply", func(t *testing.T) {
		history := []model.Message{
			{Role: model.RoleUser, Content: "I need to fly somewhere"},
			{Role: model.RoleAssistant, Content: "What's your departure date?"},
		}
		d := r.Decide(ctx, "Oct 18", history)
		if d.Agent != router.AgentFlight {
			t.Errorf("state floor must route a bare date to the flight agent, got %s", d.Agent)
		}
		if d.FlightScore < router.FlightConversationFloor {
			t.Errorf("expected flight score floored at %.2f, got %.2f",
				router.FlightConversationFloor, d.FlightScore)
		}
	})

	t.Run("Floor Never Lowers A Higher Score", func(t *testing.T) {
		history := []model.Message{
			{Role: model.RoleUser, Content: "I need to fly somewhere"},
			{Role: model.RoleAssistant, Content: "What's your departure date?"},
		}
		d := r.Decide(ctx, "urgent! find flights and book a ticket from new york to london tomorrow asap", history)
		if d.FlightScore < 1.0 {
			t.Errorf("a saturated score must not be lowered by the floor, got %.2f", d.FlightScore)
		}
	})

	t.Run("Multi-Route Guard Bypasses Scoring", func(t *testing.T) {
		d := r.Decide(ctx, "Mumbai to Dubai, also Delhi to London, also Bangalore to Singapore", nil)
		if d.Agent != router.AgentClarify {
			t.Errorf("expected clarification agent, got %s", d.Agent)
		}
		if d.FlightScore != 0 || d.PersonalScore != 0 {
			t.Errorf("guard must bypass the scorer entirely: %+v", d)
		}
	})

	t.Run("Both Low Defaults To Personal", func(t *testing.T) {
		d := r.Decide(ctx, "hmm", nil)
		if d.Agent != router.AgentPersonal {
			t.Errorf("below-threshold scores must fall back to personal, got %s", d.Agent)
		}
	})
}

func TestDynamicThreshold(t *testing.T) {
	r := router.New(&mockLogger{})
	ctx := context.Background()

	t.Run("Near Tie Uses Strict Threshold", func(t *testing.T) {
		// Greetings and flight words together keep the scores close.
		d := r.Decide(ctx, "hello hello flight", nil)
		gap := d.FlightScore - d.PersonalScore
		if gap < 0 {
			gap = -gap
		}
		if gap < router.ScoreGapNarrow && d.Threshold != router.ThresholdStrict {
			t.Errorf("tied scores must use the strict threshold, got %.2f (gap %.2f)", d.Threshold, gap)
		}
	})

	t.Run("Wide Gap Uses Lenient Threshold", func(t *testing.T) {
		d := r.Decide(ctx, "find flights from new york to london tomorrow", nil)
		gap := d.FlightScore - d.PersonalScore
		if gap > router.ScoreGapWide && d.Threshold != router.ThresholdLenient {
			t.Errorf("dominant score must use the lenient threshold, got %.2f (gap %.2f)", d.Threshold, gap)
		}
	})
}
