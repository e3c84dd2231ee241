package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"flight-concierge/internal/flightquery"
	"flight-concierge/internal/model"
	"flight-concierge/pkg/datemath"
	"flight-concierge/pkg/flightsearch"
)

func newTestExtractor(t *testing.T) *flightquery.Extractor {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	return flightquery.New(parser).WithClock(func() time.Time {
		return time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	})
}

func TestFlightAssistant_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("Incomplete Query Asks For Missing Fields", func(t *testing.T) {
		a := NewFlightAssistant(&mockLogger{}, newTestExtractor(t), &mockSearch{}, &mockGemini{})

		reply := a.Handle(ctx, "I want to fly to Paris", model.ConversationContext{}, nil)

		if !reply.RequiresMoreInfo {
			t.Error("expected RequiresMoreInfo for an incomplete query")
		}
		if !strings.Contains(reply.Text, flightquery.FieldDepartureCity) {
			t.Errorf("clarification should ask for the departure city, got %q", reply.Text)
		}
		if !strings.Contains(reply.Text, flightquery.FieldDepartureDate) {
			t.Errorf("clarification should ask for the departure date, got %q", reply.Text)
		}
		if strings.Contains(reply.Text, flightquery.FieldArrivalCity) {
			t.Errorf("arrival is already known and must not be asked for, got %q", reply.Text)
		}
		if reply.ContextUpdates[flightquery.CtxKeyArrivalID] != "CDG" {
			t.Errorf("expected Paris resolved to CDG in context updates, got %v", reply.ContextUpdates)
		}
	})

	t.Run("Only The Missing Date Is Requested", func(t *testing.T) {
		a := NewFlightAssistant(&mockLogger{}, newTestExtractor(t), &mockSearch{}, &mockGemini{})
		convCtx := model.ConversationContext{
			flightquery.CtxKeyDepartureID: "PEK",
			flightquery.CtxKeyArrivalID:   "AUS",
		}

		reply := a.Handle(ctx, "sounds good, please book it", convCtx, nil)

		if !strings.Contains(reply.Text, flightquery.FieldDepartureDate) {
			t.Errorf("expected a question about the departure date, got %q", reply.Text)
		}
		if strings.Contains(reply.Text, flightquery.FieldDepartureCity) ||
			strings.Contains(reply.Text, flightquery.FieldArrivalCity) {
			t.Errorf("known fields must not be asked for again, got %q", reply.Text)
		}
	})

	t.Run("Complete Query Runs The Search", func(t *testing.T) {
		var gotReq flightsearch.SearchRequest
		search := &mockSearch{
			searchFunc: func(_ context.Context, req flightsearch.SearchRequest) ([]flightsearch.FlightOption, error) {
				gotReq = req
				return []flightsearch.FlightOption{
					{
						Airline:      "Delta",
						FlightNumber: "DL 123",
						Price:        flightsearch.Price{Amount: 540, Currency: "USD"},
					},
				}, nil
			},
		}
		gen := &mockGemini{
			generateFunc: func(_ context.Context, _ string) (string, error) {
				return "I found one great option on Delta.", nil
			},
		}
		a := NewFlightAssistant(&mockLogger{}, newTestExtractor(t), search, gen)

		reply := a.Handle(ctx, "Find flights from PEK to AUS on 2025-10-18", model.ConversationContext{}, nil)

		if gotReq.DepartureID != "PEK" || gotReq.ArrivalID != "AUS" {
			t.Errorf("unexpected route searched: %+v", gotReq)
		}
		if gotReq.OutboundDate != "2025-10-18" {
			t.Errorf("unexpected outbound date: %s", gotReq.OutboundDate)
		}
		if gotReq.Currency != DefaultCurrency {
			t.Errorf("expected default currency %s, got %s", DefaultCurrency, gotReq.Currency)
		}
		if reply.Text != "I found one great option on Delta." {
			t.Errorf("unexpected reply text: %q", reply.Text)
		}
		if len(reply.Flights) != 1 {
			t.Errorf("expected structured results, got %d", len(reply.Flights))
		}
		if reply.RequiresMoreInfo {
			t.Error("a successful search must not request more info")
		}
	})

	t.Run("Search Failure Becomes An Apology", func(t *testing.T) {
		search := &mockSearch{
			searchFunc: func(_ context.Context, _ flightsearch.SearchRequest) ([]flightsearch.FlightOption, error) {
				return nil, errors.New("connection refused")
			},
		}
		a := NewFlightAssistant(&mockLogger{}, newTestExtractor(t), search, &mockGemini{})

		reply := a.Handle(ctx, "Find flights from PEK to AUS on 2025-10-18", model.ConversationContext{}, nil)

		if reply.Text != MsgSearchFailure {
			t.Errorf("expected the search apology, got %q", reply.Text)
		}
		if !reply.RequiresMoreInfo {
			t.Error("a failed turn must be marked as requiring more info")
		}
		if len(reply.Flights) != 0 {
			t.Error("no structured results may be attached on failure")
		}
	})

	t.Run("Summary Falls Back To A Plain Rendering", func(t *testing.T) {
		search := &mockSearch{
			searchFunc: func(_ context.Context, _ flightsearch.SearchRequest) ([]flightsearch.FlightOption, error) {
				return []flightsearch.FlightOption{
					{Airline: "Delta", FlightNumber: "DL 123", DurationMinutes: 150,
						Price: flightsearch.Price{Amount: 540, Currency: "USD"}},
				}, nil
			},
		}
		gen := &mockGemini{
			generateFunc: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}
		a := NewFlightAssistant(&mockLogger{}, newTestExtractor(t), search, gen)

		reply := a.Handle(ctx, "Find flights from PEK to AUS on 2025-10-18", model.ConversationContext{}, nil)

		if !strings.Contains(reply.Text, "Delta") {
			t.Errorf("fallback rendering must list the flights, got %q", reply.Text)
		}
		if len(reply.Flights) != 1 {
			t.Error("structured results must survive a summary failure")
		}
	})

	t.Run("Empty Results Suggest Alternatives", func(t *testing.T) {
		a := NewFlightAssistant(&mockLogger{}, newTestExtractor(t), &mockSearch{}, &mockGemini{})

		reply := a.Handle(ctx, "Find flights from PEK to AUS on 2025-10-18", model.ConversationContext{}, nil)

		if !strings.Contains(reply.Text, "couldn't find any flights") {
			t.Errorf("expected a no-results message, got %q", reply.Text)
		}
	})

	t.Run("Context From Earlier Turns Completes The Query", func(t *testing.T) {
		called := false
		search := &mockSearch{
			searchFunc: func(_ context.Context, req flightsearch.SearchRequest) ([]flightsearch.FlightOption, error) {
				called = true
				if req.DepartureID != "BOM" || req.ArrivalID != "DXB" {
					t.Errorf("context route lost: %+v", req)
				}
				return nil, nil
			},
		}
		a := NewFlightAssistant(&mockLogger{}, newTestExtractor(t), search, &mockGemini{})
		convCtx := model.ConversationContext{
			flightquery.CtxKeyDepartureID: "BOM",
			flightquery.CtxKeyArrivalID:   "DXB",
		}

		a.Handle(ctx, "Oct 18", convCtx, nil)

		if !called {
			t.Error("a date reply plus stored route must reach the search service")
		}
	})
}

func TestHumanJoin(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a and b"},
		{[]string{"a", "b", "c"}, "a, b and c"},
	}
	for _, tc := range cases {
		if got := humanJoin(tc.in); got != tc.want {
			t.Errorf("humanJoin(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
