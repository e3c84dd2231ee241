package flightquery_test

import (
	"testing"
	"time"

	"flight-concierge/internal/flightquery"
	"flight-concierge/pkg/datemath"
)

// newExtractor pins "today" to Wednesday 2025-10-15 UTC.
func newExtractor(t *testing.T) *flightquery.Extractor {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected parser error: %v", err)
	}
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	return flightquery.New(parser).WithClock(func() time.Time { return now })
}

func TestExtract(t *testing.T) {
	e := newExtractor(t)

	t.Run("IATA Codes With ISO Dates", func(t *testing.T) {
		p := e.Extract("Find flights from PEK to AUS on 2025-10-18 returning 2025-10-24")
		if p == nil {
			t.Fatal("expected a complete query")
		}
		if p.DepartureID != "PEK" || p.ArrivalID != "AUS" {
			t.Errorf("unexpected route: %s -> %s", p.DepartureID, p.ArrivalID)
		}
		if p.OutboundDate != "2025-10-18" {
			t.Errorf("unexpected outbound date: %s", p.OutboundDate)
		}
		if p.ReturnDate != "2025-10-24" {
			t.Errorf("unexpected return date: %s", p.ReturnDate)
		}
	})

	t.Run("First Two IATA Tokens In Order", func(t *testing.T) {
		p := e.Extract("SFO LHR JFK tomorrow")
		if p == nil {
			t.Fatal("expected a complete query")
		}
		if p.DepartureID != "SFO" || p.ArrivalID != "LHR" {
			t.Errorf("expected first two tokens in order, got %s -> %s", p.DepartureID, p.ArrivalID)
		}
		if p.OutboundDate != "2025-10-16" {
			t.Errorf("expected tomorrow resolved, got %s", p.OutboundDate)
		}
	})

	t.Run("Currency Token Is Not An Airport", func(t *testing.T) {
		p := e.Extract("USD fares please, PEK to AUS on Oct 18")
		if p == nil {
			t.Fatal("expected a complete query")
		}
		if p.DepartureID != "PEK" || p.ArrivalID != "AUS" {
			t.Errorf("currency leaked into route: %s -> %s", p.DepartureID, p.ArrivalID)
		}
		if p.Currency != "USD" {
			t.Errorf("expected USD currency, got %q", p.Currency)
		}
	})

	t.Run("From City To City Lookup", func(t *testing.T) {
		p := e.Extract("I want to fly from new york to london on October 18th")
		if p == nil {
			t.Fatal("expected a complete query")
		}
		if p.DepartureID != "JFK" || p.ArrivalID != "LHR" {
			t.Errorf("unexpected route: %s -> %s", p.DepartureID, p.ArrivalID)
		}
		if p.OutboundDate != "2025-10-18" {
			t.Errorf("unexpected outbound date: %s", p.OutboundDate)
		}
	})

	t.Run("City Scan In Appearance Order", func(t *testing.T) {
		p := e.Extract("mumbai dubai next week sounds good")
		if p == nil {
			t.Fatal("expected a complete query")
		}
		if p.DepartureID != "BOM" || p.ArrivalID != "DXB" {
			t.Errorf("unexpected route: %s -> %s", p.DepartureID, p.ArrivalID)
		}
		if p.OutboundDate != "2025-10-22" {
			t.Errorf("unexpected outbound date: %s", p.OutboundDate)
		}
	})

	t.Run("Partial City Name Containment", func(t *testing.T) {
		p := e.Extract("from angeles to paris on 10/18/2025")
		if p == nil {
			t.Fatal("expected a complete query")
		}
		if p.DepartureID != "LAX" || p.ArrivalID != "CDG" {
			t.Errorf("unexpected route: %s -> %s", p.DepartureID, p.ArrivalID)
		}
	})

	t.Run("Month Day Rolls To Next Year", func(t *testing.T) {
		// March 5 has already passed relative to Oct 15, 2025.
		p := e.Extract("PEK to AUS on March 5")
		if p == nil {
			t.Fatal("expected a complete query")
		}
		if p.OutboundDate != "2026-03-05" {
			t.Errorf("expected rollover to 2026, got %s", p.OutboundDate)
		}
	})

	t.Run("Missing Date Returns Nil", func(t *testing.T) {
		if p := e.Extract("flights from PEK to AUS"); p != nil {
			t.Errorf("expected nil without a resolvable date, got %+v", p)
		}
	})

	t.Run("Missing Route Returns Nil", func(t *testing.T) {
		if p := e.Extract("find me a flight tomorrow"); p != nil {
			t.Errorf("expected nil without airports, got %+v", p)
		}
	})
}

func TestExtractPartial(t *testing.T) {
	e := newExtractor(t)

	t.Run("Destination Only", func(t *testing.T) {
		p := e.ExtractPartial("I want to go to paris")
		if p.ArrivalID != "CDG" {
			t.Errorf("expected CDG arrival, got %q", p.ArrivalID)
		}
		if p.DepartureID != "" {
			t.Errorf("expected empty departure, got %q", p.DepartureID)
		}
	})

	t.Run("Date Only Reply", func(t *testing.T) {
		p := e.ExtractPartial("Oct 18")
		if p.OutboundDate != "2025-10-18" {
			t.Errorf("expected 2025-10-18, got %q", p.OutboundDate)
		}
	})

	t.Run("Return Keyword Claims Its Date", func(t *testing.T) {
		p := e.ExtractPartial("leaving on Oct 18 and coming back on Oct 24")
		if p.OutboundDate != "2025-10-18" {
			t.Errorf("unexpected outbound: %q", p.OutboundDate)
		}
		if p.ReturnDate != "2025-10-24" {
			t.Errorf("unexpected return: %q", p.ReturnDate)
		}
	})

	t.Run("Return Word Without Date Is Ignored", func(t *testing.T) {
		p := e.ExtractPartial("book a return flight from PEK to AUS on Oct 18")
		if p.OutboundDate != "2025-10-18" {
			t.Errorf("unexpected outbound: %q", p.OutboundDate)
		}
		if p.ReturnDate != "" {
			t.Errorf("expected no return date, got %q", p.ReturnDate)
		}
	})
}

func TestNormalizeDate(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  string
		ok    bool
	}{
		{"ISO Passthrough", "2025-10-18", "2025-10-18", true},
		{"Slash US Order", "10/18/2025", "2025-10-18", true},
		{"Slash Day First When Over Twelve", "18/10/2025", "2025-10-18", true},
		{"Dash Short Year", "10-18-25", "2025-10-18", true},
		{"Short Ambiguous First Part Is Day", "05-10", "2025-10-05", true},
		{"Short Day Over Twelve", "18/10", "2025-10-18", true},
		{"Past Date Rolls Forward", "2025-01-05", "2026-01-05", true},
		{"Stale Date Rolls Past Today", "2023-05-01", "2026-05-01", true},
		{"Invalid Day", "2025-02-30", "", false},
		{"Not A Date", "hello", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := flightquery.NormalizeDate(tt.token, now)
			if ok != tt.ok {
				t.Fatalf("NormalizeDate(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}

	t.Run("Idempotent On Normalized Output", func(t *testing.T) {
		for _, token := range []string{"2025-10-18", "10/18/2025", "2025-01-05", "2023-05-01"} {
			once, ok := flightquery.NormalizeDate(token, now)
			if !ok {
				t.Fatalf("unexpected failure for %q", token)
			}
			twice, ok := flightquery.NormalizeDate(once, now)
			if !ok || twice != once {
				t.Errorf("NormalizeDate not idempotent: %q -> %q -> %q", token, once, twice)
			}
		}
	})
}
