package agent

import (
	"context"
	"fmt"
	"strings"

	"flight-concierge/internal/flightquery"
	"flight-concierge/internal/model"
	"flight-concierge/pkg/flightsearch"
	"flight-concierge/pkg/gemini"
	pkgLog "flight-concierge/pkg/log"
)

// FlightAssistant resolves flight queries: it extracts parameters from the
// message, merges them with earlier turns, and either asks for what is still
// missing or runs the search and narrates the results.
type FlightAssistant struct {
	l         pkgLog.Logger
	extractor *flightquery.Extractor
	search    flightsearch.ISearch
	gen       gemini.IGemini
}

var _ Assistant = (*FlightAssistant)(nil)

func NewFlightAssistant(l pkgLog.Logger, extractor *flightquery.Extractor, search flightsearch.ISearch, gen gemini.IGemini) *FlightAssistant {
	return &FlightAssistant{
		l:         l,
		extractor: extractor,
		search:    search,
		gen:       gen,
	}
}

func (a *FlightAssistant) Handle(ctx context.Context, message string, convCtx model.ConversationContext, _ []model.Message) Reply {
	partial := a.extractor.ExtractPartial(message)
	merged := flightquery.Merge(flightquery.FromContext(convCtx), partial)

	reply := Reply{
		Intent:         IntentFlightSearch,
		ContextUpdates: model.ConversationContext(merged.ToContext()),
	}

	if !merged.Complete() {
		missing := merged.MissingFields()
		a.l.Infof(ctx, "%s: incomplete query, missing %v", LogPrefixFlightHandle, missing)
		reply.Text = clarifyMissing(missing)
		reply.RequiresMoreInfo = true
		return reply
	}

	req := flightsearch.SearchRequest{
		DepartureID:  merged.DepartureID,
		ArrivalID:    merged.ArrivalID,
		OutboundDate: merged.OutboundDate,
		ReturnDate:   merged.ReturnDate,
		Currency:     merged.Currency,
		LanguageHint: merged.LanguageHint,
	}
	if req.Currency == "" {
		req.Currency = DefaultCurrency
	}

	options, err := a.search.Search(ctx, req)
	if err != nil {
		a.l.Errorf(ctx, "%s: search failed for %s: %v", LogPrefixFlightHandle, merged.Describe(), err)
		reply.Text = MsgSearchFailure
		reply.RequiresMoreInfo = true
		return reply
	}

	if len(options) == 0 {
		reply.Text = fmt.Sprintf(MsgNoFlightsFound, merged.Describe())
		return reply
	}

	reply.Flights = options
	reply.Text = a.narrate(ctx, merged, options)
	return reply
}

// narrate asks the generative service for a friendly summary, falling back
// to a plain rendering when the call fails.
func (a *FlightAssistant) narrate(ctx context.Context, q flightquery.Params, options []flightsearch.FlightOption) string {
	rendered := renderOptions(options)

	text, err := a.gen.Generate(ctx, fmt.Sprintf(flightSummaryPrompt, q.Describe(), rendered))
	if err != nil {
		a.l.Warnf(ctx, "%s: summary generation failed: %v", LogPrefixFlightHandle, err)
		return fmt.Sprintf("Here's what I found for %s:\n%s", q.Describe(), rendered)
	}
	return text
}

func renderOptions(options []flightsearch.FlightOption) string {
	var b strings.Builder
	for i, opt := range options {
		fmt.Fprintf(&b, "%d. %s %s: %s %s -> %s %s, %s, %d stop(s), %.2f %s",
			i+1, opt.Airline, opt.FlightNumber,
			opt.DepartureAirport.ID, opt.DepartureAirport.Time,
			opt.ArrivalAirport.ID, opt.ArrivalAirport.Time,
			formatDuration(opt.DurationMinutes), opt.Stops,
			opt.Price.Amount, opt.Price.Currency)
		if opt.BookingLink != "" {
			fmt.Fprintf(&b, " - %s", opt.BookingLink)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

// clarifyMissing asks for exactly the required fields that are still
// unresolved, nothing more.
func clarifyMissing(missing []string) string {
	return fmt.Sprintf("I'd be happy to help with that! Could you tell me your %s?", humanJoin(missing))
}

func humanJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
