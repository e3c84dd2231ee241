package agent

// Log prefixes
const (
	LogPrefixFlightHandle   = "internal.agent.flight.Handle"
	LogPrefixPersonalHandle = "internal.agent.personal.Handle"
)

// Context keys for remembered personal facts. Flat keys, usable directly
// as document field paths in the context store.
const (
	CtxKeyName       = "personal_name"
	CtxKeyLocation   = "personal_location"
	CtxKeyOccupation = "personal_occupation"
)

// Defaults applied at search time when the user supplied no value.
const (
	DefaultCurrency = "USD"
)

// User-facing messages. Downstream failures never surface as raw errors.
const (
	MsgMultiRouteClarification = "I can see you're asking about several different routes. To give you accurate results, let's take them one at a time - which route would you like me to search first?"

	MsgSearchFailure = "I'm sorry, I couldn't reach the flight search service just now. Could you try that again in a moment?"

	MsgNoFlightsFound = "I couldn't find any flights for %s. Would you like to try different dates or nearby airports?"

	MsgGenerateFailure = "I'm sorry, I'm having a little trouble answering right now. Could you rephrase that?"

	MsgFactAcknowledged = "Got it, I'll remember that."
)

// Prompt templates for the generative service.
const (
	flightSummaryPrompt = `You are a helpful flight booking assistant. Summarize these flight search results for the route %s in a friendly, concise way. Highlight the cheapest and the fastest option. Do not invent flights that are not listed.

%s`

	personalPrompt = `You are a friendly personal assistant. Answer the user's message conversationally and concisely.
%s
Recent conversation:
%s
User: %s`

	personalKnownFactsHeader = "What you know about the user:\n%s"
)
