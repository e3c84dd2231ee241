package router

// Log prefixes
const (
	LogPrefixDecide = "internal.router.Decide"
)

// Decision thresholds. These are the sole tuning surface for routing
// behavior; adjust here, not at call sites.
const (
	// ThresholdBase applies when the two scores are moderately separated.
	ThresholdBase = 0.3
	// ThresholdStrict applies when the scores are nearly tied.
	ThresholdStrict = 0.5
	// ThresholdLenient applies when one score clearly dominates.
	ThresholdLenient = 0.25

	// Score-gap boundaries selecting among the three thresholds.
	ScoreGapNarrow = 0.1
	ScoreGapWide   = 0.3

	// Conversation-state floors. A floor raises a score to at least this
	// value; it never lowers an already-higher score.
	FlightConversationFloor   = 0.7
	PersonalConversationFloor = 0.6

	// RecentTurnWindow is how many trailing turns the state tracker reads.
	RecentTurnWindow = 6
)

// Flight score weights. Each keyword group contributes its weight at most
// once regardless of repeated hits.
const (
	weightFlightWords        = 0.35
	weightAirportWords       = 0.20
	weightBookingWords       = 0.25
	weightAirlineWords       = 0.20
	weightTripTypeWords      = 0.20
	weightTravelWords        = 0.15
	weightDestinationPhrases = 0.25
)

// Flight score context multipliers and adjustments.
const (
	multCityMention        = 1.3
	multDateToken          = 1.2
	multTravelIntentPhrase = 1.4
	multQuestion           = 1.1
	multUrgency            = 1.2

	penaltyCompetingTransport = 0.7
	bonusActionVerb           = 0.1
)

// Personal score weights and adjustments.
const (
	weightGreetings         = 0.40
	weightPersonalStatement = 0.45
	weightPersonalQuestion  = 0.50
	weightAssistantIdentity = 0.40

	bonusShortMessage     = 0.3
	shortMessageMaxWords  = 3
	bonusPersonalQuestion = 0.2

	penaltyFlightPresence = 0.8
)

// Multi-route guard limits.
const (
	// multiRouteHardLimit routes always trigger clarification.
	multiRouteHardLimit = 3
	// multiRouteSoftLimit routes trigger clarification only together with
	// multi-query language ("also", "first... second...").
	multiRouteSoftLimit = 2
)

// --- flight keyword groups ---

var flightWords = []string{"flight", "flights", "fly", "flying", "airfare", "fare", "fares"}

var airportWords = []string{"airport", "departure", "arrival", "layover", "terminal", "gate", "takeoff", "landing"}

var bookingWords = []string{"book", "booking", "reserve", "reservation", "ticket", "tickets", "itinerary"}

var airlineWords = []string{
	"airline", "airlines", "airways", "emirates", "lufthansa", "united", "delta",
	"qatar", "ryanair", "easyjet", "indigo", "vistara", "klm",
}

var tripTypeWords = []string{"one way", "one-way", "round trip", "round-trip", "nonstop", "non-stop", "direct flight", "red eye", "red-eye"}

var travelWords = []string{"travel", "trip", "vacation", "holiday", "journey", "abroad", "overseas"}

var destinationPhrases = []string{"want to go to", "get to", "going to", "headed to", "head to", "visit"}

var travelIntentPhrases = []string{"want to go", "planning to", "plan to", "find flights", "find a flight", "looking for flights", "need a flight", "need to get to"}

var urgencyWords = []string{"urgent", "urgently", "asap", "as soon as possible", "immediately", "right away", "last minute"}

var actionVerbs = []string{"show", "find", "search", "look", "check", "available"}

var competingTransportWords = []string{"train", "bus", "car", "drive", "driving", "walk", "walking", "ferry"}

// --- personal keyword groups ---

var greetingWords = []string{
	"hi", "hello", "hey", "good morning", "good afternoon", "good evening",
	"how are you", "what's up", "whats up", "thanks", "thank you", "bye", "goodbye",
}

var personalStatementPhrases = []string{
	"my name is", "i am called", "call me", "i live in", "i work as",
	"i work at", "my job is", "my favorite", "my favourite", "i like", "i love", "i enjoy",
}

var personalQuestionPhrases = []string{
	"what is my name", "what's my name", "whats my name", "who am i",
	"where do i live", "what do i do", "do you remember", "what did i say", "what did i tell you",
}

var assistantIdentityPhrases = []string{
	"who are you", "what are you", "what can you do", "how do you work",
	"help me", "can you help", "what is your name", "what's your name",
}

// --- conversation-state keyword groups ---

var flightContinuationWords = []string{
	"flight", "depart", "departure", "arrival", "return", "outbound",
	"airport", "airline", "one way", "round trip", "layover", "ticket",
}

var flightFollowUpWords = []string{
	"departure", "arrival", "date", "when", "where", "destination", "return",
}

var personalContinuationWords = []string{
	"my name", "i live", "i work", "remember", "about me", "tell me about yourself",
}

var identityQuestionWords = []string{
	"your name", "who i am", "help you", "assist you", "what would you like",
}

var monthAbbreviations = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// Multi-query connective language for the multi-route guard.
var multiQueryWords = []string{
	"also", "as well", "another", "and then", "first", "second", "third", "next one", "one more",
}
