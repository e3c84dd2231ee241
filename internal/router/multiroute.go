package router

import (
	"regexp"
	"strings"
)

// routePhraseRe matches one "X to Y" route mention. Single-word captures
// keep route keys stable for dedup; multi-word city names still count,
// keyed by their final word.
var routePhraseRe = regexp.MustCompile(`(?i)\b(?:from\s+)?([a-z]{2,})\s+to\s+([a-z]{2,})\b`)

// Words that make a "to" phrase a verb construct ("want to go") rather
// than a place-to-place route.
var routeStopWords = map[string]bool{
	"i": true, "we": true, "me": true, "you": true, "it": true, "them": true, "us": true,
	"want": true, "need": true, "like": true, "have": true, "going": true, "go": true,
	"get": true, "fly": true, "flying": true, "travel": true, "trying": true,
	"how": true, "what": true, "able": true, "ready": true, "time": true, "back": true,
	"ticket": true, "tickets": true, "flights": true, "flight": true,
}

// DetectRoutes returns the distinct "X to Y" route mentions in the text.
// Captures containing verb-construct words are not routes.
func DetectRoutes(text string) []string {
	matches := routePhraseRe.FindAllStringSubmatch(text, -1)
	var routes []string
	seen := make(map[string]bool)
	for _, m := range matches {
		origin := strings.ToLower(strings.TrimSpace(m[1]))
		dest := strings.ToLower(strings.TrimSpace(m[2]))
		if hasStopWord(origin) || hasStopWord(dest) {
			continue
		}
		key := origin + "->" + dest
		if seen[key] {
			continue
		}
		seen[key] = true
		routes = append(routes, key)
	}
	return routes
}

func hasStopWord(phrase string) bool {
	for _, w := range strings.Fields(phrase) {
		if routeStopWords[w] {
			return true
		}
	}
	return false
}

// HasMultiQueryLanguage reports conjunctive/ordinal phrasing that signals
// several requests packed into one message.
func HasMultiQueryLanguage(text string) bool {
	lower := strings.ToLower(text)
	words := tokenize(lower)
	return containsAny(lower, words, multiQueryWords)
}

// NeedsRouteClarification decides whether the multi-route guard fires:
// three or more distinct routes always do, two routes do when combined
// with multi-query language. The scorer is bypassed entirely when it fires.
func NeedsRouteClarification(text string) bool {
	routes := DetectRoutes(text)
	if len(routes) >= multiRouteHardLimit {
		return true
	}
	return len(routes) >= multiRouteSoftLimit && HasMultiQueryLanguage(text)
}
