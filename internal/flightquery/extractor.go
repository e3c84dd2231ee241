package flightquery

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"flight-concierge/pkg/datemath"
)

// DefaultLanguageHint is used when the caller supplies no language.
const DefaultLanguageHint = "en"

// currencyAllowList is the fixed set of accepted ISO-4217 codes.
var currencyAllowList = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "CAD": true,
	"AUD": true, "JPY": true, "CHF": true,
}

var (
	// Explicit return-date keyword phrases. The date that follows one of
	// these is the return date, not a second outbound candidate.
	// Bare "return" needs a following "on" so "a return flight" does not
	// claim the outbound date.
	returnKeywordRe = regexp.MustCompile(`(?i)\b(?:(?:returning|coming\s+back)\s+(?:on\s+)?|(?:return|come\s+back)\s+on\s+)`)

	// Relative natural-date phrases resolved through the datemath parser.
	relativeDateRe = regexp.MustCompile(`(?i)\b(today|tonight|tomorrow|next\s+week|next\s+month|next\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|in\s+\d+\s+(?:days?|weeks?|months?))\b`)

	// Month-name + day phrases ("October 18th", "Oct 18, 2025").
	monthDayRe = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)

	// Raw numeric dates. Alternation order matters: full three-part
	// patterns must win over the bare short form at the same position.
	numericDateRe = regexp.MustCompile(`\b(?:\d{4}-\d{1,2}-\d{1,2}|\d{1,2}/\d{1,2}/\d{4}|\d{1,2}-\d{1,2}-\d{2,4}|\d{1,2}[/-]\d{1,2})\b`)

	iataTokenRe = regexp.MustCompile(`\b[A-Z]{3}\b`)

	fromToRe = regexp.MustCompile(`(?i)\bfrom\s+([a-z ]+?)\s+to\s+([a-z ]+?)(?:\s+(?:on|in|for|next|this|by|around)\b|[,.!?;]|$)`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Extractor turns free text into a structured flight query.
type Extractor struct {
	relative *datemath.Parser
	now      func() time.Time
}

// New creates an Extractor using the given relative-date parser.
func New(relative *datemath.Parser) *Extractor {
	return &Extractor{
		relative: relative,
		now:      time.Now,
	}
}

// WithClock overrides the reference clock. Used in tests to pin "today".
func (e *Extractor) WithClock(now func() time.Time) *Extractor {
	e.now = now
	return e
}

// Extract returns a complete query or nil. A nil result means "insufficient
// information", never an error; the caller should ask a clarifying question.
func (e *Extractor) Extract(text string) *Params {
	p := e.ExtractPartial(text)
	if !p.Complete() {
		return nil
	}
	return &p
}

// ExtractPartial resolves whatever fields the text supplies. Partial results
// are merged with context carried from earlier turns by the caller.
func (e *Extractor) ExtractPartial(text string) Params {
	now := e.now()

	p := Params{
		Currency:     extractCurrency(text),
		LanguageHint: DefaultLanguageHint,
	}
	p.DepartureID, p.ArrivalID = extractLocations(text)
	p.OutboundDate, p.ReturnDate = e.extractDates(text, now)
	return p
}

// --- dates ---

// extractDates applies the date strategies in priority order. An explicit
// return keyword claims the date that follows it; otherwise the first match
// is the outbound date and a second match (same strategy) the return date.
func (e *Extractor) extractDates(text string, now time.Time) (outbound, returnDate string) {
	if loc := returnKeywordRe.FindStringIndex(text); loc != nil {
		tail := e.datesIn(text[loc[1]:], now, 1)
		if len(tail) == 1 {
			head := e.datesIn(text[:loc[0]], now, 1)
			if len(head) == 1 {
				outbound = head[0]
			}
			return outbound, tail[0]
		}
	}

	dates := e.datesIn(text, now, 2)
	if len(dates) > 0 {
		outbound = dates[0]
	}
	if len(dates) > 1 {
		returnDate = dates[1]
	}
	return outbound, returnDate
}

// datesIn returns up to max resolved ISO dates from the first strategy
// that matches anything. Later strategies are not consulted.
func (e *Extractor) datesIn(text string, now time.Time, max int) []string {
	if matches := relativeDateRe.FindAllString(text, max); len(matches) > 0 {
		var out []string
		for _, m := range matches {
			resolved, err := e.relative.Parse(normalizeSpaces(m), now)
			if err != nil {
				continue
			}
			out = append(out, resolved.Format("2006-01-02"))
		}
		if len(out) > 0 {
			return out
		}
	}

	if matches := monthDayRe.FindAllStringSubmatch(text, max); len(matches) > 0 {
		var out []string
		for _, m := range matches {
			if d, ok := resolveMonthDay(m[1], m[2], m[3], now); ok {
				out = append(out, d)
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	if matches := numericDateRe.FindAllString(text, max); len(matches) > 0 {
		var out []string
		for _, m := range matches {
			if d, ok := NormalizeDate(m, now); ok {
				out = append(out, d)
			}
		}
		return out
	}

	return nil
}

// resolveMonthDay resolves "October 18th" style phrases. Without an explicit
// year, the next future occurrence of that month/day is used, rolling to the
// following year when the date has already passed.
func resolveMonthDay(monthName, dayStr, yearStr string, now time.Time) (string, bool) {
	month, ok := monthsByPrefix[strings.ToLower(monthName)[:3]]
	if !ok {
		return "", false
	}

	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return "", false
	}

	year := now.Year()
	explicitYear := yearStr != ""
	if explicitYear {
		year, _ = strconv.Atoi(yearStr)
	}

	resolved := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if !explicitYear && resolved.Before(startOfDay(now)) {
		resolved = resolved.AddDate(1, 0, 0)
	}
	return resolved.Format("2006-01-02"), true
}

// NormalizeDate converts a raw numeric date token to ISO yyyy-mm-dd.
// Day/month ambiguity: whichever part exceeds 12 must be the day; if
// neither exceeds 12 in a two-part date, the first part is the day.
// Two-digit years are promoted by adding 2000, and a resolved date earlier
// than today rolls forward a year at a time until it is not (travel is
// assumed to be in the future).
// The function is idempotent on already-normalized input.
func NormalizeDate(token string, now time.Time) (string, bool) {
	token = strings.TrimSpace(token)

	var year, a, b int
	var twoPart bool

	switch {
	case strings.Count(token, "-") == 2:
		parts := strings.Split(token, "-")
		p0, _ := strconv.Atoi(parts[0])
		p1, _ := strconv.Atoi(parts[1])
		p2, _ := strconv.Atoi(parts[2])
		if len(parts[0]) == 4 {
			// yyyy-mm-dd
			return buildDate(p0, p1, p2, now)
		}
		// mm-dd-yy(yy)
		year, a, b = p2, p0, p1
	case strings.Count(token, "/") == 2:
		parts := strings.Split(token, "/")
		a, _ = strconv.Atoi(parts[0])
		b, _ = strconv.Atoi(parts[1])
		year, _ = strconv.Atoi(parts[2])
	case strings.ContainsAny(token, "/-"):
		parts := strings.FieldsFunc(token, func(r rune) bool { return r == '/' || r == '-' })
		if len(parts) != 2 {
			return "", false
		}
		a, _ = strconv.Atoi(parts[0])
		b, _ = strconv.Atoi(parts[1])
		year = now.Year()
		twoPart = true
	default:
		return "", false
	}

	if year < 100 {
		year += 2000
	}

	// a/b arrive in the written order. Resolve which one is the day.
	var month, day int
	switch {
	case a > 12 && b <= 12:
		day, month = a, b
	case b > 12 && a <= 12:
		month, day = a, b
	case twoPart:
		day, month = a, b
	default:
		// three-part patterns are month-first by convention
		month, day = a, b
	}

	return buildDate(year, month, day, now)
}

func buildDate(year, month, day int, now time.Time) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}

	resolved := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	if resolved.Day() != day {
		// e.g. Feb 30 overflowed into March
		return "", false
	}
	for resolved.Before(startOfDay(now)) {
		resolved = resolved.AddDate(1, 0, 0)
	}
	return resolved.Format("2006-01-02"), true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// --- locations ---

// extractLocations resolves the departure and arrival airports, trying bare
// IATA codes first, then an explicit "from X to Y" phrase, then any known
// city names in appearance order.
func extractLocations(text string) (departure, arrival string) {
	var codes []string
	for _, token := range iataTokenRe.FindAllString(text, -1) {
		if currencyAllowList[token] {
			continue
		}
		codes = append(codes, token)
	}
	if len(codes) >= 2 {
		return codes[0], codes[1]
	}

	if m := fromToRe.FindStringSubmatch(text); m != nil {
		dep, depOK := lookupCity(m[1])
		arr, arrOK := lookupCity(m[2])
		if depOK && arrOK {
			return dep, arr
		}
	}

	cities := citiesInOrder(text)
	if len(cities) >= 2 {
		return cities[0], cities[1]
	}
	if len(cities) == 1 {
		// A lone city is ambiguous; "to X" / "for X" marks it as the
		// destination, otherwise it is taken as the departure.
		lower := strings.ToLower(text)
		name := firstCityName(lower)
		if strings.Contains(lower, "to "+name) || strings.Contains(lower, "for "+name) {
			return "", cities[0]
		}
		return cities[0], ""
	}
	return "", ""
}

// firstCityName returns the earliest known city name appearing in the
// lowercased text.
func firstCityName(lower string) string {
	best := ""
	bestIdx := -1
	for city := range cityToIATA {
		if idx := strings.Index(lower, city); idx >= 0 && (bestIdx == -1 || idx < bestIdx) {
			best, bestIdx = city, idx
		}
	}
	return best
}

// --- currency ---

// extractCurrency returns the first allow-listed ISO-4217 token, if any.
func extractCurrency(text string) string {
	for _, token := range iataTokenRe.FindAllString(text, -1) {
		if currencyAllowList[token] {
			return token
		}
	}
	return ""
}

// Describe renders a query for logs and prompts.
func (p Params) Describe() string {
	if p.ReturnDate != "" {
		return fmt.Sprintf("%s -> %s, %s to %s", p.DepartureID, p.ArrivalID, p.OutboundDate, p.ReturnDate)
	}
	return fmt.Sprintf("%s -> %s, %s", p.DepartureID, p.ArrivalID, p.OutboundDate)
}
