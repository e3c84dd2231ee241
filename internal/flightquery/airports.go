package flightquery

import (
	"sort"
	"strings"
)

// cityToIATA maps lowercase city names to their primary airport code.
// Multi-airport cities use the largest international hub.
var cityToIATA = map[string]string{
	"amsterdam":     "AMS",
	"atlanta":       "ATL",
	"austin":        "AUS",
	"bangalore":     "BLR",
	"bangkok":       "BKK",
	"barcelona":     "BCN",
	"beijing":       "PEK",
	"berlin":        "BER",
	"boston":        "BOS",
	"chennai":       "MAA",
	"chicago":       "ORD",
	"dallas":        "DFW",
	"delhi":         "DEL",
	"denver":        "DEN",
	"doha":          "DOH",
	"dubai":         "DXB",
	"frankfurt":     "FRA",
	"hong kong":     "HKG",
	"houston":       "IAH",
	"istanbul":      "IST",
	"jakarta":       "CGK",
	"kolkata":       "CCU",
	"kuala lumpur":  "KUL",
	"las vegas":     "LAS",
	"london":        "LHR",
	"los angeles":   "LAX",
	"madrid":        "MAD",
	"melbourne":     "MEL",
	"mexico city":   "MEX",
	"miami":         "MIA",
	"milan":         "MXP",
	"moscow":        "SVO",
	"mumbai":        "BOM",
	"munich":        "MUC",
	"new delhi":     "DEL",
	"new york":      "JFK",
	"osaka":         "KIX",
	"paris":         "CDG",
	"rome":          "FCO",
	"san francisco": "SFO",
	"sao paulo":     "GRU",
	"seattle":       "SEA",
	"seoul":         "ICN",
	"shanghai":      "PVG",
	"singapore":     "SIN",
	"sydney":        "SYD",
	"tokyo":         "NRT",
	"toronto":       "YYZ",
	"vienna":        "VIE",
	"washington":    "IAD",
	"zurich":        "ZRH",
}

// lookupCity resolves a free-form city phrase to an IATA code. Containment
// is checked in both directions so partial names ("new yor", "angeles")
// still resolve.
func lookupCity(phrase string) (string, bool) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return "", false
	}

	if code, ok := cityToIATA[phrase]; ok {
		return code, true
	}

	for city, code := range cityToIATA {
		if strings.Contains(phrase, city) || strings.Contains(city, phrase) {
			return code, true
		}
	}
	return "", false
}

// MentionsCity reports whether the text names any known city.
func MentionsCity(text string) bool {
	lower := strings.ToLower(text)
	for city := range cityToIATA {
		if strings.Contains(lower, city) {
			return true
		}
	}
	return false
}

// citiesInOrder returns the IATA codes of all cities named in the text,
// in order of first appearance.
func citiesInOrder(text string) []string {
	lower := strings.ToLower(text)

	type hit struct {
		index int
		code  string
	}
	var hits []hit
	for city, code := range cityToIATA {
		if idx := strings.Index(lower, city); idx >= 0 {
			hits = append(hits, hit{index: idx, code: code})
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].index < hits[j].index })

	codes := make([]string, 0, len(hits))
	seen := make(map[string]bool)
	for _, h := range hits {
		if seen[h.code] {
			continue
		}
		seen[h.code] = true
		codes = append(codes, h.code)
	}
	return codes
}
