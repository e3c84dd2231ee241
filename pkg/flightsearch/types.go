package flightsearch

// SearchRequest is a structured flight search query.
type SearchRequest struct {
	DepartureID  string // IATA code, e.g. "PEK"
	ArrivalID    string // IATA code, e.g. "AUS"
	OutboundDate string // ISO date yyyy-mm-dd
	ReturnDate   string // ISO date yyyy-mm-dd, empty for one-way
	Currency     string // ISO-4217 code, e.g. "USD"
	LanguageHint string // BCP-47 language tag, e.g. "en"
}

// Price is an amount in a given currency.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// AirportTime is one end of a flight leg.
type AirportTime struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Time string `json:"time"` // local "yyyy-mm-dd hh:mm"
}

// Layover is an intermediate stop between legs.
type Layover struct {
	AirportID       string `json:"airport_id"`
	AirportName     string `json:"airport_name"`
	DurationMinutes int    `json:"duration_minutes"`
}

// FlightOption is a single bookable flight result.
type FlightOption struct {
	Airline          string      `json:"airline"`
	FlightNumber     string      `json:"flight_number"`
	DepartureAirport AirportTime `json:"departure_airport"`
	ArrivalAirport   AirportTime `json:"arrival_airport"`
	DurationMinutes  int         `json:"duration_minutes"`
	Price            Price       `json:"price"`
	Stops            int         `json:"stops"`
	Layovers         []Layover   `json:"layovers,omitempty"`
	BookingLink      string      `json:"booking_link,omitempty"`
}

// --- SerpApi Google Flights wire format ---

type serpResponse struct {
	BestFlights  []serpFlightGroup `json:"best_flights"`
	OtherFlights []serpFlightGroup `json:"other_flights"`
	Error        string            `json:"error"`
}

type serpFlightGroup struct {
	Flights       []serpFlight  `json:"flights"`
	Layovers      []serpLayover `json:"layovers"`
	TotalDuration int           `json:"total_duration"`
	Price         float64       `json:"price"`
	BookingToken  string        `json:"booking_token"`
}

type serpFlight struct {
	DepartureAirport serpAirport `json:"departure_airport"`
	ArrivalAirport   serpAirport `json:"arrival_airport"`
	Duration         int         `json:"duration"`
	Airline          string      `json:"airline"`
	FlightNumber     string      `json:"flight_number"`
}

type serpAirport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

type serpLayover struct {
	Duration int    `json:"duration"`
	Name     string `json:"name"`
	ID       string `json:"id"`
}
