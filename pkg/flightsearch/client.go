package flightsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// DefaultBaseURL is the SerpApi endpoint serving the Google Flights engine.
const DefaultBaseURL = "https://serpapi.com/search"

// Config holds flight search client configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("flightsearch: api key is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	return nil
}

type client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newClient(cfg Config) *client {
	return &client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// Search queries the Google Flights engine and flattens the grouped results
// into a single option list (best flights first).
func (c *client) Search(ctx context.Context, req SearchRequest) ([]FlightOption, error) {
	query := url.Values{}
	query.Set("engine", "google_flights")
	query.Set("api_key", c.apiKey)
	query.Set("departure_id", req.DepartureID)
	query.Set("arrival_id", req.ArrivalID)
	query.Set("outbound_date", req.OutboundDate)
	if req.ReturnDate != "" {
		query.Set("return_date", req.ReturnDate)
	} else {
		// type 2 = one-way per the Google Flights engine contract
		query.Set("type", "2")
	}
	if req.Currency != "" {
		query.Set("currency", req.Currency)
	}
	if req.LanguageHint != "" {
		query.Set("hl", req.LanguageHint)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("flightsearch: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("flightsearch: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("flightsearch: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("flightsearch: failed to decode response: %w", err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("flightsearch: API error: %s", result.Error)
	}

	options := make([]FlightOption, 0, len(result.BestFlights)+len(result.OtherFlights))
	for _, group := range result.BestFlights {
		options = append(options, c.toOption(group, req.Currency))
	}
	for _, group := range result.OtherFlights {
		options = append(options, c.toOption(group, req.Currency))
	}
	return options, nil
}

// toOption converts one grouped result. Multi-leg itineraries are summarized
// by their first leg's airline and outermost departure/arrival airports.
func (c *client) toOption(group serpFlightGroup, currency string) FlightOption {
	opt := FlightOption{
		DurationMinutes: group.TotalDuration,
		Price:           Price{Amount: group.Price, Currency: currency},
		Stops:           len(group.Layovers),
	}

	if len(group.Flights) > 0 {
		first := group.Flights[0]
		last := group.Flights[len(group.Flights)-1]
		opt.Airline = first.Airline
		opt.FlightNumber = first.FlightNumber
		opt.DepartureAirport = AirportTime{ID: first.DepartureAirport.ID, Name: first.DepartureAirport.Name, Time: first.DepartureAirport.Time}
		opt.ArrivalAirport = AirportTime{ID: last.ArrivalAirport.ID, Name: last.ArrivalAirport.Name, Time: last.ArrivalAirport.Time}
	}

	for _, lay := range group.Layovers {
		opt.Layovers = append(opt.Layovers, Layover{
			AirportID:       lay.ID,
			AirportName:     lay.Name,
			DurationMinutes: lay.Duration,
		})
	}

	if group.BookingToken != "" {
		opt.BookingLink = fmt.Sprintf("https://www.google.com/travel/flights?tfs=%s", group.BookingToken)
	}

	return opt
}
