package flightsearch

import "context"

// ISearch defines the interface for the external flight search service.
// Implementations are safe for concurrent use. No retry policy is applied;
// the caller converts failures into user-facing text.
type ISearch interface {
	// Search returns flight options for a complete query.
	Search(ctx context.Context, req SearchRequest) ([]FlightOption, error)
}

// New creates a new flight search client with the given configuration.
func New(cfg Config) (ISearch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
