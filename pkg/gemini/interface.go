package gemini

import "context"

// IGemini defines the interface for the generative text service.
// Implementations are safe for concurrent use.
type IGemini interface {
	// Generate sends a prompt and returns the text completion.
	Generate(ctx context.Context, prompt string) (string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Gemini client with the given configuration
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
