package gemini

// Default client configuration.
const (
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel  = "gemini-2.0-flash"

	// Low temperature keeps assistant replies stable across turns.
	DefaultTemperature = 0.4
)
