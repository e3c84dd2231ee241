package usecase

// Defaults.
const (
	DefaultSessionTitle      = "New chat"
	DefaultTitleRefreshEvery = 6
	DefaultContextCacheSize  = 256

	DefaultMessagePageSize = 50
	MaxMessagePageSize     = 200

	titleMaxLen = 40
)

// titlePrompt asks the generative service for a short session title.
const titlePrompt = `Write a short title (five words at most) for this conversation. Reply with the title only, no quotes, no punctuation at the end.

%s`
