package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"flight-concierge/internal/agent"
	"flight-concierge/internal/chat"
	"flight-concierge/internal/chat/repository"
	"flight-concierge/internal/model"
	"flight-concierge/internal/router"
	"flight-concierge/pkg/gemini"
	"flight-concierge/pkg/log"
)

// Config tunes conversation behavior.
type Config struct {
	// TitleRefreshEvery is the message-count interval at which the session
	// title is regenerated from recent conversation.
	TitleRefreshEvery int
	// ContextCacheSize is the number of session contexts kept in memory.
	ContextCacheSize int
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	repo     repository.Repository
	router   router.Router
	flight   agent.Assistant
	personal agent.Assistant
	gen      gemini.IGemini
	ctxCache *lru.Cache[string, model.ConversationContext]
	cfg      Config
	l        log.Logger
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation.
func New(repo repository.Repository, rt router.Router, flight, personal agent.Assistant, gen gemini.IGemini, cfg Config, l log.Logger) *implUseCase {
	if cfg.TitleRefreshEvery <= 0 {
		cfg.TitleRefreshEvery = DefaultTitleRefreshEvery
	}
	if cfg.ContextCacheSize <= 0 {
		cfg.ContextCacheSize = DefaultContextCacheSize
	}

	cache, err := lru.New[string, model.ConversationContext](cfg.ContextCacheSize)
	if err != nil {
		panic("chat/usecase: invalid context cache size")
	}

	return &implUseCase{
		repo:     repo,
		router:   rt,
		flight:   flight,
		personal: personal,
		gen:      gen,
		ctxCache: cache,
		cfg:      cfg,
		l:        l,
	}
}
