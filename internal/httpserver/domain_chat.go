package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"flight-concierge/internal/agent"
	chatHTTP "flight-concierge/internal/chat/delivery/http"
	chatRepo "flight-concierge/internal/chat/repository/mongo"
	chatUC "flight-concierge/internal/chat/usecase"
	"flight-concierge/internal/middleware"
	"flight-concierge/internal/router"
)

// setupChatDomain initializes the chat domain and registers its routes.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := chatRepo.New(srv.database, srv.l)

	// 2. UseCase: intent router plus the two assistants it routes between
	rt := router.New(srv.l)
	flight := agent.NewFlightAssistant(srv.l, srv.extractor, srv.search, srv.gen)
	personal := agent.NewPersonalAssistant(srv.l, srv.gen)
	uc := chatUC.New(repo, rt, flight, personal, srv.gen, srv.chatCfg, srv.l)

	// 3. HTTP Handler
	h := chatHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/chat/sessions
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
