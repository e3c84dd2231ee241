package http

import (
	"github.com/gin-gonic/gin"

	"flight-concierge/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All chat routes require an authenticated caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/chat/sessions")
	{
		sessions.POST("", mw.Auth(), h.CreateSession)
		sessions.GET("", mw.Auth(), h.ListSessions)
		sessions.GET("/:id", mw.Auth(), h.DetailSession)
		sessions.PUT("/:id", mw.Auth(), h.RenameSession)
		sessions.DELETE("/:id", mw.Auth(), h.DeleteSession)

		sessions.GET("/:id/messages", mw.Auth(), h.ListMessages)
		sessions.POST("/:id/messages", mw.Auth(), h.SendMessage)
		sessions.DELETE("/:id/context", mw.Auth(), h.ResetContext)
	}
}
