package http

import (
	"github.com/gin-gonic/gin"

	"flight-concierge/internal/chat"
	"flight-concierge/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	CreateSession(c *gin.Context)
	ListSessions(c *gin.Context)
	DetailSession(c *gin.Context)
	RenameSession(c *gin.Context)
	DeleteSession(c *gin.Context)
	ListMessages(c *gin.Context)
	SendMessage(c *gin.Context)
	ResetContext(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
