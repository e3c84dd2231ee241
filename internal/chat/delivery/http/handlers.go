package http

import (
	"github.com/gin-gonic/gin"

	"flight-concierge/internal/middleware"
	"flight-concierge/pkg/response"
)

// CreateSession godoc
// @Summary     Start a new chat session
// @Description Creates a new conversation thread. Title is optional and defaults to "New chat".
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createSessionReq false "Session data"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateSession(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output.Session))
}

// ListSessions godoc
// @Summary     List the caller's chat sessions
// @Description Returns all sessions owned by the caller, most recently active first.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listSessionsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/sessions [GET]
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.ListSessions(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSessions: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListSessionsResp(output))
}

// DetailSession godoc
// @Summary     Get one chat session
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [GET]
func (h *handler) DetailSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.DetailSession(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output.Session))
}

// RenameSession godoc
// @Summary     Rename a chat session
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string           true "Session ID"
// @Param       body body renameSessionReq true "New title"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [PUT]
func (h *handler) RenameSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processRenameSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RenameSession(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RenameSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output.Session))
}

// DeleteSession godoc
// @Summary     Delete a chat session
// @Description Removes the session along with its messages and context.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.DeleteSession(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ListMessages godoc
// @Summary     List messages in a session
// @Description Returns the session's messages in arrival order.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       id     path  string true  "Session ID"
// @Param       limit  query int    false "Page size (default: 50)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listMessagesResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListMessagesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListMessages(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMessages: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListMessagesResp(output))
}

// SendMessage godoc
// @Summary     Send a message
// @Description Runs one conversation turn and returns the assistant's reply envelope.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string         true "Session ID"
// @Param       body body sendMessageReq true "Message content"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// ResetContext godoc
// @Summary     Reset a session's context
// @Description Clears the session's accumulated context; message history is kept.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/context [DELETE]
func (h *handler) ResetContext(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.ResetContext(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.ResetContext: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
