package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "flight-concierge/pkg/errors"
)

// processCreateSessionReq binds the optional create session body.
func (h *handler) processCreateSessionReq(c *gin.Context) (createSessionReq, error) {
	var req createSessionReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, nil
}

// processRenameSessionReq binds the rename body plus URI param.
func (h *handler) processRenameSessionReq(c *gin.Context) (renameSessionReq, error) {
	var req renameSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, pkgErrors.NewHTTPError(400, "session id is required")
	}
	return req, nil
}

// processListMessagesReq binds pagination query params plus URI param.
func (h *handler) processListMessagesReq(c *gin.Context) (listMessagesReq, error) {
	var req listMessagesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, pkgErrors.NewHTTPError(400, "session id is required")
	}
	return req, nil
}

// processSendMessageReq binds the message body plus URI param.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, pkgErrors.NewHTTPError(400, "session id is required")
	}
	return req, nil
}
