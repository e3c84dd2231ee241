package http

import (
	"flight-concierge/internal/chat"
	"flight-concierge/internal/model"
	"flight-concierge/pkg/flightsearch"
	"flight-concierge/pkg/response"
)

// --- Request DTOs ---

type createSessionReq struct {
	Title string `json:"title" binding:"omitempty,max=255"`
}

func (r createSessionReq) toInput() chat.CreateSessionInput {
	return chat.CreateSessionInput{Title: r.Title}
}

type renameSessionReq struct {
	SessionID string `json:"-"` // populated from URI param
	Title     string `json:"title" binding:"required,min=1,max=255"`
}

func (r renameSessionReq) toInput() chat.RenameSessionInput {
	return chat.RenameSessionInput{
		SessionID: r.SessionID,
		Title:     r.Title,
	}
}

type listMessagesReq struct {
	SessionID string `form:"-"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listMessagesReq) toInput() chat.ListMessagesInput {
	return chat.ListMessagesInput{
		SessionID: r.SessionID,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

type sendMessageReq struct {
	SessionID string `json:"-"` // populated from URI param
	Content   string `json:"content" binding:"required,min=1,max=4000"`
}

func (r sendMessageReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		SessionID: r.SessionID,
		Content:   r.Content,
	}
}

// --- Response DTOs ---

type sessionResp struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	MessageCount int               `json:"message_count"`
	CreatedAt    response.DateTime `json:"created_at"`
	UpdatedAt    response.DateTime `json:"updated_at"`
}

func newSessionResp(s model.Session) sessionResp {
	return sessionResp{
		ID:           s.ID,
		Title:        s.Title,
		MessageCount: s.MessageCount,
		CreatedAt:    response.DateTime(s.CreatedAt),
		UpdatedAt:    response.DateTime(s.UpdatedAt),
	}
}

type listSessionsResp struct {
	Sessions []sessionResp `json:"sessions"`
}

func (h *handler) newListSessionsResp(out chat.ListSessionsOutput) listSessionsResp {
	sessions := make([]sessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = newSessionResp(s)
	}
	return listSessionsResp{Sessions: sessions}
}

type messageResp struct {
	ID        string            `json:"id"`
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	CreatedAt response.DateTime `json:"created_at"`
}

type listMessagesResp struct {
	Messages []messageResp `json:"messages"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

func (h *handler) newListMessagesResp(out chat.ListMessagesOutput) listMessagesResp {
	messages := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		messages[i] = messageResp{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: response.DateTime(m.CreatedAt),
		}
	}
	return listMessagesResp{
		Messages: messages,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type sendMessageResp struct {
	Response         string                      `json:"response"`
	Agent            string                      `json:"agent"`
	Intent           string                      `json:"intent"`
	FlightScore      float64                     `json:"flight_score"`
	PersonalScore    float64                     `json:"personal_score"`
	Threshold        float64                     `json:"threshold"`
	RequiresMoreInfo bool                        `json:"requires_more_info"`
	Flights          []flightsearch.FlightOption `json:"flights,omitempty"`
}

func (h *handler) newSendMessageResp(out chat.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		Response:         out.Response,
		Agent:            out.Agent,
		Intent:           out.Intent,
		FlightScore:      out.FlightScore,
		PersonalScore:    out.PersonalScore,
		Threshold:        out.Threshold,
		RequiresMoreInfo: out.RequiresMoreInfo,
		Flights:          out.Flights,
	}
}
