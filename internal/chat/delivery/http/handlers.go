package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/chat"
	"smart-todo/internal/middleware"
	"smart-todo/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Classifies the message, executes the matching task action, and returns the assistant's reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "User message"
// @Success     200 {object} response.Resp{data=sendMessageResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/chat/message [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SendMessage(ctx, sc, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "chat.http.SendMessage.uc.SendMessage: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newSendMessageResp(out))
}

// History godoc
// @Summary     Get chat history
// @Description Returns the user's recent exchanges, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       limit query int false "Max messages to return (default: 50)"
// @Success     200 {object} response.Resp{data=historyResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	messages, err := h.uc.History(ctx, sc, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "chat.http.History.uc.History: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newHistoryResp(messages))
}

// ClearHistory godoc
// @Summary     Clear chat history
// @Description Deletes all of the user's exchanges and returns the count.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp{data=clearHistoryResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/chat/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	deleted, err := h.uc.ClearHistory(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "chat.http.ClearHistory.uc.ClearHistory: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, clearHistoryResp{Deleted: deleted})
}
