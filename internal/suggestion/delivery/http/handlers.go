package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/internal/suggestion"
	"smart-todo/pkg/response"
)

var errInvalidID = errors.New("id must be a positive integer")

// Generate godoc
// @Summary     Generate suggestions
// @Description Asks the model for recommendations over the user's open tasks and stores them as pending suggestions.
// @Tags        Suggestions
// @Produce     json
// @Success     200 {object} response.Resp{data=listResp}
// @Failure     400 {object} response.Resp "Bad Request - no open tasks"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/suggestions/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	created, err := h.uc.Generate(ctx, sc)
	if err != nil {
		if errors.Is(err, suggestion.ErrNoOpenTasks) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "suggestion.http.Generate.uc.Generate: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newListResp(created))
}

// List godoc
// @Summary     List suggestions
// @Description Returns the user's suggestions, newest first, optionally filtered by status.
// @Tags        Suggestions
// @Produce     json
// @Param       status query string false "Filter by status (pending/accepted/dismissed)"
// @Success     200 {object} response.Resp{data=listResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/suggestions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	suggestions, err := h.uc.List(ctx, sc, req.Status)
	if err != nil {
		h.l.Errorf(ctx, "suggestion.http.List.uc.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newListResp(suggestions))
}

// UpdateStatus godoc
// @Summary     Accept or dismiss a suggestion
// @Description Marks a suggestion accepted or dismissed.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       id   path int             true "Suggestion ID"
// @Param       body body updateStatusReq true "New status"
// @Success     200 {object} response.Resp{data=suggestionResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/suggestions/{id} [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, errInvalidID, nil)
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.UpdateStatus(ctx, sc, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, suggestion.ErrInvalidStatus):
			response.Error(c, err, nil)
		case errors.Is(err, suggestion.ErrSuggestionNotFound):
			response.NotFound(c, err)
		default:
			h.l.Errorf(ctx, "suggestion.http.UpdateStatus.uc.UpdateStatus: %v", err)
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, newSuggestionResp(s))
}
