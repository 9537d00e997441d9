package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processIDParam parses the :id URI parameter.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the update task request body and the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	req.ID = id

	return req, nil
}

// processCompletionReq binds the completion request body and the URI param.
func (h *handler) processCompletionReq(c *gin.Context) (completionReq, error) {
	var req completionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	req.ID = id

	return req, nil
}
