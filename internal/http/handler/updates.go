package handler

import (
	"net/http"
	"time"

	"basegraph.app/helpdesk/internal/http/dto"
	"basegraph.app/helpdesk/internal/service"
	"github.com/gin-gonic/gin"
)

type UpdatesHandler struct {
	updates service.UpdatesService
}

func NewUpdatesHandler(updates service.UpdatesService) *UpdatesHandler {
	return &UpdatesHandler{updates: updates}
}

func (h *UpdatesHandler) Conversations(c *gin.Context) {
	since, ok := sinceParam(c)
	if !ok {
		return
	}
	views, err := h.updates.Conversations(c.Request.Context(), currentUser(c), since)
	if err != nil {
		respondError(c, err, "Failed to load conversation updates")
		return
	}
	c.JSON(http.StatusOK, dto.ToConversationResponses(views))
}

func (h *UpdatesHandler) Messages(c *gin.Context) {
	since, ok := sinceParam(c)
	if !ok {
		return
	}
	messages, err := h.updates.Messages(c.Request.Context(), currentUser(c), since)
	if err != nil {
		respondError(c, err, "Failed to load message updates")
		return
	}
	c.JSON(http.StatusOK, dto.ToMessageResponses(messages))
}

func (h *UpdatesHandler) ExpertQueue(c *gin.Context) {
	since, ok := sinceParam(c)
	if !ok {
		return
	}
	q, err := h.updates.ExpertQueue(c.Request.Context(), currentUser(c), since)
	if err != nil {
		respondError(c, err, "Failed to load queue updates")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpertQueueResponse(q))
}

// sinceParam accepts RFC 3339 with or without fractional seconds.
func sinceParam(c *gin.Context) (*time.Time, bool) {
	raw := c.Query("since")
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid since parameter"})
		return nil, false
	}
	return &t, true
}
