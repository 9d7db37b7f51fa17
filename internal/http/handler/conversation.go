package handler

import (
	"net/http"

	"basegraph.app/helpdesk/internal/http/dto"
	"basegraph.app/helpdesk/internal/service"
	"github.com/gin-gonic/gin"
)

const autoAssignQueuedMessage = "Auto-assignment job has been queued. The conversation will be assigned shortly."

type ConversationHandler struct {
	conversations service.ConversationService
}

func NewConversationHandler(conversations service.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversations: conversations}
}

func (h *ConversationHandler) List(c *gin.Context) {
	views, err := h.conversations.List(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to list conversations")
		return
	}
	c.JSON(http.StatusOK, dto.ToConversationResponses(views))
}

func (h *ConversationHandler) Get(c *gin.Context) {
	convID, ok := pathID(c, "conversation_id", service.ErrConversationNotFound)
	if !ok {
		return
	}

	view, err := h.conversations.Get(c.Request.Context(), currentUser(c), convID)
	if err != nil {
		respondError(c, err, "Failed to load conversation")
		return
	}
	c.JSON(http.StatusOK, dto.ToConversationResponse(*view))
}

func (h *ConversationHandler) Create(c *gin.Context) {
	var req dto.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	view, err := h.conversations.Create(c.Request.Context(), currentUser(c), req.Title)
	if err != nil {
		respondError(c, err, "Failed to create conversation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToConversationResponse(*view))
}

func (h *ConversationHandler) AutoAssign(c *gin.Context) {
	convID, ok := pathID(c, "conversation_id", service.ErrConversationNotFound)
	if !ok {
		return
	}

	if err := h.conversations.RequestAssignment(c.Request.Context(), currentUser(c), convID); err != nil {
		respondError(c, err, "Failed to queue auto-assignment")
		return
	}
	c.JSON(http.StatusAccepted, dto.SuccessResponse{Success: true, Message: autoAssignQueuedMessage})
}
