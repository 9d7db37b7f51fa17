package handler

import (
	"log/slog"
	"net/http"

	"basegraph.app/helpdesk/internal/http/dto"
	"basegraph.app/helpdesk/internal/service"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messages service.MessageService
}

func NewMessageHandler(messages service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

func (h *MessageHandler) List(c *gin.Context) {
	convID, ok := pathID(c, "conversation_id", service.ErrConversationNotFound)
	if !ok {
		return
	}

	messages, err := h.messages.List(c.Request.Context(), currentUser(c), convID)
	if err != nil {
		respondError(c, err, "Failed to list messages")
		return
	}
	c.JSON(http.StatusOK, dto.ToMessageResponses(messages))
}

func (h *MessageHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": service.Message(service.ErrConversationNotFound)})
		return
	}

	msg, err := h.messages.Create(ctx, currentUser(c), int64(req.ConversationID), req.Content)
	if err != nil {
		respondError(c, err, "Failed to create message")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMessageResponse(msg))
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	msgID, ok := pathID(c, "id", service.ErrMessageNotFound)
	if !ok {
		return
	}

	if err := h.messages.MarkRead(c.Request.Context(), currentUser(c), msgID); err != nil {
		respondError(c, err, "Failed to mark message read")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
