package handler

import (
	"net/http"

	"basegraph.app/helpdesk/internal/http/dto"
	"basegraph.app/helpdesk/internal/service"
	"github.com/gin-gonic/gin"
)

type ExpertHandler struct {
	queue       service.QueueService
	assignments service.AssignmentService
	experts     service.ExpertService
}

func NewExpertHandler(queue service.QueueService, assignments service.AssignmentService, experts service.ExpertService) *ExpertHandler {
	return &ExpertHandler{
		queue:       queue,
		assignments: assignments,
		experts:     experts,
	}
}

func (h *ExpertHandler) Queue(c *gin.Context) {
	q, err := h.queue.ExpertQueue(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to load queue")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpertQueueResponse(q))
}

func (h *ExpertHandler) Claim(c *gin.Context) {
	convID, ok := pathID(c, "conversation_id", service.ErrConversationNotFound)
	if !ok {
		return
	}

	if err := h.assignments.Claim(c.Request.Context(), convID, currentUser(c)); err != nil {
		respondError(c, err, "Failed to claim conversation")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *ExpertHandler) Unclaim(c *gin.Context) {
	convID, ok := pathID(c, "conversation_id", service.ErrConversationNotFound)
	if !ok {
		return
	}

	if err := h.assignments.Unclaim(c.Request.Context(), convID, currentUser(c)); err != nil {
		respondError(c, err, "Failed to unclaim conversation")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *ExpertHandler) Profile(c *gin.Context) {
	profile, err := h.experts.Profile(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to load expert profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpertProfileResponse(profile))
}

func (h *ExpertHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateExpertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{"Invalid expert profile"}})
		return
	}

	profile, err := h.experts.UpdateProfile(c.Request.Context(), currentUser(c), req.ToUpdate())
	if err != nil {
		respondError(c, err, "Failed to update expert profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpertProfileResponse(profile))
}

func (h *ExpertHandler) History(c *gin.Context) {
	history, err := h.experts.History(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to load assignment history")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssignmentResponses(history))
}
