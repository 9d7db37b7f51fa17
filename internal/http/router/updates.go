package router

import (
	"basegraph.app/helpdesk/internal/http/handler"
	"github.com/gin-gonic/gin"
)

// UpdatesRouter serves the polling endpoints clients hit in place of a socket.
func UpdatesRouter(rg *gin.RouterGroup, h *handler.UpdatesHandler) {
	rg.GET("/conversations/updates", h.Conversations)
	rg.GET("/messages/updates", h.Messages)
	rg.GET("/expert-queue/updates", h.ExpertQueue)
}
