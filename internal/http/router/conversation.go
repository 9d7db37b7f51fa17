package router

import (
	"basegraph.app/helpdesk/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func ConversationRouter(rg *gin.RouterGroup, h *handler.ConversationHandler, messages *handler.MessageHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:conversation_id", h.Get)
	rg.GET("/:conversation_id/messages", messages.List)
	rg.POST("/:conversation_id/auto_assign", h.AutoAssign)
}
