package router

import (
	"basegraph.app/helpdesk/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func MessageRouter(rg *gin.RouterGroup, h *handler.MessageHandler) {
	rg.POST("", h.Create)
	rg.PUT("/:id/read", h.MarkRead)
}
