package router

import (
	"basegraph.app/helpdesk/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func ExpertRouter(rg *gin.RouterGroup, h *handler.ExpertHandler) {
	rg.GET("/queue", h.Queue)
	rg.POST("/conversations/:conversation_id/claim", h.Claim)
	rg.POST("/conversations/:conversation_id/unclaim", h.Unclaim)
	rg.GET("/profile", h.Profile)
	rg.PUT("/profile", h.UpdateProfile)
	rg.GET("/assignments/history", h.History)
}
