package router

import (
	"basegraph.app/helpdesk/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, requireAuth gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)

	authed := rg.Group("", requireAuth)
	authed.POST("/logout", h.Logout)
	authed.POST("/refresh", h.Refresh)
	authed.GET("/me", h.Me)
}
