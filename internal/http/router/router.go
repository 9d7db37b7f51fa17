package router

import (
	"basegraph.app/helpdesk/internal/http/handler"
	"basegraph.app/helpdesk/internal/http/middleware"
	"basegraph.app/helpdesk/internal/service"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	// DB backs /health when set.
	DB handler.Pinger
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	healthHandler := handler.NewHealthHandler(cfg.DB)
	router.GET("/health", healthHandler.Health)

	authService := services.Auth()
	requireAuth := middleware.RequireAuth(authService)

	authHandler := handler.NewAuthHandler(authService)
	AuthRouter(router.Group("/auth"), authHandler, requireAuth)

	conversationHandler := handler.NewConversationHandler(services.Conversations())
	messageHandler := handler.NewMessageHandler(services.Messages())
	ConversationRouter(router.Group("/conversations", requireAuth), conversationHandler, messageHandler)
	MessageRouter(router.Group("/messages", requireAuth), messageHandler)

	expertHandler := handler.NewExpertHandler(services.Queue(), services.Assignments(), services.Experts())
	ExpertRouter(router.Group("/expert", requireAuth), expertHandler)

	updatesHandler := handler.NewUpdatesHandler(services.Updates())
	UpdatesRouter(router.Group("/api", requireAuth), updatesHandler)
}
