package router

import (
	"rewear/internal/adapter/api/handler"
	"rewear/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	messageHandler := handler.GetMessageHandler()

	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)
	messages.GET("", messageHandler.GetThread)
	messages.POST("", messageHandler.SendMessage)
	messages.POST("/read", messageHandler.MarkThreadRead)

	conversations := e.Group("/v1/conversations")
	conversations.Use(authMiddleware.Authenticate)
	conversations.GET("", messageHandler.GetConversations)
}
