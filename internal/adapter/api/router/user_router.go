package router

import (
	"rewear/internal/adapter/api/handler"
	"rewear/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	// Public profile lookup, for counterparty cards in chat and listings.
	e.GET("/v1/users/:id", userHandler.GetUserByID)

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.GET("/me", userHandler.GetProfile)
	users.PATCH("/me", userHandler.UpdateProfile)
}
