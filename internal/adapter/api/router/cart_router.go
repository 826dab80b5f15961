package router

import (
	"rewear/internal/adapter/api/handler"
	"rewear/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate)
	cart.GET("", cartHandler.GetCart)
	cart.POST("", cartHandler.AddToCart)
	cart.DELETE("", cartHandler.ClearCart)
	cart.GET("/quote", handler.GetCheckoutHandler().QuoteCart)
	cart.PATCH("/:productId", cartHandler.UpdateRentalDates)
	cart.DELETE("/:productId", cartHandler.RemoveFromCart)
}
