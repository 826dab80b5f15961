package router

import (
	"rewear/internal/adapter/api/handler"
	"rewear/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCheckoutRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	checkoutHandler := handler.GetCheckoutHandler()

	checkout := e.Group("/v1/checkout")
	checkout.Use(authMiddleware.Authenticate)
	checkout.POST("/orders", checkoutHandler.CreateOrder)
	checkout.GET("/orders", checkoutHandler.ListOrders)
	checkout.POST("/verify", checkoutHandler.VerifyPayment)
	checkout.POST("/cancel", checkoutHandler.CancelPayment)
}
