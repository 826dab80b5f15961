package router

import (
	"rewear/internal/adapter/api/handler"
	"rewear/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()

	// Browsing is public; a valid token only personalizes the result.
	products := e.Group("/v1/products")
	products.Use(authMiddleware.OptionalAuthenticate)
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)

	myProducts := e.Group("/v1/my-products")
	myProducts.Use(authMiddleware.Authenticate)
	myProducts.GET("", productHandler.ListMyProducts)
	myProducts.POST("", productHandler.CreateProduct)
	myProducts.PUT("/:id", productHandler.UpdateProduct)
	myProducts.DELETE("/:id", productHandler.DeleteProduct)
}
