package router

import (
	"rewear/internal/adapter/api/handler"
	"rewear/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)
	favorites.GET("", favoriteHandler.GetFavorites)
	favorites.GET("/ids", favoriteHandler.GetFavoriteIDs)
	favorites.POST("/:productId", favoriteHandler.ToggleFavorite)
	favorites.DELETE("/:productId", favoriteHandler.RemoveFavorite)
}
