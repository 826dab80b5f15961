package router

import (
	"rewear/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware)
	SetupCartRouter(e, authMiddleware)
	SetupFavoriteRouter(e, authMiddleware)
	SetupMessageRouter(e, authMiddleware)
	SetupCheckoutRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
