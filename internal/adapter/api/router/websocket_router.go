package router

import (
	"github.com/labstack/echo/v4"

	"rewear/internal/adapter/api/handler"
)

// SetupWebSocketRouter sets up WebSocket routes. Auth happens inside
// the handler via a token query parameter, not middleware.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/ws", wsHandler.HandleConnection)
}
