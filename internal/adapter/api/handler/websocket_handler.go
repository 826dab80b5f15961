package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"rewear/internal/adapter/api/middleware"
	"rewear/internal/infrastructure/websocket"
	"rewear/pkg/logger"
)

type WebSocketHandler struct {
	manager        *websocket.Manager
	authMiddleware *middleware.AuthMiddleware
	upgrader       gorillaws.Upgrader
}

func NewWebSocketHandler(manager *websocket.Manager, authMiddleware *middleware.AuthMiddleware) *WebSocketHandler {
	return &WebSocketHandler{
		manager:        manager,
		authMiddleware: authMiddleware,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleConnection upgrades the request and registers the client for
// message pushes. Browsers cannot set headers on a WebSocket handshake,
// so the token arrives as a query parameter instead.
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Token is required")
	}

	uid, err := h.authMiddleware.GetUIDFromToken(c.Request().Context(), token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed for user %s: %v", uid, err)
		return err
	}

	client := &websocket.Client{
		UserID: uid,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump(h.manager)

	return nil
}
