// internal/handlers/ws/ws_handler.go
package ws

import (
	"net/http"

	"fleetmaint-service/internal/websocket"

	gorilla "github.com/gorilla/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

func NewWSHandler(hub *websocket.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, logger: logger}
}

// HandleConnection upgrades the request and parks the connection on the hub.
func (h *WSHandler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	h.hub.Register(conn)

	// Drain client frames so pings are answered; events flow one way.
	go func() {
		defer h.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
