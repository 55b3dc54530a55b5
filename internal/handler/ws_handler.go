package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"

	"github.com/mcasfest/fest-api/internal/websocket"
)

// WSHandler upgrades connections to the public live update stream. The
// stream carries leaderboard and result events; no authentication, no
// inbound commands.
type WSHandler struct {
	hub      *websocket.Hub
	upgrader gorillaws.Upgrader
}

// NewWSHandler creates a new websocket handler. allowedOrigins must match
// the CORS configuration.
func NewWSHandler(hub *websocket.Hub, allowedOrigins []string) *WSHandler {
	originSet := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		originSet[origin] = true
	}

	return &WSHandler{
		hub: hub,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// Non-browser clients send no Origin.
				if origin == "" {
					return true
				}
				return originSet[origin]
			},
		},
	}
}

// Handle upgrades the request and attaches the client to the hub
// GET /ws
func (h *WSHandler) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WSHandler] Upgrade failed: %v", err)
		return
	}

	client := websocket.NewClient(h.hub, conn)
	client.Start()
	log.Printf("[WSHandler] Client %s connected", client.ID)
}
