package websocket

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

// broadcastChannel is the pub/sub channel shared by all API replicas.
const broadcastChannel = "fest:ws:broadcast"

// clusterFrame wraps a broadcast payload with its origin instance so a
// replica does not re-deliver its own frames received back from pub/sub.
type clusterFrame struct {
	Origin  string          `json:"origin"`
	Payload json.RawMessage `json:"payload"`
}

// Hub keeps the set of connected clients and fans broadcast frames out to
// them. The public leaderboard stream is one-way: clients only receive.
type Hub struct {
	instanceID string

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	pubsub PubSubProvider
}

// NewHub creates a hub backed by the given pub/sub provider
func NewHub(pubsub PubSubProvider) *Hub {
	return &Hub{
		instanceID: uuid.NewString(),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		broadcast:  make(chan []byte, 256),
		pubsub:     pubsub,
	}
}

// Run processes register/unregister/broadcast events until ctx is done.
// Intended to be called with `go`.
func (h *Hub) Run(ctx context.Context) {
	remote, err := h.pubsub.Subscribe(ctx, broadcastChannel)
	if err != nil {
		log.Printf("[Hub] PubSub subscribe failed, running standalone: %v", err)
		remote = nil
	}

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("[Hub] Client %s connected (%d total)", client.ID, len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("[Hub] Client %s disconnected (%d total)", client.ID, len(h.clients))
			}

		case message := <-h.broadcast:
			h.deliver(message)

		case frame, ok := <-h.nilSafe(remote):
			if !ok {
				remote = nil
				continue
			}
			var cf clusterFrame
			if err := json.Unmarshal(frame, &cf); err != nil {
				log.Printf("[Hub] Malformed cluster frame: %v", err)
				continue
			}
			if cf.Origin == h.instanceID {
				continue // our own frame, already delivered locally
			}
			h.deliver(cf.Payload)

		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			log.Println("[Hub] Stopped")
			return
		}
	}
}

// nilSafe turns a nil channel into a never-delivering one so select still works.
func (h *Hub) nilSafe(ch <-chan []byte) <-chan []byte {
	if ch != nil {
		return ch
	}
	return make(chan []byte)
}

// deliver writes a frame to every connected client, dropping clients whose
// send buffers are full.
func (h *Hub) deliver(message []byte) {
	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			delete(h.clients, client)
			close(client.send)
			log.Printf("[Hub] Client %s dropped: send buffer full", client.ID)
		}
	}
}

// Broadcast delivers a frame to local clients and publishes it for the
// other replicas.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		log.Println("[Hub] Broadcast buffer full, dropping frame")
		return
	}

	frame, err := json.Marshal(clusterFrame{Origin: h.instanceID, Payload: message})
	if err != nil {
		log.Printf("[Hub] Failed to marshal cluster frame: %v", err)
		return
	}
	if err := h.pubsub.Publish(broadcastChannel, frame); err != nil {
		log.Printf("[Hub] PubSub publish failed: %v", err)
	}
}

// Register queues a client for registration
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister queues a client for removal
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}
