package websocket

import (
	"encoding/json"
	"log"
)

// Event types pushed to subscribers.
const (
	EventLeaderboardUpdate = "leaderboard:update"
	EventResultRecorded    = "result:recorded"
	EventResultDeleted     = "result:deleted"
)

// Event is the envelope of every websocket message.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Manager is the typed broadcast facade used by the service layer.
type Manager struct {
	hub *Hub
}

// NewManager creates a new websocket manager
func NewManager(hub *Hub) *Manager {
	return &Manager{hub: hub}
}

// BroadcastEvent pushes an event to every connected subscriber.
func (m *Manager) BroadcastEvent(eventType string, data interface{}) {
	payload, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		log.Printf("[WSManager] Failed to marshal %s event: %v", eventType, err)
		return
	}
	m.hub.Broadcast(payload)
}
