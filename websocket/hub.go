package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains the set of connected clients indexed by user ID and
// pushes notifications to them
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Connections per user (userID -> clients)
	users map[uint]map[*Client]bool

	// Mutex for users map
	usersMux sync.RWMutex

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client
}

// NewHub creates a new hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		users:      make(map[uint]map[*Client]bool),
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.addUserClient(client)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.removeUserClient(client)
			}
		}
	}
}

func (h *Hub) addUserClient(client *Client) {
	h.usersMux.Lock()
	defer h.usersMux.Unlock()

	if _, ok := h.users[client.userID]; !ok {
		h.users[client.userID] = make(map[*Client]bool)
	}
	h.users[client.userID][client] = true
}

func (h *Hub) removeUserClient(client *Client) {
	h.usersMux.Lock()
	defer h.usersMux.Unlock()

	if clients, ok := h.users[client.userID]; ok {
		delete(clients, client)
		// Clean up users with no remaining connections
		if len(clients) == 0 {
			delete(h.users, client.userID)
		}
	}
}

// sendToUser delivers a message to every connection of one user
func (h *Hub) sendToUser(userID uint, message []byte) {
	var slow []*Client

	h.usersMux.RLock()
	for client := range h.users[userID] {
		select {
		case client.send <- message:
		default:
			slow = append(slow, client)
		}
	}
	h.usersMux.RUnlock()

	// Slow clients are evicted through the unregister path, which owns
	// the clients map and closes the send channel exactly once.
	for _, client := range slow {
		h.unregister <- client
	}
}

// NotifyUser sends a typed notification to all of a user's connections.
// Users with no open connection are silently skipped.
func NotifyUser(userID uint, msgType string, payload interface{}) {
	if hub == nil {
		return
	}

	msg := Message{
		Type:    msgType,
		Payload: payload,
	}

	msgBytes, err := json.Marshal(msg)
	if err != nil {
		log.Printf("error marshaling notification: %v", err)
		return
	}

	hub.sendToUser(userID, msgBytes)
}

// Global hub instance
var hub *Hub

// InitHub initializes the global hub
func InitHub() {
	hub = NewHub()
	go hub.Run()
}
