package sse

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// EventType defines the SSE event name.
type EventType string

const (
	EventProductVerified EventType = "product.verified"
	EventProductApproved EventType = "product.approved"
	EventProductUpdated  EventType = "product.updated"
)

// ProductEvent is the payload pushed to a seller's open console tabs when
// the catalog reports a status change on one of their products.
type ProductEvent struct {
	Event      EventType `json:"event"`
	ProductID  string    `json:"productId"`
	SellerID   string    `json:"sellerId"`
	Name       string    `json:"name,omitempty"`
	IsVerified bool      `json:"isVerified"`
	IsApproved bool      `json:"isApproved"`
	Timestamp  time.Time `json:"timestamp"`
}

// Client represents a connected SSE console client.
type Client struct {
	ID       string
	SellerID string
	Events   chan []byte
}

// Hub manages SSE client connections and broadcasts.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewHub creates a new SSE hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a new client for a seller and returns it for streaming.
func (h *Hub) Register(clientID, sellerID string) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	c := &Client{
		ID:       clientID,
		SellerID: sellerID,
		Events:   make(chan []byte, 64),
	}
	h.clients[clientID] = c
	log.Info().Str("client_id", clientID).Str("seller_id", sellerID).Int("total_clients", len(h.clients)).Msg("SSE client connected")
	return c
}

// Unregister removes a client and closes its channel.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.clients[clientID]; ok {
		close(c.Events)
		delete(h.clients, clientID)
		log.Info().Str("client_id", clientID).Int("total_clients", len(h.clients)).Msg("SSE client disconnected")
	}
}

// Broadcast sends an event to every connected client of the event's
// seller. Non-blocking: drops message if client buffer is full.
func (h *Hub) Broadcast(event *ProductEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal SSE event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		if c.SellerID != event.SellerID {
			continue
		}
		select {
		case c.Events <- data:
		default:
			log.Warn().Str("client_id", c.ID).Msg("SSE client buffer full, dropping event")
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
