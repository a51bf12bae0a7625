// Package sse fans trip events out to connected clients. One Hub serves
// the whole process; clients subscribe per trip and slow clients are
// skipped rather than blocking the broadcast loop.
package sse

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type MemberJoinedEvent struct {
	TripID uuid.UUID `json:"trip_id"`
	UserID uuid.UUID `json:"user_id"`
}

type WishlistUpdatedEvent struct {
	TripID uuid.UUID `json:"trip_id"`
	ItemID uuid.UUID `json:"item_id"`
	Votes  int       `json:"votes"`
}

type ItineraryUpdatedEvent struct {
	TripID     uuid.UUID `json:"trip_id"`
	ActivityID uuid.UUID `json:"activity_id"`
}

type Client struct {
	ID     string
	UserID uuid.UUID
	Trips  map[uuid.UUID]bool
	Send   chan []byte
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan *TripMessage
	mu         sync.RWMutex
}

type TripMessage struct {
	TripID uuid.UUID
	Event  Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *TripMessage, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Event)
			for _, client := range h.clients {
				if client.Trips[msg.TripID] {
					select {
					case client.Send <- data:
					default:
						// Client buffer full, skip
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) BroadcastMemberJoined(tripID, userID uuid.UUID) {
	h.broadcast <- &TripMessage{
		TripID: tripID,
		Event: Event{
			Type: "member_joined",
			Data: MemberJoinedEvent{TripID: tripID, UserID: userID},
		},
	}
}

func (h *Hub) BroadcastWishlistUpdate(tripID, itemID uuid.UUID, votes int) {
	h.broadcast <- &TripMessage{
		TripID: tripID,
		Event: Event{
			Type: "wishlist_updated",
			Data: WishlistUpdatedEvent{TripID: tripID, ItemID: itemID, Votes: votes},
		},
	}
}

func (h *Hub) BroadcastItineraryUpdate(tripID, activityID uuid.UUID) {
	h.broadcast <- &TripMessage{
		TripID: tripID,
		Event: Event{
			Type: "itinerary_updated",
			Data: ItineraryUpdatedEvent{TripID: tripID, ActivityID: activityID},
		},
	}
}
