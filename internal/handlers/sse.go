package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/vracar/tripfolio/internal/middleware"
	"github.com/vracar/tripfolio/internal/sse"
)

type SSEHandler struct {
	hub         HubInterface
	tripService TripServiceInterface
}

func NewSSEHandler(hub HubInterface, tripService TripServiceInterface) *SSEHandler {
	return &SSEHandler{
		hub:         hub,
		tripService: tripService,
	}
}

// Connect opens a per-trip event stream. Membership is checked once at
// connect time; a member removed mid-stream keeps the connection until it
// closes.
func (h *SSEHandler) Connect(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		c.BadRequest("invalid trip id")
		return
	}

	isMember, err := h.tripService.IsMember(context.Background(), tripID, userID)
	if err != nil || !isMember {
		c.NotFound("trip not found")
		return
	}

	sseCtx := c.SSE()

	clientID := uuid.New().String()
	client := &sse.Client{
		ID:     clientID,
		UserID: userID,
		Trips:  map[uuid.UUID]bool{tripID: true},
		Send:   make(chan []byte, 256),
	}

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	if err := sseCtx.SendJSON(map[string]string{
		"type":      "connected",
		"client_id": clientID,
	}, "system", ""); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		<-c.Request.Context().Done()
		close(done)
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := sseCtx.Send(string(msg), "message", ""); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
