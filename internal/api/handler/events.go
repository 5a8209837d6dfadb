package handler

import (
	"net/http"

	"github.com/mcoot/courtbot/internal/dependencies/random"
	"github.com/mcoot/courtbot/internal/web/sse"
)

// EventsHandler streams status updates over SSE
type EventsHandler struct {
	hub    *sse.Hub
	random random.Random
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub *sse.Hub, rnd random.Random) *EventsHandler {
	return &EventsHandler{hub: hub, random: rnd}
}

// Stream handles GET /api/v1/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	clientID := "sub-" + h.random.String(8, random.Alphanumeric)
	sse.ServeSSE(w, r, h.hub, clientID)
}
