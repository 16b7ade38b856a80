package handler

import (
	"encoding/json"
	"log"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/me-lucifer/protocolGuestSeatingPlatform-sub000/helper"
)

// Hub tracks dashboard websocket connections per event.
type Hub struct {
	mu    sync.Mutex
	conns map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[uint]map[*websocket.Conn]bool)}
}

func (hub *Hub) add(eventId uint, c *websocket.Conn) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	if hub.conns[eventId] == nil {
		hub.conns[eventId] = make(map[*websocket.Conn]bool)
	}
	hub.conns[eventId][c] = true
}

func (hub *Hub) remove(eventId uint, c *websocket.Conn) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	delete(hub.conns[eventId], c)
	if len(hub.conns[eventId]) == 0 {
		delete(hub.conns, eventId)
	}
}

// EventWebsocket streams the live summary for one event. The first frame is
// sent on connect, then on every store change and every cosmetic refresh.
func (h *Handler) EventWebsocket(c *websocket.Conn) {
	eventIdStr := c.Params("eventId")
	id64, err := strconv.ParseUint(eventIdStr, 10, 64)
	if err != nil {
		log.Printf("invalid eventId for ws: %s", eventIdStr)
		c.Close()
		return
	}
	eventId := uint(id64)

	h.hub.add(eventId, c)
	log.Printf("ws connected for event %d", eventId)

	defer func() {
		h.hub.remove(eventId, c)
		c.Close()
		log.Printf("ws closed for event %d", eventId)
	}()

	h.BroadcastSummaries()

	// Hold the connection open; clients never send anything meaningful.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

// BroadcastSummaries pushes a fresh summary to every connected dashboard.
// Read-only over the store, safe to call from the refresh scheduler.
func (h *Handler) BroadcastSummaries() {
	h.hub.mu.Lock()
	watched := make([]uint, 0, len(h.hub.conns))
	for eventId := range h.hub.conns {
		watched = append(watched, eventId)
	}
	h.hub.mu.Unlock()

	if len(watched) == 0 {
		return
	}

	events := h.store.Events()
	guests := h.store.Guests()

	for _, eventId := range watched {
		var payload []byte
		for _, e := range events {
			if e.ID == eventId {
				b, err := json.Marshal(helper.Summarize(e, guests))
				if err != nil {
					log.Printf("summary marshal for event %d: %v", eventId, err)
					break
				}
				payload = b
				break
			}
		}
		if payload == nil {
			continue
		}

		h.hub.mu.Lock()
		for conn := range h.hub.conns[eventId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Printf("ws write for event %d: %v", eventId, err)
			}
		}
		h.hub.mu.Unlock()
	}
}
