// Package realtime fans conversation events out to websocket connections grouped in rooms,
// one room per conversation.
package realtime

import (
	"context"
	"fmt"
	"sync"

	"github.com/s21platform/conversation-service/internal/model"
)

type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
	relay Relay
}

func NewHub(relay Relay) *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
		relay: relay,
	}
}

// Join adds c to the room and queues the acknowledgement under the same lock, so the ack is
// the first frame of that room the client sees.
func (h *Hub) Join(c *Client, conversationID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[conversationID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[conversationID] = room
	}
	if _, ok := room[c]; !ok {
		room[c] = struct{}{}
		c.rooms[conversationID] = struct{}{}
		subscriptions.Inc()
	}

	return c.enqueue(encodeControl(ControlFrame{Type: FrameJoined, ConversationID: conversationID}))
}

func (h *Hub) Leave(c *Client, conversationID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leaveLocked(c, conversationID)
}

// LeaveAll drops every membership of c. Called when the connection goes away.
func (h *Hub) LeaveAll(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conversationID := range c.rooms {
		h.leaveLocked(c, conversationID)
	}
}

func (h *Hub) leaveLocked(c *Client, conversationID string) {
	room, ok := h.rooms[conversationID]
	if !ok {
		return
	}
	if _, ok := room[c]; !ok {
		return
	}

	delete(room, c)
	delete(c.rooms, conversationID)
	subscriptions.Dec()
	if len(room) == 0 {
		delete(h.rooms, conversationID)
	}
}

// Members reports how many local connections are in the room.
func (h *Hub) Members(conversationID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[conversationID])
}

// Publish delivers locally and then hands the event to the relay, if any.
func (h *Hub) Publish(ctx context.Context, event model.Event) error {
	if err := h.Deliver(event); err != nil {
		return err
	}

	if h.relay == nil {
		return nil
	}
	if err := h.relay.Publish(ctx, event); err != nil {
		relayErrors.WithLabelValues("out").Inc()
		return fmt.Errorf("failed to relay event: %w", err)
	}
	return nil
}

// Drop removes a client whose send buffer is full from every room and closes it. The client
// catches up by polling once it reconnects.
func (h *Hub) Drop(c *Client) {
	slowConsumers.Inc()
	h.LeaveAll(c)
	c.Close()
}

// Deliver writes the event to every local member of its room. Members whose buffer is full
// are disconnected rather than allowed to stall the room.
func (h *Hub) Deliver(event model.Event) error {
	frame, err := encodeEvent(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	var slow []*Client

	h.mu.RLock()
	for c := range h.rooms[event.ConversationID] {
		if !c.enqueue(frame) {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.Drop(c)
	}

	return nil
}
