package handlers

import (
	"sync"

	"github.com/gorilla/websocket"
)

type wsClient struct {
	id        string
	conn      *websocket.Conn
	send      chan []byte
	groupID   int // 0 subscribes to every group
	closeOnce sync.Once
}

func (c *wsClient) trySend(payload []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *wsClient) closeSend() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// Hub tracks websocket viewers and pushes appended chat messages to them.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*wsClient
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*wsClient)}
}

func (h *Hub) Add(client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old := h.clients[client.id]; old != nil {
		_ = old.conn.Close()
		old.closeSend()
	}
	h.clients[client.id] = client
}

func (h *Hub) Remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client, ok := h.clients[id]; ok {
		client.closeSend()
	}
	delete(h.clients, id)
}

// BroadcastGroup delivers payload to every client subscribed to the group
// (or to all groups). Clients with full send buffers are dropped.
func (h *Hub) BroadcastGroup(groupID int, payload []byte) {
	h.mu.Lock()
	clients := make([]*wsClient, 0, len(h.clients))
	for _, client := range h.clients {
		if client.groupID == 0 || client.groupID == groupID {
			clients = append(clients, client)
		}
	}
	h.mu.Unlock()

	for _, client := range clients {
		if !client.trySend(payload) {
			_ = client.conn.Close()
		}
	}
}
