package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/founderhub/founderhub/internal/models"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 70 * time.Second
	wsPingPeriod = 30 * time.Second
)

type wsEnvelope struct {
	Type    string          `json:"type"`
	GroupID int             `json:"group_id,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// HandleWebSocket upgrades the connection and streams appended chat
// messages. An optional group_id query param narrows the stream to one
// group; without it the client sees every group.
func (h *Handlers) HandleWebSocket(c *gin.Context) {
	groupID := 0
	if raw := c.Query("group_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
			return
		}
		if _, ok := h.store.ChatGroupByID(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "chat group not found"})
			return
		}
		groupID = id
	}

	conn, err := h.wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Default().Warn("ws upgrade failed", "ip", c.ClientIP(), "error", err)
		return
	}

	client := &wsClient{
		id:      uuid.NewString(),
		conn:    conn,
		send:    make(chan []byte, 32),
		groupID: groupID,
	}

	h.hub.Add(client)
	slog.Default().Debug("ws connected", "client_id", client.id, "group_id", groupID)

	welcome, _ := json.Marshal(wsEnvelope{Type: "hello", GroupID: groupID})
	if !client.trySend(welcome) {
		_ = client.conn.Close()
		h.hub.Remove(client.id)
		return
	}

	go h.writePump(client)
	h.readPump(client)
}

func (h *Handlers) broadcastMessage(groupID int, message models.Message) {
	data, err := json.Marshal(message)
	if err != nil {
		return
	}
	payload, _ := json.Marshal(wsEnvelope{
		Type:    "message",
		GroupID: groupID,
		Data:    data,
	})
	h.hub.BroadcastGroup(groupID, payload)
}

// readPump drains the connection to keep pong handling alive. Inbound
// frames other than pings are ignored; mutations go through the HTTP API.
func (h *Handlers) readPump(client *wsClient) {
	defer func() {
		slog.Default().Debug("ws disconnect", "client_id", client.id)
		_ = client.conn.Close()
		h.hub.Remove(client.id)
	}()

	_ = client.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	client.conn.SetPongHandler(func(string) error {
		_ = client.conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			slog.Default().Debug("ws read error", "client_id", client.id, "error", err)
			return
		}
	}
}

func (h *Handlers) writePump(client *wsClient) {
	defer func() {
		_ = client.conn.Close()
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-client.send:
			if !ok {
				return
			}
			_ = client.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := client.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
