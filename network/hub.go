// Package network streams game events and periodic snapshots to websocket spectators.
//
// The Hub never blocks the frame loop: each client owns a buffered send queue
// drained by its own write pump, and messages for a full queue are dropped.
package network

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/asparagus/constants"
	"github.com/lixenwraith/asparagus/core"
	"github.com/lixenwraith/asparagus/engine"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // read-only feed
	},
}

// Message is the wire envelope for every broadcast
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// SnapshotMessage is the JSON form of engine.Snapshot
type SnapshotMessage struct {
	Frame           int64   `json:"frame"`
	Angle           float64 `json:"angle"`
	AngularVelocity float64 `json:"angular_velocity"`
	Drift           float64 `json:"drift"`
	Inner           float64 `json:"inner"`
	Pose            string  `json:"pose"`
	Alive           bool    `json:"alive"`
	Recovering      bool    `json:"recovering"`
	LastLossSide    string  `json:"last_loss_side,omitempty"`
	ScoreMs         int64   `json:"score_ms"`
	BestMs          int64   `json:"best_ms"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans out engine events and snapshots to connected spectators
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}

	snapshotEvery int64
}

// NewHub creates an empty hub
func NewHub(cfg Config) *Hub {
	every := int64(cfg.SnapshotEvery)
	if every <= 0 {
		every = constants.SpectatorSnapshotEvery
	}
	return &Hub{
		clients:       make(map[*client]struct{}),
		snapshotEvery: every,
	}
}

// ServeHTTP upgrades the request and registers the connection as a spectator
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SPECTATOR] upgrade failed: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, constants.SpectatorSendBuffer),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	log.Printf("[SPECTATOR] connected %s", conn.RemoteAddr())

	core.Go(func() { h.writePump(c) })
	core.Go(func() { h.readPump(c) })
}

// Count returns the number of connected spectators
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues a typed message for every spectator, full queues drop it
func (h *Hub) Broadcast(msgType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[SPECTATOR] marshal %s: %v", msgType, err)
		return
	}
	frame, err := json.Marshal(Message{Type: msgType, Data: data})
	if err != nil {
		log.Printf("[SPECTATOR] marshal envelope %s: %v", msgType, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			log.Printf("[SPECTATOR] send buffer full, dropping %s", msgType)
		}
	}
}

// Close disconnects every spectator
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// HandleEvent implements engine.EventHandler
func (h *Hub) HandleEvent(ev engine.GameEvent) {
	h.Broadcast(ev.Type.String(), ev.Payload)
}

// EventTypes implements engine.EventHandler
func (h *Hub) EventTypes() []engine.EventType {
	return engine.AllEventTypes
}

// Sync implements engine.Presenter, broadcasting every snapshotEvery frames
func (h *Hub) Sync(snap engine.Snapshot, _ time.Duration) {
	if snap.Frame%h.snapshotEvery != 0 || h.Count() == 0 {
		return
	}
	h.Broadcast("snapshot", NewSnapshotMessage(snap))
}

// NewSnapshotMessage converts a snapshot to its wire form
func NewSnapshotMessage(snap engine.Snapshot) SnapshotMessage {
	msg := SnapshotMessage{
		Frame:           snap.Frame,
		Angle:           snap.Angle,
		AngularVelocity: snap.AngularVelocity,
		Drift:           snap.Drift,
		Inner:           snap.Inner,
		Pose:            snap.Pose.String(),
		Alive:           snap.Alive,
		Recovering:      snap.Recovering,
		ScoreMs:         snap.Score.Milliseconds(),
		BestMs:          snap.Best.Milliseconds(),
	}
	if snap.LastLossSide != core.SideNone {
		msg.LastLossSide = snap.LastLossSide.String()
	}
	return msg
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		log.Printf("[SPECTATOR] disconnected %s", c.conn.RemoteAddr())
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(constants.SpectatorPingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(constants.SpectatorWriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("[SPECTATOR] write error: %v", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(constants.SpectatorWriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames, its only job is noticing the close
func (h *Hub) readPump(c *client) {
	defer h.unregister(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
