// Package bridge mirrors transmitted frames to websocket clients so a
// strip can be watched from a browser while, or instead of, driving real
// hardware.
package bridge

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/tinyws2812/ws2812"
)

// Frame is the JSON payload sent to every client.
type Frame struct {
	Seq    uint64     `json:"seq"`
	Pixels [][3]uint8 `json:"pixels"`
}

// Hub fans frames out to connected clients. The zero value is not usable;
// call NewHub.
type Hub struct {
	up websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	seq     uint64
}

func NewHub() *Hub {
	return &Hub{
		up: websocket.Upgrader{
			// The bridge serves a local preview page; any origin may read.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: map[*websocket.Conn]bool{},
	}
}

// Handler upgrades the request and keeps the connection registered until
// the peer goes away.
func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	c, err := h.up.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("bridge: upgrade failed")
		return
	}
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	log.Info().Str("peer", c.RemoteAddr().String()).Msg("bridge: client connected")

	// Drain the read side to notice the close handshake.
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
		h.drop(c)
	}()
}

// Broadcast serializes pxls and sends the frame to every client. Clients
// whose write fails are dropped; a preview must never stall transmission.
func (h *Hub) Broadcast(pxls []ws2812.RGB) {
	f := Frame{Pixels: make([][3]uint8, len(pxls))}
	for i, p := range pxls {
		f.Pixels[i] = [3]uint8{p.R, p.G, p.B}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.seq++
	f.Seq = h.seq

	payload, err := json.Marshal(f)
	if err != nil {
		log.Error().Err(err).Msg("bridge: marshal frame")
		return
	}
	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Debug().Err(err).Msg("bridge: dropping client")
			c.Close()
			delete(h.clients, c)
		}
	}
}

// Count reports the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) drop(c *websocket.Conn) {
	h.mu.Lock()
	if h.clients[c] {
		delete(h.clients, c)
		c.Close()
	}
	h.mu.Unlock()
	log.Info().Msg("bridge: client disconnected")
}
