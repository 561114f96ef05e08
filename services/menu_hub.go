package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type MenuClient struct {
	Slug string
	Conn *websocket.Conn
}

// MenuHub fans menu-change events out to public viewers, keyed by menu slug.
// A phone showing the live menu reloads when it receives menu.updated.
type MenuHub struct {
	mu      sync.RWMutex
	clients map[string]map[*MenuClient]struct{}
}

func NewMenuHub() *MenuHub {
	return &MenuHub{clients: make(map[string]map[*MenuClient]struct{})}
}

func (h *MenuHub) Register(c *MenuClient) {
	h.mu.Lock()
	if h.clients[c.Slug] == nil {
		h.clients[c.Slug] = make(map[*MenuClient]struct{})
	}
	h.clients[c.Slug][c] = struct{}{}
	h.mu.Unlock()
}

func (h *MenuHub) Unregister(c *MenuClient) {
	h.mu.Lock()
	if set := h.clients[c.Slug]; set != nil {
		delete(set, c)
		if len(set) == 0 { delete(h.clients, c.Slug) }
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *MenuHub) BroadcastMenuUpdated(slug string) {
	msg, _ := json.Marshal(map[string]any{
		"event": "menu.updated",
		"slug":  slug,
		"at":    time.Now().UTC(),
	})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[slug] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
