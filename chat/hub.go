package chat

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one websocket connection following a conversation.
type Client struct {
	Conn           *websocket.Conn
	Send           chan []byte
	ConversationID string
}

type broadcastMsg struct {
	ConversationID string
	Data           []byte
}

// Hub fans replies out to every client watching a conversation.
type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	quit       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.ConversationID] == nil {
				h.rooms[c.ConversationID] = make(map[*Client]bool)
			}
			h.rooms[c.ConversationID][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			// A slow client may already be evicted by the broadcast
			// branch; closing its Send twice would panic the hub.
			if conns := h.rooms[c.ConversationID]; conns != nil {
				if _, ok := conns[c]; ok {
					delete(conns, c)
					close(c.Send)
				}
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.ConversationID] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.ConversationID], c)
				}
			}
			h.mu.Unlock()

		case <-h.quit:
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.quit)
}

// Broadcast sends data to every client following the conversation.
func (h *Hub) Broadcast(conversationID string, data []byte) {
	h.broadcast <- broadcastMsg{ConversationID: conversationID, Data: data}
}
