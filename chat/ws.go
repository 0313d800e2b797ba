package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"wayfare/dialogue"
	"wayfare/models"
	"wayfare/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// inboundPayload represents what clients send us:
type inboundPayload struct {
	Action  string `json:"action"`            // "chat", "clear"
	Content string `json:"content,omitempty"` // for chat
}

// outboundPayload is what we broadcast to every client:
type outboundPayload struct {
	Action         string            `json:"action"` // "chat", "reply", "cleared", "error"
	ID             string            `json:"id,omitempty"`
	ConversationID string            `json:"conversationId,omitempty"`
	Content        string            `json:"content,omitempty"`
	Itinerary      *models.Itinerary `json:"itinerary,omitempty"`
	Timestamp      int64             `json:"timestamp"`
}

// WebSocketHandler attaches a client to a conversation. Every "chat" frame
// runs one dialogue turn; the user's message and the assistant's reply are
// both broadcast to the room, so multiple tabs stay in sync.
func WebSocketHandler(hub *Hub, engine *dialogue.Engine) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		convid := ps.ByName("convid")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		client := &Client{
			Conn:           conn,
			Send:           make(chan []byte, 256),
			ConversationID: convid,
		}

		hub.register <- client
		go writePump(client)
		go readPump(client, hub, engine)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func readPump(c *Client, hub *Hub, engine *dialogue.Engine) {
	defer func() {
		hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}

		var in inboundPayload
		if err := json.Unmarshal(raw, &in); err != nil {
			log.Println("invalid payload:", err)
			continue
		}

		switch in.Action {
		case "chat":
			echo := outboundPayload{
				Action:         "chat",
				ID:             utils.GenerateRandomString(16),
				ConversationID: c.ConversationID,
				Content:        in.Content,
				Timestamp:      time.Now().Unix(),
			}
			if data, _ := json.Marshal(echo); data != nil {
				hub.broadcast <- broadcastMsg{ConversationID: c.ConversationID, Data: data}
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			res, err := engine.ProcessTurn(ctx, c.ConversationID, in.Content)
			cancel()
			if err != nil {
				log.Printf("turn failed for %s: %v", c.ConversationID, err)
				out := outboundPayload{
					Action:         "error",
					ConversationID: c.ConversationID,
					Content:        "That message got lost in transit, please send it again.",
					Timestamp:      time.Now().Unix(),
				}
				if data, _ := json.Marshal(out); data != nil {
					hub.broadcast <- broadcastMsg{ConversationID: c.ConversationID, Data: data}
				}
				continue
			}

			out := outboundPayload{
				Action:         "reply",
				ID:             utils.GenerateRandomString(16),
				ConversationID: c.ConversationID,
				Content:        res.Reply,
				Itinerary:      res.Itinerary,
				Timestamp:      time.Now().Unix(),
			}
			if data, _ := json.Marshal(out); data != nil {
				hub.broadcast <- broadcastMsg{ConversationID: c.ConversationID, Data: data}
			}

		case "clear":
			engine.Clear(c.ConversationID)
			out := outboundPayload{
				Action:         "cleared",
				ConversationID: c.ConversationID,
				Timestamp:      time.Now().Unix(),
			}
			if data, _ := json.Marshal(out); data != nil {
				hub.broadcast <- broadcastMsg{ConversationID: c.ConversationID, Data: data}
			}

		default:
			log.Println("unknown action:", in.Action)
		}
	}
}
