package socket

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// Event is the JSON envelope for everything crossing the socket
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// ChatEvent is the payload of sendMessage / receiveMessage events. The relay
// forwards it verbatim; persistence happens on the REST path.
type ChatEvent struct {
	ToUserID string `json:"toUserId"`
	FromUser string `json:"fromUser"`
	Message  string `json:"message"`
}

// TypingEvent is the payload of typing events
type TypingEvent struct {
	ToUserID string `json:"toUserId"`
	FromUser string `json:"fromUser"`
}

// ServeWS upgrades the request to a websocket and runs the connection's
// read/write pumps. allowedOrigin "*" disables the origin check.
func ServeWS(hub *Hub, allowedOrigin string) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "*" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("❌ Socket upgrade failed: %v", err)
			return
		}
		log.Println("🟢 Socket connected")

		client := newClient(hub, conn)
		go client.writePump()
		go client.readPump()
	}
}

func (c *Client) handleEvent(raw []byte) {
	var event Event
	if err := json.Unmarshal(raw, &event); err != nil {
		log.Printf("❌ Invalid socket event: %v", err)
		return
	}

	switch event.Event {
	case "joinRoom":
		var userID string
		if err := json.Unmarshal(event.Data, &userID); err != nil || userID == "" {
			log.Println("❌ Invalid userId in joinRoom event")
			return
		}
		c.hub.Join(userID, c)
		log.Printf("👥 Socket joined room %s", userID)

	case "sendMessage":
		var message ChatEvent
		if err := json.Unmarshal(event.Data, &message); err != nil || message.ToUserID == "" {
			log.Println("❌ Invalid sendMessage event")
			return
		}
		c.relay(message.ToUserID, "receiveMessage", event.Data)

	case "typing":
		var typing TypingEvent
		if err := json.Unmarshal(event.Data, &typing); err != nil || typing.ToUserID == "" {
			log.Println("❌ Invalid typing event")
			return
		}
		c.relay(typing.ToUserID, "typing", event.Data)

	default:
		log.Printf("⚠️ Unknown socket event: %s", event.Event)
	}
}

// relay rebroadcasts a payload to the recipient's room under a new event name
func (c *Client) relay(room, eventName string, data json.RawMessage) {
	payload, err := json.Marshal(Event{Event: eventName, Data: data})
	if err != nil {
		log.Printf("❌ Failed to marshal %s event: %v", eventName, err)
		return
	}
	c.hub.Broadcast(room, payload)
}
