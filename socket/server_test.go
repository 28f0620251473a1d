package socket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, event string, data interface{}) {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Event{Event: event, Data: raw}))
}

func waitForRoom(t *testing.T, hub *Hub, room string, size int) {
	t.Helper()

	require.Eventually(t, func() bool {
		return hub.RoomSize(room) == size
	}, time.Second, 5*time.Millisecond, "room %s never reached size %d", room, size)
}

func TestRelayDeliversToRecipientRoom(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(ServeWS(hub, "*"))
	defer server.Close()

	ann := dial(t, server)
	bo := dial(t, server)

	send(t, ann, "joinRoom", "ann-id")
	send(t, bo, "joinRoom", "bo-id")
	waitForRoom(t, hub, "ann-id", 1)
	waitForRoom(t, hub, "bo-id", 1)

	send(t, ann, "sendMessage", ChatEvent{ToUserID: "bo-id", FromUser: "ann-id", Message: "hello"})

	bo.SetReadDeadline(time.Now().Add(time.Second))
	var received Event
	require.NoError(t, bo.ReadJSON(&received))
	assert.Equal(t, "receiveMessage", received.Event)

	var payload ChatEvent
	require.NoError(t, json.Unmarshal(received.Data, &payload))
	assert.Equal(t, "ann-id", payload.FromUser)
	assert.Equal(t, "hello", payload.Message)

	// The sender's own room hears nothing.
	ann.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	var stray Event
	assert.Error(t, ann.ReadJSON(&stray))
}

func TestRelayTypingSignal(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(ServeWS(hub, "*"))
	defer server.Close()

	ann := dial(t, server)
	bo := dial(t, server)

	send(t, ann, "joinRoom", "ann-id")
	send(t, bo, "joinRoom", "bo-id")
	waitForRoom(t, hub, "bo-id", 1)

	send(t, ann, "typing", TypingEvent{ToUserID: "bo-id", FromUser: "ann-id"})

	bo.SetReadDeadline(time.Now().Add(time.Second))
	var received Event
	require.NoError(t, bo.ReadJSON(&received))
	assert.Equal(t, "typing", received.Event)
}

func TestMessageToEmptyRoomIsDropped(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(ServeWS(hub, "*"))
	defer server.Close()

	ann := dial(t, server)
	send(t, ann, "joinRoom", "ann-id")
	waitForRoom(t, hub, "ann-id", 1)

	// Nobody is in bo-id's room; the relay drops the event silently.
	send(t, ann, "sendMessage", ChatEvent{ToUserID: "bo-id", FromUser: "ann-id", Message: "into the void"})

	ann.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	var stray Event
	assert.Error(t, ann.ReadJSON(&stray))
}

func TestDisconnectLeavesRoom(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(ServeWS(hub, "*"))
	defer server.Close()

	ann := dial(t, server)
	send(t, ann, "joinRoom", "ann-id")
	waitForRoom(t, hub, "ann-id", 1)

	ann.Close()
	waitForRoom(t, hub, "ann-id", 0)
}

func TestRejoinMovesConnection(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(ServeWS(hub, "*"))
	defer server.Close()

	conn := dial(t, server)
	send(t, conn, "joinRoom", "first")
	waitForRoom(t, hub, "first", 1)

	send(t, conn, "joinRoom", "second")
	waitForRoom(t, hub, "second", 1)
	assert.Equal(t, 0, hub.RoomSize("first"))
}
