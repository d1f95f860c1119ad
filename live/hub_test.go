package live

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(NewClient(hub, conn, RoomPool))
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_Broadcast(t *testing.T) {
	hub := newTestHub(t)
	conn := dial(t, hub)

	require.Eventually(t, func() bool { return hub.ClientCount(RoomPool) == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(MessageLeaderboardUpdated, map[string]int{"entries": 3})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]int `json:"payload"`
		RoomID  string         `json:"room_id"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, MessageLeaderboardUpdated, msg.Type)
	assert.Equal(t, RoomPool, msg.RoomID)
	assert.Equal(t, 3, msg.Payload["entries"])
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub := newTestHub(t)
	conn := dial(t, hub)

	require.Eventually(t, func() bool { return hub.ClientCount(RoomPool) == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.ClientCount(RoomPool) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastToEmptyRoom(t *testing.T) {
	hub := newTestHub(t)
	assert.NotPanics(t, func() {
		hub.BroadcastToRoom("nobody", Message{Type: MessageResultUpdated})
	})
}
