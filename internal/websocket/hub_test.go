package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/hydroflow/internal/models"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil, nil)
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, r.URL.Query().Get("profile"))
	}))

	t.Cleanup(func() {
		server.Close()
		cancel()
	})
	return hub, server
}

func dial(t *testing.T, server *httptest.Server, profileID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?profile=" + profileID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestPublishReachesOnlyTheProfile(t *testing.T) {
	hub, server := startHub(t)

	alice := dial(t, server, "alice")
	bob := dial(t, server, "bob")

	require.Eventually(t, func() bool {
		return hub.ClientCount("alice") == 1 && hub.ClientCount("bob") == 1
	}, time.Second, 10*time.Millisecond)

	hub.Publish("alice", &models.Event{Type: models.EventTypeSound, Cue: models.SoundWater})

	_ = alice.SetReadDeadline(time.Now().Add(time.Second))
	_, payload, err := alice.ReadMessage()
	require.NoError(t, err)

	var event models.Event
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, models.EventTypeSound, event.Type)
	assert.Equal(t, models.SoundWater, event.Cue)

	_ = bob.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err = bob.ReadMessage()
	assert.Error(t, err, "bob receives nothing")
}

func TestPublishWithoutClients(t *testing.T) {
	hub, _ := startHub(t)

	hub.Publish("nobody", &models.Event{Type: models.EventTypeToast, Title: "hi"})
	assert.Equal(t, 0, hub.ClientCount("nobody"))
}

func TestDisconnectUnregisters(t *testing.T) {
	hub, server := startHub(t)

	conn := dial(t, server, "alice")
	require.Eventually(t, func() bool { return hub.ClientCount("alice") == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount("alice") == 0 }, time.Second, 10*time.Millisecond)
}

func TestCheckOrigin(t *testing.T) {
	hub := NewHub([]string{"http://localhost:3000"}, nil)

	r := httptest.NewRequest(http.MethodGet, "/ws", nil)
	r.Header.Set("Origin", "http://evil.example")
	assert.False(t, hub.upgrader.CheckOrigin(r))

	r.Header.Set("Origin", "http://localhost:3000")
	assert.True(t, hub.upgrader.CheckOrigin(r))
}

func TestPublishAfterShutdownDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil, nil)
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	for i := 0; i < 300; i++ {
		hub.Publish("alice", &models.Event{Type: models.EventTypeToast})
	}
}
