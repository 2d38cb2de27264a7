package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// sendBuffer is how many events a slow client may lag before it is dropped
	sendBuffer = 64
)

// envelope is one event addressed to a profile
type envelope struct {
	profileID string
	payload   []byte
}

// Hub fans events out to the websocket clients of each profile
type Hub struct {
	upgrader websocket.Upgrader
	log      *zap.Logger

	mu      sync.RWMutex
	clients map[string]map[*Client]bool

	publish    chan envelope
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

type Client struct {
	hub       *Hub
	profileID string
	conn      *websocket.Conn
	send      chan []byte
}

// NewHub creates a hub accepting upgrades from the given origins. An empty list accepts any origin
func NewHub(allowedOrigins []string, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}

	h := &Hub{
		log:        log,
		clients:    make(map[string]map[*Client]bool),
		publish:    make(chan envelope, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}

	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || len(allowedOrigins) == 0 {
				return true
			}
			return slices.Contains(allowedOrigins, origin)
		},
	}

	return h
}

// Run processes registrations and events until ctx is done
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, set := range h.clients {
				for client := range set {
					close(client.send)
				}
			}
			h.clients = make(map[string]map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			set, ok := h.clients[client.profileID]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[client.profileID] = set
			}
			set[client] = true
			h.mu.Unlock()
			h.log.Debug("client connected", zap.String("profile_id", client.profileID), zap.Int("clients", len(set)))

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
			h.log.Debug("client disconnected", zap.String("profile_id", client.profileID))

		case msg := <-h.publish:
			h.mu.Lock()
			for client := range h.clients[msg.profileID] {
				select {
				case client.send <- msg.payload:
				default:
					h.log.Warn("client too slow, dropping", zap.String("profile_id", msg.profileID))
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove must be called with mu held
func (h *Hub) remove(client *Client) {
	set, ok := h.clients[client.profileID]
	if !ok || !set[client] {
		return
	}

	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.profileID)
	}
}

// Publish queues an event for every client of the profile. Having no clients is not an error
func (h *Hub) Publish(profileID string, event *models.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error("failed to encode event", zap.Error(err))
		return
	}

	select {
	case h.publish <- envelope{profileID: profileID, payload: payload}:
	case <-h.done:
	}
}

// ClientCount returns how many clients a profile has connected
func (h *Hub) ClientCount(profileID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[profileID])
}

// ServeWS upgrades the request and subscribes the connection to the profile's events
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, profileID string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{hub: h, profileID: profileID, conn: conn, send: make(chan []byte, sendBuffer)}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump only watches for the close; clients never send events
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Warn("websocket read error", zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.hub.log.Warn("websocket write error", zap.Error(err))
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
