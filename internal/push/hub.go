package push

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Notification tells a user that a device has a new status.
type Notification struct {
	Device string `json:"device"`
}

const (
	writeWait = 10 * time.Second

	pongWait = 60 * time.Second

	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512

	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type delivery struct {
	users        []int64
	notification Notification
}

// Hub keeps the push connections of every user. Its client set is owned by
// Run.
type Hub struct {
	clients    map[int64]map[*client]struct{}
	broadcast  chan delivery
	register   chan *client
	unregister chan *client
	done       chan struct{}
	mu         sync.RWMutex
}

type client struct {
	id     string
	userID int64
	hub    *Hub
	conn   *websocket.Conn
	send   chan Notification
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[int64]map[*client]struct{}),
		broadcast:  make(chan delivery, 256),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Run serves registrations and broadcasts until ctx ends. It must be
// called once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	slog.InfoContext(ctx, "Push hub started...")
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, set := range h.clients {
				for c := range set {
					close(c.send)
				}
			}
			h.clients = make(map[int64]map[*client]struct{})
			h.mu.Unlock()
			slog.InfoContext(ctx, "Push hub stopped...")
			return

		case c := <-h.register:
			h.mu.Lock()
			set, ok := h.clients[c.userID]
			if !ok {
				set = make(map[*client]struct{})
				h.clients[c.userID] = set
			}
			set[c] = struct{}{}
			h.mu.Unlock()
			slog.InfoContext(ctx, "Push client connected", "user_id", c.userID, "client_id", c.id)

		case c := <-h.unregister:
			h.remove(c)
			slog.InfoContext(ctx, "Push client disconnected", "user_id", c.userID, "client_id", c.id)

		case d := <-h.broadcast:
			for _, userID := range d.users {
				h.mu.RLock()
				set := h.clients[userID]
				var slow []*client
				for c := range set {
					select {
					case c.send <- d.notification:
					default:
						slow = append(slow, c)
					}
				}
				h.mu.RUnlock()
				for _, c := range slow {
					slog.InfoContext(ctx, "Dropping slow push client", "user_id", c.userID, "client_id", c.id)
					h.remove(c)
				}
			}
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
}

// Notify queues a notification about device for each of the users. It
// never blocks; when the hub is saturated the notification is dropped.
func (h *Hub) Notify(users []int64, device string) {
	select {
	case h.broadcast <- delivery{users: users, notification: Notification{Device: device}}:
	default:
		slog.Error("Push broadcast channel full, dropping notification", "device", device)
	}
}

// ServeWS upgrades the request and registers the connection for userID.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID int64) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to upgrade push connection", "user_id", userID, "error", err)
		return
	}

	c := &client{
		id:     uuid.NewString(),
		userID: userID,
		hub:    h,
		conn:   conn,
		send:   make(chan Notification, sendBuffer),
	}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (h *Hub) ClientCount(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// readPump only drains control frames; clients never send data.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("Error reading push connection", "client_id", c.id, "error", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case n, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(n); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
