// Package broadcast publishes intents and game state to websocket clients.
//
// Messages are JSON text frames with an envelope of {type, ts, data}. The
// types are "intent" and "state". Publishing never blocks the caller and
// clients that can't keep up are disconnected.
package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/updown/intent"
	"github.com/jetsetilly/updown/logger"
	"github.com/jetsetilly/updown/trainer"
)

// Path at which the websocket is served by Start()
const Path = "/intents"

const (
	writeWait  = 5 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 20 * time.Second

	queueLen = 64
	sendLen  = 32
)

type envelope struct {
	Type string    `json:"type"`
	Ts   time.Time `json:"ts"`
	Data any       `json:"data,omitempty"`
}

type intentData struct {
	Direction string `json:"direction"`
	Source    string `json:"source"`
}

type stateData struct {
	Selected  string `json:"selected"`
	Target    string `json:"target"`
	Toast     string `json:"toast,omitempty"`
	Successes int    `json:"successes"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	addr string
}

// Hub tracks connected clients. It implements http.Handler
type Hub struct {
	upgrader websocket.Upgrader
	queue    chan []byte

	// the clients map is accessed by the Run() goroutine and by the HTTP
	// handler goroutines
	crit    sync.Mutex
	clients map[*client]struct{}
}

// NewHub is the preferred method of initialisation for the Hub type. The
// Run() function must be called for messages to be delivered
func NewHub() *Hub {
	return &Hub{
		queue:   make(chan []byte, queueLen),
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	h.crit.Lock()
	defer h.crit.Unlock()
	return len(h.clients)
}

// PublishIntent sends the intent to all clients
func (h *Hub) PublishIntent(in intent.Intent) {
	h.publish("intent", in.Timestamp, intentData{
		Direction: in.Direction.String(),
		Source:    in.Source.String(),
	})
}

// PublishState sends the game state to all clients
func (h *Hub) PublishState(s trainer.State) {
	h.publish("state", time.Now(), stateData{
		Selected:  s.Selected.String(),
		Target:    s.Target.String(),
		Toast:     s.Toast,
		Successes: s.Successes,
	})
}

func (h *Hub) publish(typ string, ts time.Time, data any) {
	b, err := json.Marshal(envelope{Type: typ, Ts: ts, Data: data})
	if err != nil {
		logger.Log(logger.Allow, "broadcast", err)
		return
	}
	select {
	case h.queue <- b:
	default:
		logger.Log(logger.Allow, "broadcast", "queue full. dropping message")
	}
}

// Run delivers published messages until the context is cancelled. All
// clients are disconnected when Run() returns
func (h *Hub) Run(ctx context.Context) {
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return
		case b := <-h.queue:
			var slow []*client

			h.crit.Lock()
			for c := range h.clients {
				select {
				case c.send <- b:
				default:
					slow = append(slow, c)
				}
			}
			h.crit.Unlock()

			for _, c := range slow {
				h.remove(c, "too slow")
			}
		}
	}
}

func (h *Hub) closeAll() {
	h.crit.Lock()
	defer h.crit.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
		c.conn.Close()
	}
}

// remove is safe to call more than once for the same client
func (h *Hub) remove(c *client, reason string) {
	h.crit.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.crit.Unlock()

	if ok {
		c.conn.Close()
		logger.Logf(logger.Allow, "broadcast", "%s disconnected: %s", c.addr, reason)
	}
}

// ServeHTTP implements the http.Handler interface
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log(logger.Allow, "broadcast", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, sendLen),
		addr: r.RemoteAddr,
	}

	h.crit.Lock()
	h.clients[c] = struct{}{}
	h.crit.Unlock()
	logger.Logf(logger.Allow, "broadcast", "%s connected", c.addr)

	go c.writePump()
	c.readPump()
	h.remove(c, "closed")
}

// writePump exits when the send channel is closed or on a write error
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	// closing the connection causes readPump() to return
	defer c.conn.Close()

	for {
		select {
		case b, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
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

// readPump discards incoming messages. it's needed to process control frames
// and to notice when the client goes away
func (c *client) readPump() {
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Start listening on the given address and serve the hub at Path until the
// context is cancelled. An error is returned if the address can't be listened
// on, in which case nothing has been started and the hub should not be
// published to
func Start(ctx context.Context, addr string, h *Hub) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("broadcast: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(Path, h)

	srv := &http.Server{
		Handler: mux,
	}

	go h.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()
	go func() {
		err := srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log(logger.Allow, "broadcast", err)
		}
	}()

	logger.Logf(logger.Allow, "broadcast", "serving on ws://%s%s", ln.Addr(), Path)

	return ln.Addr(), nil
}
