package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
)

var _ domain.Broadcaster = (*Hub)(nil)

// Hub owns the set of open push connections and fans signal events out to all
// of them. Membership and delivery are serialized through the run loop, so a
// connection registered after a broadcast never sees that past message.
// Nothing is buffered for replay.
type Hub struct {
	log        log.FieldLogger
	upgrader   websocket.Upgrader
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	count      int32
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		log: log.StandardLogger(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte),
	}
}

func (h *Hub) WithLogger(lg log.FieldLogger) *Hub {
	h.log = lg
	return h
}

// Run drives registration and fan-out until ctx is cancelled. All membership
// changes go through here; no other goroutine touches the client set.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			atomic.StoreInt32(&h.count, 0)
			return
		case c := <-h.register:
			h.clients[c] = true
			atomic.StoreInt32(&h.count, int32(len(h.clients)))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				atomic.StoreInt32(&h.count, int32(len(h.clients)))
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// Slow or dead client: drop it rather than block fan-out.
					delete(h.clients, c)
					close(c.send)
				}
			}
			atomic.StoreInt32(&h.count, int32(len(h.clients)))
		}
	}
}

// ClientCount reports the number of registered connections.
func (h *Hub) ClientCount() int {
	return int(atomic.LoadInt32(&h.count))
}

// SubscribeSignals wires the hub to the events broker so every appended
// signal is pushed to connected clients.
func (h *Hub) SubscribeSignals(events domain.EventsBroker) {
	events.Subscribe(domain.EvTypeSignals, func(e *domain.Event) error {
		h.BroadcastSignal(e.Ctx, e.MustGetSignalEvent())
		return nil
	})
}

func (h *Hub) BroadcastSignal(ctx context.Context, ev domain.SignalEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.log.WithError(err).Error("marshal signal event")
		return
	}
	h.log.WithField("symbol", ev.Symbol).Debug("broadcasting signal")
	h.broadcast <- payload
}

// ServeWS upgrades the request and registers the connection. The client side
// of the channel is write-only: incoming frames are drained and discarded.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 16)}
	h.register <- c

	go c.writePump()
	c.readPump(h)
}

func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
