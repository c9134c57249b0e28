// Package stream fans simulation ticks out to WebSocket clients.
package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/nikitakosatka/dtnsim/pkg/dtn"
)

const (
	// DefaultBroadcastBufferSize is the number of frames queued before Publish blocks.
	DefaultBroadcastBufferSize = 16
)

// Hub tracks WebSocket clients and broadcasts tick events to all of them.
// The client set is owned by a single goroutine; every write to a
// connection happens there.
type Hub struct {
	upgrader  websocket.Upgrader
	clients   map[*websocket.Conn]bool
	register  chan *websocket.Conn
	remove    chan *websocket.Conn
	broadcast chan []byte
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	// latest is the last frame sent, replayed to new clients
	latest []byte
	count  atomic.Int64
	logger *log.Logger
}

// NewHub creates a hub and starts its event loop.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(log.Writer(), "[stream] ", log.LstdFlags)
	}
	h := &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients:   make(map[*websocket.Conn]bool),
		register:  make(chan *websocket.Conn),
		remove:    make(chan *websocket.Conn),
		broadcast: make(chan []byte, DefaultBroadcastBufferSize),
		done:      make(chan struct{}),
		logger:    logger,
	}
	h.wg.Add(1)
	go h.run()
	return h
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case <-h.done:
			for conn := range h.clients {
				conn.Close()
			}
			h.clients = nil
			h.count.Store(0)
			return
		case conn := <-h.register:
			h.clients[conn] = true
			h.count.Store(int64(len(h.clients)))
			if h.latest != nil {
				h.write(conn, h.latest)
			}
		case conn := <-h.remove:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				h.count.Store(int64(len(h.clients)))
				conn.Close()
			}
		case msg := <-h.broadcast:
			h.latest = msg
			for conn := range h.clients {
				h.write(conn, msg)
			}
		}
	}
}

func (h *Hub) write(conn *websocket.Conn, msg []byte) {
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		h.logger.Printf("failed to send frame to client %s: %v", conn.RemoteAddr(), err)
		delete(h.clients, conn)
		h.count.Store(int64(len(h.clients)))
		conn.Close()
	}
}

// ServeHTTP upgrades the request and registers the connection.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade failed: %v", err)
		return
	}

	select {
	case h.register <- conn:
	case <-h.done:
		conn.Close()
		return
	}

	go func() {
		defer func() {
			select {
			case h.remove <- conn:
			case <-h.done:
			}
		}()
		// Clients only listen; reading drives close detection.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					h.logger.Printf("websocket error: %v", err)
				}
				return
			}
		}
	}()
}

// Publish queues a tick event for every connected client.
func (h *Hub) Publish(ev dtn.TickEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
	return nil
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Close disconnects every client and stops the event loop.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
	h.wg.Wait()
}
