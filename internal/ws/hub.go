package ws

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

type Client struct {
	ID   string
	Send chan []byte
}

// Hub fans snapshot payloads out to connected presentation clients. It retains
// the last snapshot so a client connecting between pushes still gets the current
// record set immediately.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client // id -> client
	latest   []byte             // last snapshot payload
	register chan *Client
	unreg    chan *Client
	push     chan []byte

	log     *slog.Logger
	stop    chan struct{}
	stopped chan struct{}

	nextID atomic.Uint64
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		clients:  make(map[string]*Client),
		register: make(chan *Client),
		unreg:    make(chan *Client),
		push:     make(chan []byte, 256),
		log:      log.With("cmp", "ws.hub"),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (h *Hub) newID() string {
	return fmt.Sprintf("c%d", h.nextID.Add(1))
}

func (h *Hub) Run() {
	h.log.Info("hub_run_start")
	defer close(h.stopped)

	for {
		select {
		case c := <-h.register:
			if c.ID == "" {
				c.ID = h.newID()
			}
			h.mu.Lock()
			h.clients[c.ID] = c
			latest := h.latest
			h.mu.Unlock()
			if latest != nil {
				// replay the current snapshot so the client is not blind until
				// the next ingest
				select {
				case c.Send <- latest:
				default:
				}
			}
			h.log.Info("client_registered", "id", c.ID, "total", len(h.clients))

		case c := <-h.unreg:
			h.mu.Lock()
			if c != nil && c.ID != "" {
				if _, ok := h.clients[c.ID]; ok {
					delete(h.clients, c.ID)
					close(c.Send)
				}
			}
			h.mu.Unlock()
			h.log.Info("client_unregistered", "id", c.ID, "total", len(h.clients))

		case snap := <-h.push:
			h.mu.Lock()
			h.latest = snap
			for id, c := range h.clients {
				select {
				case c.Send <- snap:
				default:
					// slow client: drop it rather than stall the hub
					delete(h.clients, id)
					close(c.Send)
					h.log.Warn("client_drop_slow", "id", id)
				}
			}
			h.mu.Unlock()

		case <-h.stop:
			h.mu.Lock()
			for id, c := range h.clients {
				close(c.Send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			h.log.Info("hub_run_stop")
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.stop)
	<-h.stopped
}

func (h *Hub) Register(c *Client)   { h.register <- c }
func (h *Hub) Unregister(c *Client) { h.unreg <- c }

// PushSnapshot queues one snapshot payload for broadcast.
func (h *Hub) PushSnapshot(b []byte) { h.push <- b }
