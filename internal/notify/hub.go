package notify

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/tdat2209/Read-Track-Backend/pkg/logger"
	"github.com/tdat2209/Read-Track-Backend/pkg/metrics"
)

const (
	pingPeriod = 30 * time.Second
	pongWait   = 60 * time.Second
	writeWait  = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans successful book/log mutations out to websocket subscribers.
// Subscribers are read-only; anything they send is discarded.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	stopOnce   sync.Once
	log        *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			metrics.SetActiveConnections(int64(len(h.clients)))
			h.log.Debug("ws_client_registered", "client_id", client.ID)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			metrics.SetActiveConnections(int64(len(h.clients)))
			h.log.Debug("ws_client_unregistered", "client_id", client.ID)

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
					metrics.IncrementBroadcasts()
				default:
					metrics.IncrementBroadcastFails()
					h.log.Warn("ws_send_channel_full", "client_id", client.ID)
				}
			}

		case <-h.done:
			for client := range h.clients {
				close(client.send)
			}
			h.clients = make(map[*Client]struct{})
			metrics.SetActiveConnections(0)
			return
		}
	}
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// Publish broadcasts one event to every connected client. Safe to call from
// any request goroutine.
func (h *Hub) Publish(eventType EventType, payload interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("failed_to_marshal_event", "error", err.Error(), "event_type", string(eventType))
		return
	}

	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}

// HandleWS upgrades the request and attaches the client to the hub.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error("ws_upgrade_failed", "error", err.Error())
		return
	}

	client := &Client{
		ID:   uuid.New().String(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, 64),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
