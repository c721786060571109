package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"frigo/internal/fridge"
	"frigo/internal/models"
	"frigo/internal/monitoring"
	"frigo/internal/recipes"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the widget embeds from arbitrary hosts
	},
}

// Hub tracks connected widget clients and pushes fridge updates to them.
type Hub struct {
	store     *fridge.Store
	suggester *recipes.Suggester
	metrics   *monitoring.Collector

	mu    sync.Mutex
	conns map[*wsConn]struct{}
}

// NewHub creates an empty hub.
func NewHub(store *fridge.Store, suggester *recipes.Suggester, metrics *monitoring.Collector) *Hub {
	return &Hub{
		store:     store,
		suggester: suggester,
		metrics:   metrics,
		conns:     make(map[*wsConn]struct{}),
	}
}

func (h *Hub) snapshot() models.Fridge {
	return h.store.Snapshot()
}

// wsConn maintains one WebSocket connection with a widget client.
type wsConn struct {
	conn *websocket.Conn
	send chan []byte
	mu   sync.Mutex
	hub  *Hub
}

// wsMessage is the frame format in both directions.
type wsMessage struct {
	Type    string         `json:"type"`
	Prompt  string         `json:"prompt,omitempty"`
	Fridge  *models.Fridge `json:"fridge,omitempty"`
	Recipes string         `json:"recipes,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// HandleWS upgrades the request and starts the connection pumps.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	ws := &wsConn{
		conn: conn,
		send: make(chan []byte, 256),
		hub:  h,
	}

	h.mu.Lock()
	h.conns[ws] = struct{}{}
	h.mu.Unlock()
	h.metrics.WSConnected()

	go ws.writePump()
	go ws.readPump()
}

// Broadcast pushes a fridge_update frame to every connected client.
func (h *Hub) Broadcast(fridge models.Fridge) {
	data, err := json.Marshal(wsMessage{Type: "fridge_update", Fridge: &fridge})
	if err != nil {
		log.Printf("Error marshaling fridge update: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ws := range h.conns {
		select {
		case ws.send <- data:
		default:
			log.Println("WebSocket buffer full, dropping fridge update")
		}
	}
}

func (h *Hub) drop(ws *wsConn) {
	h.mu.Lock()
	_, present := h.conns[ws]
	delete(h.conns, ws)
	h.mu.Unlock()
	if present {
		h.metrics.WSDisconnected()
	}
}

// readPump pumps messages from the WebSocket connection to the handler
func (c *wsConn) readPump() {
	defer func() {
		c.hub.drop(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(64 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the server to the WebSocket connection
func (c *wsConn) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes one inbound frame. The widget only sends recipe
// requests; anything else is ignored.
func (c *wsConn) handleMessage(message []byte) {
	var msg wsMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		log.Printf("Error unmarshaling message: %v", err)
		return
	}
	if msg.Type != "recipe_request" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		suggestions, err := c.hub.suggester.Suggest(ctx, c.hub.snapshot(), msg.Prompt, 3)
		if err != nil {
			c.sendMessage(wsMessage{Type: "error", Error: err.Error()})
			return
		}
		c.sendMessage(wsMessage{Type: "recipe_suggestions", Recipes: suggestions})
	}()
}

func (c *wsConn) sendMessage(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.send <- data:
	default:
		log.Println("WebSocket buffer full, dropping message")
	}
}
