package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"wall-duel/internal/room"
)

// Message is the envelope for both directions.
type Message struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type outbound struct {
	Action string `json:"action"`
	Data   any    `json:"data"`
}

type cellRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(msg outbound) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}
	rm    Rooms
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*client]struct{}),
	}
}

// SetRooms wires the hub to the room manager once both exist.
func (h *Hub) SetRooms(rm Rooms) {
	h.rm = rm
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // the renderer may be served from anywhere
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	if h.rm == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "hub not ready"})
		return
	}
	snap, err := h.rm.Snapshot(roomCode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	cl := &client{conn: conn}

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*client]struct{})
	}
	h.rooms[roomCode][cl] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.remove(roomCode, cl)
		_ = conn.Close()
	}()

	if err := cl.send(outbound{Action: "state", Data: snap}); err != nil {
		log.Printf("room %s: initial state: %v", roomCode, err)
		return
	}

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("room %s: read: %v", roomCode, err)
			}
			return
		}
		h.handle(roomCode, cl, msg)
	}
}

// handle runs one client action. Successful actions reach every watcher
// through the manager's broadcasts; failures go back to the sender only.
func (h *Hub) handle(roomCode string, cl *client, msg Message) {
	var req cellRequest
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			_ = cl.send(outbound{Action: "error", Data: gin.H{"error": "invalid payload"}})
			return
		}
	}

	var err error
	switch msg.Action {
	case "select":
		_, err = h.rm.Select(roomCode, req.Row, req.Col)
	case "move":
		_, err = h.rm.Move(roomCode, req.Row, req.Col)
	case "click":
		_, err = h.rm.Click(roomCode, req.Row, req.Col)
	case "reset":
		_, err = h.rm.Reset(roomCode)
	case "state":
		var snap any
		if snap, err = h.rm.Snapshot(roomCode); err == nil {
			err = cl.send(outbound{Action: "state", Data: snap})
		}
	default:
		log.Printf("Unknown action: %s", msg.Action)
		_ = cl.send(outbound{Action: "error", Data: gin.H{"error": "unknown action " + msg.Action}})
		return
	}
	if err != nil {
		_ = cl.send(outbound{Action: "error", Data: gin.H{"error": err.Error()}})
	}
}

func (h *Hub) remove(roomCode string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[roomCode], cl)
	if len(h.rooms[roomCode]) == 0 {
		delete(h.rooms, roomCode)
	}
}

// Broadcast sends an action to every connection watching roomCode.
func (h *Hub) Broadcast(roomCode string, action string, data any) {
	if h == nil {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[roomCode]))
	for cl := range h.rooms[roomCode] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	msg := outbound{Action: action, Data: data}
	for _, cl := range clients {
		if err := cl.send(msg); err != nil {
			log.Printf("Failed to send message: %v", err)
			h.remove(roomCode, cl)
			_ = cl.conn.Close()
		}
	}
	if action == room.ActionRoomClosed {
		h.disconnect(roomCode)
	}
}

// disconnect drops every watcher of roomCode and asks each to close. The
// read loops end when the peers answer.
func (h *Hub) disconnect(roomCode string) {
	h.mu.Lock()
	clients := h.rooms[roomCode]
	delete(h.rooms, roomCode)
	h.mu.Unlock()

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "room closed")
	for cl := range clients {
		if err := cl.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
			_ = cl.conn.Close()
		}
	}
}

// Watchers reports how many connections follow roomCode.
func (h *Hub) Watchers(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}
