package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub fans room broadcasts out to every socket connected to that room and
// relays inbound game intents to the room manager. It implements
// room.Broadcaster.
type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*websocket.Conn]struct{}),
		roomManager: roomManager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

type intent struct {
	PlayerID  string `json:"playerId"`
	TokenID   string `json:"tokenId"`
	MoveIndex int    `json:"moveIndex"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	if _, ok := h.roomManager.Get(roomCode); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		if len(h.rooms[roomCode]) == 0 {
			delete(h.rooms, roomCode)
		}
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg struct {
			Action string          `json:"action"`
			Data   json.RawMessage `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("Error reading WebSocket message: %v", err)
			break
		}

		var in intent
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &in); err != nil {
				h.replyError(conn, "invalid intent payload")
				continue
			}
		}

		switch msg.Action {
		case "roll":
			_, err = h.roomManager.Roll(roomCode, in.PlayerID)
		case "move":
			_, err = h.roomManager.Move(roomCode, in.PlayerID, in.TokenID, in.MoveIndex)
		case "dismiss_effect":
			_, err = h.roomManager.DismissEffect(roomCode, in.PlayerID)
		case "rescue":
			_, err = h.roomManager.Rescue(roomCode, in.PlayerID)
		case "pass":
			_, err = h.roomManager.Pass(roomCode, in.PlayerID)
		default:
			log.Printf("Unknown action: %s", msg.Action)
			continue
		}
		if err != nil {
			// Accepted intents are broadcast by the manager; rejections
			// only go back to the sender.
			log.Printf("room %s: %s rejected: %v", roomCode, msg.Action, err)
			h.replyError(conn, err.Error())
		}
	}
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("Failed to send message: %v", err)
			conn.Close()
			delete(clients, conn)
		}
	}
}

func (h *Hub) replyError(conn *websocket.Conn, msg string) {
	if err := conn.WriteJSON(map[string]interface{}{
		"action": "error",
		"data":   map[string]string{"error": msg},
	}); err != nil {
		log.Printf("Failed to send error reply: %v", err)
	}
}
