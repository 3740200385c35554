package http

import (
	"github.com/gin-gonic/gin"

	"velvet-ludo/internal/api/ws"
	"velvet-ludo/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for live room updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/join-room", JoinRoomHandler(rm))
	r.POST("/start", StartHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/state", StateHandler(rm))
	r.POST("/roll", RollHandler(rm))
	r.POST("/move", MoveHandler(rm))
	r.POST("/dismiss-effect", DismissEffectHandler(rm))
	r.POST("/rescue", RescueHandler(rm))
	r.POST("/pass", PassHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config/tiles", TilesConfigHandler())

	return r
}
