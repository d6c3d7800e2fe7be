package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wall-duel/internal/api/ws"
	"wall-duel/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// live updates for the renderer
	r.GET("/ws", hub.HandleWS)

	r.POST("/rooms", CreateRoomHandler(rm))
	r.GET("/rooms", ListRoomsHandler(rm))

	rooms := r.Group("/rooms/:code")
	rooms.GET("", RoomHandler(rm))
	rooms.DELETE("", CloseRoomHandler(rm))
	rooms.GET("/cell", CellHandler(rm))
	rooms.GET("/destinations", DestinationsHandler(rm))
	rooms.POST("/select", SelectHandler(rm))
	rooms.POST("/move", MoveHandler(rm))
	rooms.POST("/click", ClickHandler(rm))
	rooms.POST("/pointer", PointerHandler(rm))
	rooms.POST("/reset", ResetHandler(rm))

	return r
}
