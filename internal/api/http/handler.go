package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"wall-duel/internal/game"
	"wall-duel/internal/render"
	"wall-duel/internal/room"
)

// status maps engine and room errors onto HTTP codes. Gameplay rejections
// are 422: the request was well formed but the rules refused it.
func status(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrOutOfBounds), errors.Is(err, game.ErrInvalidConfig):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrInvalidSelection),
		errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, game.ErrNoSelection),
		errors.Is(err, game.ErrGameOver):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// fail answers with the error and, for gameplay rejections, the unchanged
// table so the renderer can redraw.
func fail(c *gin.Context, err error, v *room.View) {
	code := status(err)
	body := gin.H{"error": err.Error()}
	if code == http.StatusUnprocessableEntity && v != nil {
		body["room"] = v
	}
	c.JSON(code, body)
}

func bindCell(c *gin.Context) (CellRequest, bool) {
	var req CellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "row and col required"})
		return req, false
	}
	return req, true
}

// CreateRoomHandler starts a new game table.
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
				return
			}
		}
		r, err := rm.CreateRoom(room.CreateOptions{
			GridSize:  req.GridSize,
			DarkCells: req.DarkCells,
			Seed:      req.Seed,
		})
		if err != nil {
			fail(c, err, nil)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"room_code": r.Code, "room": r.View()})
	}
}

func ListRoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": rm.Codes()})
	}
}

// CloseRoomHandler removes a table and disconnects its watchers.
func CloseRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := rm.Close(c.Param("code")); err != nil {
			fail(c, err, nil)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// RoomHandler returns the full table state for drawing.
func RoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := rm.Snapshot(c.Param("code"))
		if err != nil {
			fail(c, err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": v})
	}
}

// CellHandler answers wall, dark-cell and piece queries for one cell.
func CellHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q CellQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "row and col required"})
			return
		}
		cell, err := rm.Cell(c.Param("code"), *q.Row, *q.Col)
		if err != nil {
			fail(c, err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cell": cell})
	}
}

// DestinationsHandler lists the highlighted cells of the selected piece.
func DestinationsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		moves, err := rm.Destinations(c.Param("code"))
		if err != nil {
			fail(c, err, nil)
			return
		}
		if moves == nil {
			moves = []game.Move{}
		}
		c.JSON(http.StatusOK, gin.H{"destinations": moves})
	}
}

func SelectHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindCell(c)
		if !ok {
			return
		}
		v, err := rm.Select(c.Param("code"), *req.Row, *req.Col)
		if err != nil {
			fail(c, err, &v)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": v})
	}
}

func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindCell(c)
		if !ok {
			return
		}
		out, err := rm.Move(c.Param("code"), *req.Row, *req.Col)
		if err != nil {
			fail(c, err, &out.Room)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ClickHandler is the one-button input path: select, move or reselect
// depending on where the click lands.
func ClickHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindCell(c)
		if !ok {
			return
		}
		out, err := rm.Click(c.Param("code"), *req.Row, *req.Col)
		if err != nil {
			fail(c, err, &out.Room)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func ResetHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := rm.Reset(c.Param("code"))
		if err != nil {
			fail(c, err, &v)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": v})
	}
}

// PointerHandler takes a click in pixels, as a graphical renderer sees it,
// and feeds the cell under it to the click path.
func PointerHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PointerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "x, y and cell_size required"})
			return
		}
		code := c.Param("code")
		v, err := rm.Snapshot(code)
		if err != nil {
			fail(c, err, nil)
			return
		}
		pos, ok := render.NewContext(nil, req.CellSize).CellAt(*req.X, *req.Y, v.Game.Size)
		if !ok {
			fail(c, fmt.Errorf("%w: pixel (%d,%d) is off the board", game.ErrOutOfBounds, *req.X, *req.Y), nil)
			return
		}
		out, err := rm.Click(code, pos.Row, pos.Col)
		if err != nil {
			fail(c, err, &out.Room)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
