package ws

import "wall-duel/internal/room"

// Rooms is the part of the room manager the hub drives.
type Rooms interface {
	Snapshot(code string) (room.View, error)
	Select(code string, row, col int) (room.View, error)
	Move(code string, row, col int) (room.MoveOutcome, error)
	Click(code string, row, col int) (room.ClickResult, error)
	Reset(code string) (room.View, error)
}
