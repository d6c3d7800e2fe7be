package room

// Broadcaster pushes a table event to everyone watching that table.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data any)
}

const (
	ActionStateUpdated = "state-updated"
	ActionMoveApplied  = "move-applied"
	ActionGameOver     = "game-over"
	ActionRoomClosed   = "room-closed"
)
