package room

import (
	"sync"
	"time"

	"wall-duel/internal/game"
)

// Room is one table: a hot-seat game for two players sharing a screen.
// Its lock serialises input so each action finishes before the next starts.
type Room struct {
	ID        string
	Code      string
	Seed      int64
	CreatedAt time.Time

	mu   sync.Mutex
	game *game.Game
}

// View is the JSON form of a room.
type View struct {
	ID        string        `json:"id"`
	Code      string        `json:"code"`
	Seed      int64         `json:"seed"`
	CreatedAt time.Time     `json:"created_at"`
	Options   game.Options  `json:"options"`
	Game      game.Snapshot `json:"game"`
}

func (r *Room) view() View {
	return View{
		ID:        r.ID,
		Code:      r.Code,
		Seed:      r.Seed,
		CreatedAt: r.CreatedAt,
		Options:   r.game.Options(),
		Game:      r.game.Export(),
	}
}

func (r *Room) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view()
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
	Codes() []string
}
